// Package logging builds the process logger and maintains the
// per-workspace interaction log.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Levels follow zap's names; anything
// unrecognized falls back to info.
func New(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(parsed)

	return cfg.Build()
}

// InteractionLog is the append-only record of CLI invocations, kept
// inside the workspace so it travels with the design data.
const InteractionLog = ".pdkscan/interactions.log"

// AppendInteraction appends one timestamped line to the workspace's
// interaction log. Failures are returned but callers treat them as
// non-fatal: a read-only workspace must not break the command itself.
func AppendInteraction(workspaceRoot, message string) error {
	if workspaceRoot == "" {
		return nil
	}
	path := filepath.Join(workspaceRoot, InteractionLog)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s %s\n", time.Now().UTC().Format(time.RFC3339), message)
	return err
}
