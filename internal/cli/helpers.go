package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdkscan-dev/pdkscan/internal/config"
	"github.com/pdkscan-dev/pdkscan/internal/logging"
	"github.com/pdkscan-dev/pdkscan/internal/scan"
	"github.com/pdkscan-dev/pdkscan/internal/store"
)

func OptionalBoolFlag(cmd *cobra.Command, name string) (bool, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return false, nil
	}
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

func OptionalStringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

// ResolveRoot picks the workspace root for a command: an explicit
// argument wins, then the configured default, then the working
// directory.
func ResolveRoot(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.WorkspaceRoot != "" {
		return cfg.WorkspaceRoot, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return cwd, nil
}

func newLogger() *zap.Logger {
	cfg, err := config.Load()
	level := "info"
	if err == nil && cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	logger, err := logging.New(level)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadOrScan returns the catalog for a root, preferring the cached
// scan. When no usable cache exists (or rescan is set) it runs a fresh
// scan and persists it.
func loadOrScan(root string, rescan bool, logger *zap.Logger) (*scan.Result, error) {
	if !rescan {
		result, err := store.Load(root)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, store.ErrNoCache) {
			return nil, err
		}
	}

	result, err := scan.Workspace(root, logger)
	if err != nil {
		return nil, err
	}
	if err := store.Save(result); err != nil {
		logger.Warn("failed to persist scan cache", zap.Error(err))
	}
	return result, nil
}

// logInteraction is best effort: a read-only workspace must not fail
// the command that just ran.
func logInteraction(root, message string) {
	_ = logging.AppendInteraction(root, message)
}
