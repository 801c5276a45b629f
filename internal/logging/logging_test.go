package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAcceptsKnownAndUnknownLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "nonsense", ""} {
		logger, err := New(level)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", level, err)
		}
		if logger == nil {
			t.Fatalf("New(%q) returned nil logger", level)
		}
	}
}

func TestAppendInteraction(t *testing.T) {
	root := t.TempDir()

	if err := AppendInteraction(root, "scan: 1 deck"); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := AppendInteraction(root, "models: 3 listed"); err != nil {
		t.Fatalf("second append failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, InteractionLog))
	if err != nil {
		t.Fatalf("read interaction log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d:\n%s", len(lines), data)
	}
	if !strings.HasSuffix(lines[0], "scan: 1 deck") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
}

func TestAppendInteractionEmptyRootIsNoop(t *testing.T) {
	if err := AppendInteraction("", "ignored"); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}
