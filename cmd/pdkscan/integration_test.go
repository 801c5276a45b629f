package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pdkscan-dev/pdkscan/internal/cli"
	"github.com/pdkscan-dev/pdkscan/internal/logging"
	"github.com/pdkscan-dev/pdkscan/internal/store"
)

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func newWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "cds.lib"), "DEFINE stdcells ./libs/stdcells\n")
	mustWriteFile(t, filepath.Join(root, ".cdsinit"), `modelFiles "models/top.scs"`+"\n")
	mustWriteFile(t, filepath.Join(root, "models", "top.scs"), `* top deck
.lib "corners.scs" tt
`)
	mustWriteFile(t, filepath.Join(root, "models", "corners.scs"), `section tt
.model nfet_01v8 nmos
endsection
`)
	return root
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := cli.NewRootCommand("test")
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestScanThenInspectFlow(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := newWorkspace(t)

	if err := execute(t, "scan", root); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	result, err := store.Load(root)
	if err != nil {
		t.Fatalf("expected cached scan after 'scan': %v", err)
	}
	if len(result.ModelDecks) != 1 {
		t.Fatalf("expected 1 deck, got %d", len(result.ModelDecks))
	}
	if model := result.FindModel("nfet_01v8"); model == nil {
		t.Fatal("expected nfet_01v8 in cached catalog")
	}

	if err := execute(t, "decks", root); err != nil {
		t.Fatalf("decks failed: %v", err)
	}
	if err := execute(t, "models", root, "--class", "nmos"); err != nil {
		t.Fatalf("models failed: %v", err)
	}

	logPath := filepath.Join(root, logging.InteractionLog)
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("expected interaction log at %s: %v", logPath, err)
	}
	if !strings.Contains(string(data), "scan:") {
		t.Fatalf("interaction log missing scan entry:\n%s", data)
	}
}

func TestScanNoCacheSkipsPersistence(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := newWorkspace(t)

	if err := execute(t, "scan", root, "--no-cache"); err != nil {
		t.Fatalf("scan --no-cache failed: %v", err)
	}
	if _, err := store.Load(root); err == nil {
		t.Fatal("expected no cache after scan --no-cache")
	}
}

func TestUnknownModelFails(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("default-root resolution relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := newWorkspace(t)

	if err := execute(t, "workspace", root); err != nil {
		t.Fatalf("workspace failed: %v", err)
	}
	if err := execute(t, "model", "no_such_model"); err == nil {
		t.Fatal("expected lookup of unknown model to fail")
	}
	if err := execute(t, "model", "nfet_01v8"); err != nil {
		t.Fatalf("model lookup failed: %v", err)
	}
}

func TestScanInvalidRootFails(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := execute(t, "scan", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected scan of missing root to fail")
	}
}
