package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdkscan-dev/pdkscan/internal/classify"
	"github.com/pdkscan-dev/pdkscan/internal/deck"
	"github.com/pdkscan-dev/pdkscan/internal/libmap"
	"github.com/pdkscan-dev/pdkscan/internal/scan"
)

func sampleResult(root string) *scan.Result {
	return &scan.Result{
		ScanID:        "0b06a31c-9210-4fbd-a341-6ad1b86a4d2a",
		ScannedAt:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		WorkspaceRoot: root,
		Libraries:     []libmap.Library{{Name: "stdcells", Path: filepath.Join(root, "libs", "stdcells")}},
		ModelDecks: []deck.Record{{
			DeckPath: filepath.Join(root, "models", "top.scs"),
			Sections: []string{"tt"},
			Includes: []string{filepath.Join(root, "models", "devices.scs")},
		}},
		Models: []scan.Model{{
			Name:          "nfet_01v8",
			ModelType:     "nmos",
			DeviceClass:   classify.Nmos,
			VoltageDomain: "1.8V",
			Corners:       []string{"tt"},
			Sections:      []string{"tt"},
			SourceFiles:   []string{filepath.Join(root, "models", "top.scs")},
			Decks:         []string{filepath.Join(root, "models", "top.scs")},
		}},
		Warnings: []string{"model deck not found: /nope.scs"},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	root := t.TempDir()
	original := sampleResult(root)

	require.NoError(t, Save(original))
	loaded, err := Load(root)
	require.NoError(t, err)

	if diff := cmp.Diff(original, loaded); diff != "" {
		t.Fatalf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestLoadMissingIsErrNoCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	_, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrNoCache))
}

func TestLoadCorruptCacheFails(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	root := t.TempDir()

	path, err := Path(root)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err = Load(root)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoCache))
	assert.Contains(t, err.Error(), "corrupt scan cache")
}

func TestLoadVersionMismatchFails(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	root := t.TempDir()

	path, err := Path(root)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"99","result":{}}`), 0644))

	_, err = Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version")
}

func TestPathIsStablePerRoot(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	rootA := t.TempDir()
	rootB := t.TempDir()

	pathA1, err := Path(rootA)
	require.NoError(t, err)
	pathA2, err := Path(rootA)
	require.NoError(t, err)
	pathB, err := Path(rootB)
	require.NoError(t, err)

	assert.Equal(t, pathA1, pathA2)
	assert.NotEqual(t, pathA1, pathB)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	root := t.TempDir()

	require.NoError(t, Save(sampleResult(root)))

	entries, err := os.ReadDir(filepath.Join(cacheHome, "pdkscan"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "scan-")
}
