// Package store persists aggregated scan results so other commands can
// reuse them without rescanning. One cache file per workspace root,
// keyed by a hash of the absolute root path.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdkscan-dev/pdkscan/internal/pathutil"
	"github.com/pdkscan-dev/pdkscan/internal/scan"
)

const CurrentCacheVersion = "1"

// ErrNoCache is returned by Load when no cached scan exists for the
// workspace. Callers must explicitly rescan; a missing or unreadable
// cache is never silently repaired.
var ErrNoCache = errors.New("no cached scan for workspace")

// envelope wraps the persisted result with a version so incompatible
// cache layouts fail loudly instead of half-decoding.
type envelope struct {
	Version string       `json:"version"`
	Result  *scan.Result `json:"result"`
}

// Path returns the cache file path for a workspace root.
func Path(workspaceRoot string) (string, error) {
	dir, err := cacheDir()
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(workspaceRoot)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(pathutil.FoldKey(abs)))
	return filepath.Join(dir, "scan-"+hex.EncodeToString(sum[:])[:16]+".json"), nil
}

// Save writes the result for its workspace root. The JSON form is
// stable: indented, with model lists already sorted by the aggregator.
// The write goes through a temp file and an atomic rename so a
// concurrent reader never observes a half-written cache.
func Save(result *scan.Result) error {
	path, err := Path(result.WorkspaceRoot)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(envelope{Version: CurrentCacheVersion, Result: result}, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".scan-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads the cached result for a workspace root. A missing file is
// ErrNoCache; a corrupt or version-mismatched file is a hard error.
func Load(workspaceRoot string) (*scan.Result, error) {
	path, err := Path(workspaceRoot)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoCache, workspaceRoot)
		}
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("corrupt scan cache %s: %w", path, err)
	}
	if env.Version != CurrentCacheVersion {
		return nil, fmt.Errorf("scan cache %s has unsupported version %q", path, env.Version)
	}
	if env.Result == nil {
		return nil, fmt.Errorf("corrupt scan cache %s: empty result", path)
	}
	return env.Result, nil
}

func cacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "pdkscan"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache directory: %w", err)
	}
	return filepath.Join(home, ".cache", "pdkscan"), nil
}
