// Package pathutil normalizes the raw path tokens found in library maps,
// bootstrap files and model decks into absolute OS-native paths.
package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// RootToken is the workspace-root placeholder accepted in path tokens,
// in both its bare ($WORKSPACE/foo) and braced (${WORKSPACE}/foo) forms.
const RootToken = "WORKSPACE"

// Resolve normalizes a raw path token against the workspace root and a
// relative-to directory. It strips one layer of matching quotes,
// substitutes the workspace-root placeholder, expands environment
// variables and a leading ~, then absolutizes: an already-absolute path
// is cleaned, anything else is joined to relativeTo (falling back to
// workspaceRoot when relativeTo is empty).
//
// Resolve never fails; an unresolvable token yields a best-effort path
// that later file-existence checks will reject. An empty token (after
// trimming and unquoting) yields "".
func Resolve(token, workspaceRoot, relativeTo string) string {
	token = Unquote(strings.TrimSpace(token))
	if token == "" {
		return ""
	}

	token = substituteRoot(token, workspaceRoot)
	token = os.ExpandEnv(token)
	token = expandHome(token)

	if filepath.IsAbs(token) {
		return filepath.Clean(token)
	}

	base := relativeTo
	if base == "" {
		base = workspaceRoot
	}
	return filepath.Clean(filepath.Join(base, token))
}

// Unquote strips one layer of matching single or double quotes.
func Unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func substituteRoot(token, workspaceRoot string) string {
	for _, prefix := range []string{"${" + RootToken + "}", "$" + RootToken} {
		if strings.HasPrefix(token, prefix) {
			rest := token[len(prefix):]
			if rest == "" || rest[0] == '/' || rest[0] == '\\' {
				return workspaceRoot + rest
			}
		}
	}
	return token
}

func expandHome(token string) string {
	if token != "~" && !strings.HasPrefix(token, "~/") && !strings.HasPrefix(token, `~\`) {
		return token
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return token
	}
	if token == "~" {
		return home
	}
	return filepath.Join(home, token[2:])
}

// FoldKey returns the canonical form of an absolute path used for
// visited-set keys: case-folded on hosts with case-insensitive paths.
func FoldKey(path string) string {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		return strings.ToLower(path)
	}
	return path
}
