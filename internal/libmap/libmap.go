// Package libmap reads a workspace's cds.lib-style library map: the
// registry of named library locations, with nested INCLUDE support.
package libmap

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdkscan-dev/pdkscan/internal/fileutil"
	"github.com/pdkscan-dev/pdkscan/internal/pathutil"
)

// MapFile is the library-map file name looked up at the workspace root.
const MapFile = "cds.lib"

// Library is one logical library entry from a DEFINE statement.
type Library struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Parse reads the workspace's library map and returns a flat list of
// library entries. A missing map is not an error: it yields no entries
// and one warning. Malformed DEFINE lines and unresolvable includes are
// reported as warnings too; nothing in here is fatal.
func Parse(workspaceRoot string) ([]Library, []string) {
	p := &parser{visited: make(map[string]bool)}

	mapPath := filepath.Join(workspaceRoot, MapFile)
	if _, err := os.Stat(mapPath); err != nil {
		p.warnf("library map not found at %s", mapPath)
		return nil, p.warnings
	}

	p.parseFile(mapPath, workspaceRoot)
	return p.libraries, p.warnings
}

type parser struct {
	libraries []Library
	warnings  []string
	visited   map[string]bool // absolute path, host case rules
}

func (p *parser) parseFile(path, workspaceRoot string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	key := pathutil.FoldKey(abs)
	if p.visited[key] {
		return
	}
	p.visited[key] = true

	f, err := os.Open(abs)
	if err != nil {
		p.warnf("cannot read library map %s: %v", abs, err)
		return
	}
	defer f.Close()

	dir := filepath.Dir(abs)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tokens := fileutil.FieldsQuoted(line)
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToUpper(tokens[0]) {
		case "DEFINE":
			if len(tokens) < 3 {
				p.warnf("malformed DEFINE in %s: %q", abs, line)
				continue
			}
			p.libraries = append(p.libraries, Library{
				Name: tokens[1],
				Path: pathutil.Resolve(tokens[2], workspaceRoot, dir),
			})
		case "INCLUDE", "SOFTINCLUDE":
			if len(tokens) < 2 {
				p.warnf("malformed %s in %s: %q", tokens[0], abs, line)
				continue
			}
			target := pathutil.Resolve(tokens[1], workspaceRoot, dir)
			if _, err := os.Stat(target); err != nil {
				p.warnf("library map include not found: %s (from %s)", target, abs)
				continue
			}
			p.parseFile(target, workspaceRoot)
		}
	}
	if err := scanner.Err(); err != nil {
		p.warnf("error reading library map %s: %v", abs, err)
	}
}

func (p *parser) warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}
