package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdkscan-dev/pdkscan/internal/fileutil"
	"github.com/pdkscan-dev/pdkscan/internal/pathutil"
)

// Bootstrap files examined for the model-files directive: a root-level
// init file, plus site/installation init files named by environment.
const (
	InitFile   = ".cdsinit"
	SiteEnvVar = "CDS_SITE"
	InstEnvVar = "CDS_INST_DIR"
)

// modelFilesPattern matches a statement setting the simulator's model
// search path. It tolerates both a single quoted path and a
// parenthesized list of space-separated, optionally quoted tokens:
//
//	modelFiles "/pdk/models/sky130.scs;tt"
//	modelFiles ( "/pdk/models/sky130.scs;tt" /pdk/models/extra.scs )
var modelFilesPattern = regexp.MustCompile(`(?i)modelFiles\s*[=\s]\s*(?:\(([^)]*)\)|"([^"]*)"|'([^']*)')`)

// Ref is one model-deck reference from a bootstrap file: the resolved
// deck path plus the optional ";section" scope attached to the token.
// The deep extraction pass applies the scope as its initial filter.
type Ref struct {
	Path    string
	Section string
}

// Locate scans the workspace's bootstrap files for model-deck
// references and returns the resolved decks that exist on disk.
// Missing decks are warnings; duplicate paths are suppressed
// case-insensitively (first occurrence keeps its section scope).
func Locate(workspaceRoot string) ([]Ref, []string) {
	var decks []Ref
	var warnings []string
	seen := make(map[string]bool)

	for _, bootstrap := range bootstrapFiles(workspaceRoot) {
		data, err := os.ReadFile(bootstrap)
		if err != nil {
			continue
		}
		dir := filepath.Dir(bootstrap)

		for _, match := range modelFilesPattern.FindAllStringSubmatch(string(data), -1) {
			for _, token := range matchTokens(match) {
				path, section := SplitSectionSuffix(token)
				resolved := pathutil.Resolve(path, workspaceRoot, dir)
				if resolved == "" {
					continue
				}
				key := strings.ToLower(resolved)
				if seen[key] {
					continue
				}
				seen[key] = true

				if _, err := os.Stat(resolved); err != nil {
					warnings = append(warnings, fmt.Sprintf("model deck not found: %s (referenced from %s)", resolved, bootstrap))
					continue
				}
				decks = append(decks, Ref{Path: resolved, Section: section})
			}
		}
	}
	return decks, warnings
}

// SplitSectionSuffix splits a ";section" suffix off a deck path token.
func SplitSectionSuffix(token string) (path, section string) {
	if i := strings.IndexByte(token, ';'); i >= 0 {
		return token[:i], strings.TrimSpace(token[i+1:])
	}
	return token, ""
}

func bootstrapFiles(workspaceRoot string) []string {
	candidates := []string{filepath.Join(workspaceRoot, InitFile)}
	if site := os.Getenv(SiteEnvVar); site != "" {
		candidates = append(candidates, filepath.Join(site, "cdsinit"))
	}
	if inst := os.Getenv(InstEnvVar); inst != "" {
		candidates = append(candidates, filepath.Join(inst, "cdsinit"))
	}
	return candidates
}

func matchTokens(match []string) []string {
	if match[1] != "" {
		return fileutil.FieldsQuoted(match[1])
	}
	if match[2] != "" {
		return []string{match[2]}
	}
	if match[3] != "" {
		return []string{match[3]}
	}
	return nil
}
