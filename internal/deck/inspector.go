package deck

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdkscan-dev/pdkscan/internal/fileutil"
	"github.com/pdkscan-dev/pdkscan/internal/pathutil"
)

// Inspect performs a shallow pass over one deck file: it records the
// sections the deck declares and the paths it directly includes,
// without opening any included file. This feeds the browsable deck
// catalog; the deep scoped extraction is internal/extract's job.
func Inspect(deckPath, workspaceRoot string) (Record, error) {
	f, err := os.Open(deckPath)
	if err != nil {
		return Record{DeckPath: deckPath}, err
	}
	defer f.Close()

	rec := Record{DeckPath: deckPath}
	dir := filepath.Dir(deckPath)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || IsComment(line) {
			continue
		}

		tokens := fileutil.FieldsQuoted(line)
		if len(tokens) < 2 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "section":
			rec.Sections = append(rec.Sections, tokens[1])
		case "include", ".include":
			rec.Includes = append(rec.Includes, pathutil.Resolve(tokens[1], workspaceRoot, dir))
		}
	}
	if err := scanner.Err(); err != nil {
		return rec, err
	}

	rec.Sections = fileutil.DedupeStrings(rec.Sections)
	rec.Includes = fileutil.DedupeFold(rec.Includes)
	return rec, nil
}
