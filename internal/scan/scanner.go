package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdkscan-dev/pdkscan/internal/deck"
	"github.com/pdkscan-dev/pdkscan/internal/extract"
	"github.com/pdkscan-dev/pdkscan/internal/libmap"
)

// Workspace runs the full pipeline over one workspace root: library
// map, deck location, per-deck shallow inspection, deep extraction,
// then aggregation. The only hard failures are an empty root and a
// root that is not a directory; everything downstream degrades to
// warnings collected on the Result.
func Workspace(root string, logger *zap.Logger) (*Result, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, fmt.Errorf("workspace root is empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace root %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("workspace root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace root %s is not a directory", abs)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	result := &Result{
		ScanID:        uuid.NewString(),
		ScannedAt:     time.Now().UTC(),
		WorkspaceRoot: abs,
	}

	libs, warnings := libmap.Parse(abs)
	result.Libraries = libs
	result.Warnings = append(result.Warnings, warnings...)
	logger.Debug("parsed library map",
		zap.Int("libraries", len(libs)),
		zap.Int("warnings", len(warnings)))

	refs, warnings := deck.Locate(abs)
	result.Warnings = append(result.Warnings, warnings...)
	logger.Debug("located model decks", zap.Int("decks", len(refs)))

	var partials []extract.PartialModel
	for _, ref := range refs {
		rec, err := deck.Inspect(ref.Path, abs)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("inspect %s: %v", ref.Path, err))
		}
		result.ModelDecks = append(result.ModelDecks, rec)

		found, extractWarnings := extract.Deck(abs, ref.Path, ref.Section)
		partials = append(partials, found...)
		result.Warnings = append(result.Warnings, extractWarnings...)
		logger.Debug("extracted deck",
			zap.String("deck", ref.Path),
			zap.String("section", ref.Section),
			zap.Int("occurrences", len(found)))
	}

	result.Models = Aggregate(partials)
	logger.Info("workspace scan complete",
		zap.String("root", abs),
		zap.Int("libraries", len(result.Libraries)),
		zap.Int("decks", len(result.ModelDecks)),
		zap.Int("models", len(result.Models)),
		zap.Int("warnings", len(result.Warnings)))
	return result, nil
}
