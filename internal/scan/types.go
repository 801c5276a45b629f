// Package scan orchestrates a full workspace scan and owns the
// canonical result types the rest of the tool consumes.
package scan

import (
	"time"

	"github.com/pdkscan-dev/pdkscan/internal/classify"
	"github.com/pdkscan-dev/pdkscan/internal/deck"
	"github.com/pdkscan-dev/pdkscan/internal/libmap"
)

// Model is the canonical post-aggregation record for one device model.
// Identity is the case-insensitive name; all slice fields are sorted
// case-insensitively at aggregation time and never mutated afterwards.
type Model struct {
	Name            string               `json:"name"`
	ModelType       string               `json:"modelType"`
	DeviceClass     classify.DeviceClass `json:"deviceClass"`
	VoltageDomain   string               `json:"voltageDomain,omitempty"`
	ThresholdFlavor string               `json:"thresholdFlavor,omitempty"`
	Corners         []string             `json:"corners,omitempty"`
	CornerDetails   []string             `json:"cornerDetails,omitempty"`
	Sections        []string             `json:"sections,omitempty"`
	SourceFiles     []string             `json:"sourceFiles,omitempty"`
	Decks           []string             `json:"decks,omitempty"`
}

// Result is the top-level scan artifact. It is immutable once built;
// re-scanning a workspace produces a wholly new Result, never a patch.
// ScanID and ScannedAt are provenance only and excluded from equality.
type Result struct {
	ScanID        string           `json:"scanId"`
	ScannedAt     time.Time        `json:"scannedAt"`
	WorkspaceRoot string           `json:"workspaceRoot"`
	Libraries     []libmap.Library `json:"libraries,omitempty"`
	ModelDecks    []deck.Record    `json:"modelDecks,omitempty"`
	Models        []Model          `json:"models,omitempty"`
	Warnings      []string         `json:"warnings,omitempty"`
}

// FindDeck returns the deck record whose path equals the given path
// case-insensitively, or nil.
func (r *Result) FindDeck(path string) *deck.Record {
	for i := range r.ModelDecks {
		if equalFold(r.ModelDecks[i].DeckPath, path) {
			return &r.ModelDecks[i]
		}
	}
	return nil
}

// FindModel returns the model with the given case-insensitive name, or nil.
func (r *Result) FindModel(name string) *Model {
	for i := range r.Models {
		if equalFold(r.Models[i].Name, name) {
			return &r.Models[i]
		}
	}
	return nil
}
