package scan

import (
	"sort"
	"strings"

	"github.com/pdkscan-dev/pdkscan/internal/classify"
	"github.com/pdkscan-dev/pdkscan/internal/extract"
	"github.com/pdkscan-dev/pdkscan/internal/fileutil"
)

// Aggregate folds the stream of per-occurrence model records into the
// final catalog: one Model per case-insensitive name, scalar fields
// taking the first non-default value seen and multi-valued fields the
// case-insensitive union, everything sorted for deterministic output.
func Aggregate(partials []extract.PartialModel) []Model {
	merged := make(map[string]Model, len(partials))
	order := make([]string, 0, len(partials))

	for _, p := range partials {
		key := strings.ToLower(p.Name)
		prev, seen := merged[key]
		if !seen {
			order = append(order, key)
			prev = Model{Name: p.Name}
		}
		merged[key] = merge(prev, p)
	}

	models := make([]Model, 0, len(order))
	for _, key := range order {
		models = append(models, freeze(merged[key]))
	}
	sort.Slice(models, func(i, j int) bool {
		ni, nj := strings.ToLower(models[i].Name), strings.ToLower(models[j].Name)
		if ni != nj {
			return ni < nj
		}
		return models[i].Name < models[j].Name
	})
	return models
}

// merge is associative in the occurrence stream: scalars keep the first
// non-default value, sets accumulate.
func merge(m Model, p extract.PartialModel) Model {
	if m.ModelType == "" {
		m.ModelType = p.ModelType
	}
	if m.DeviceClass == classify.Unknown {
		m.DeviceClass = p.DeviceClass
	}
	if m.VoltageDomain == "" {
		m.VoltageDomain = p.VoltageDomain
	}
	if m.ThresholdFlavor == "" {
		m.ThresholdFlavor = p.ThresholdFlavor
	}
	m.Corners = append(m.Corners, p.Corners...)
	m.CornerDetails = append(m.CornerDetails, p.CornerDetails...)
	m.Sections = append(m.Sections, p.Sections...)
	if p.SourceFile != "" {
		m.SourceFiles = append(m.SourceFiles, p.SourceFile)
	}
	if p.Deck != "" {
		m.Decks = append(m.Decks, p.Deck)
	}
	return m
}

func freeze(m Model) Model {
	m.Corners = sortedSet(m.Corners)
	m.CornerDetails = sortedSet(m.CornerDetails)
	m.Sections = sortedSet(m.Sections)
	m.SourceFiles = sortedSet(m.SourceFiles)
	m.Decks = sortedSet(m.Decks)
	return m
}

func sortedSet(items []string) []string {
	out := fileutil.DedupeFold(items)
	fileutil.SortFold(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
