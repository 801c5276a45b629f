package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdkscan-dev/pdkscan/internal/classify"
	"github.com/pdkscan-dev/pdkscan/internal/extract"
)

func TestAggregateMergesOccurrencesAcrossDecks(t *testing.T) {
	partials := []extract.PartialModel{
		{
			Name:        "m1",
			ModelType:   "pmos",
			DeviceClass: classify.Pmos,
			Corners:     []string{"tt"},
			SourceFile:  "/ws/a/corner.scs",
			Deck:        "/ws/a/top.scs",
		},
		{
			Name:        "M1",
			ModelType:   "pmos",
			DeviceClass: classify.Pmos,
			Corners:     []string{"ff"},
			SourceFile:  "/ws/b/corner.scs",
			Deck:        "/ws/b/top.scs",
		},
	}

	models := Aggregate(partials)
	require.Len(t, models, 1)

	m := models[0]
	assert.Equal(t, "m1", m.Name)
	assert.Equal(t, classify.Pmos, m.DeviceClass)
	assert.Equal(t, []string{"ff", "tt"}, m.Corners)
	assert.Equal(t, []string{"/ws/a/top.scs", "/ws/b/top.scs"}, m.Decks)
	assert.Equal(t, []string{"/ws/a/corner.scs", "/ws/b/corner.scs"}, m.SourceFiles)
}

func TestAggregateFirstNonDefaultScalarWins(t *testing.T) {
	partials := []extract.PartialModel{
		{Name: "x", ModelType: "", DeviceClass: classify.Unknown},
		{Name: "x", ModelType: "nmos", DeviceClass: classify.Nmos, VoltageDomain: "1.8V", ThresholdFlavor: "lvt"},
		{Name: "x", ModelType: "pmos", DeviceClass: classify.Pmos, VoltageDomain: "3.3V", ThresholdFlavor: "hvt"},
	}

	models := Aggregate(partials)
	require.Len(t, models, 1)
	assert.Equal(t, "nmos", models[0].ModelType)
	assert.Equal(t, classify.Nmos, models[0].DeviceClass)
	assert.Equal(t, "1.8V", models[0].VoltageDomain)
	assert.Equal(t, "lvt", models[0].ThresholdFlavor)
}

func TestAggregateSortsByNameCaseInsensitively(t *testing.T) {
	partials := []extract.PartialModel{
		{Name: "zeta", ModelType: "r"},
		{Name: "Alpha", ModelType: "c"},
		{Name: "beta", ModelType: "d"},
	}

	models := Aggregate(partials)
	require.Len(t, models, 3)
	assert.Equal(t, "Alpha", models[0].Name)
	assert.Equal(t, "beta", models[1].Name)
	assert.Equal(t, "zeta", models[2].Name)
}

func TestAggregateUnionsSetsCaseInsensitively(t *testing.T) {
	partials := []extract.PartialModel{
		{Name: "m", Corners: []string{"TT", "ff"}, Sections: []string{"Top"}},
		{Name: "m", Corners: []string{"tt", "ss"}, Sections: []string{"top"}},
	}

	models := Aggregate(partials)
	require.Len(t, models, 1)
	assert.Equal(t, []string{"ff", "ss", "TT"}, models[0].Corners)
	assert.Equal(t, []string{"Top"}, models[0].Sections)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}
