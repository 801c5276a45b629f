package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdkscan-dev/pdkscan/internal/classify"
	"github.com/pdkscan-dev/pdkscan/internal/deck"
	"github.com/pdkscan-dev/pdkscan/internal/scan"
)

func TestNewRootCommandRegistersCommands(t *testing.T) {
	root := NewRootCommand("test")

	want := []string{"scan", "libs", "decks", "deck", "model", "models", "workspace", "version"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing command %q", name)
	}
}

func TestFindDeck(t *testing.T) {
	decks := []deck.Record{
		{DeckPath: "/ws/models/sky130.scs"},
		{DeckPath: "/ws/models/extra.scs"},
	}

	require.NotNil(t, findDeck(decks, "1"))
	assert.Equal(t, "/ws/models/sky130.scs", findDeck(decks, "1").DeckPath)
	assert.Nil(t, findDeck(decks, "0"))
	assert.Nil(t, findDeck(decks, "3"))

	assert.Equal(t, "/ws/models/extra.scs", findDeck(decks, "/ws/models/extra.scs").DeckPath)
	assert.Equal(t, "/ws/models/extra.scs", findDeck(decks, "extra.scs").DeckPath)
	assert.Nil(t, findDeck(decks, ".scs"), "ambiguous suffix must not match")
	assert.Nil(t, findDeck(decks, "nope.scs"))
}

func TestFilterModels(t *testing.T) {
	models := []scan.Model{
		{Name: "nfet", DeviceClass: classify.Nmos, Corners: []string{"tt"}, Sections: []string{"tt"}},
		{Name: "pfet", DeviceClass: classify.Pmos, Corners: []string{"ff"}, Sections: []string{"fast"}},
		{Name: "res", DeviceClass: classify.Resistor},
	}

	assert.Len(t, filterModels(models, "", "", ""), 3)

	nmosOnly := filterModels(models, "nmos", "", "")
	require.Len(t, nmosOnly, 1)
	assert.Equal(t, "nfet", nmosOnly[0].Name)

	ffOnly := filterModels(models, "", "FF", "")
	require.Len(t, ffOnly, 1)
	assert.Equal(t, "pfet", ffOnly[0].Name)

	fastOnly := filterModels(models, "", "", "fast")
	require.Len(t, fastOnly, 1)
	assert.Equal(t, "pfet", fastOnly[0].Name)

	assert.Empty(t, filterModels(models, "nmos", "ff", ""))
}

func TestOptionalFlagsOnMissingFlag(t *testing.T) {
	root := NewRootCommand("test")

	value, err := OptionalBoolFlag(root, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, value)

	text, err := OptionalStringFlag(root, "does-not-exist")
	require.NoError(t, err)
	assert.Empty(t, text)
}
