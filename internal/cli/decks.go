package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdkscan-dev/pdkscan/internal/deck"
	"github.com/pdkscan-dev/pdkscan/internal/fileutil"
)

func RunDecks(cmd *cobra.Command, args []string) error {
	root, err := ResolveRoot(args)
	if err != nil {
		return err
	}
	asJSON, err := OptionalBoolFlag(cmd, "json")
	if err != nil {
		return err
	}
	rescan, err := OptionalBoolFlag(cmd, "rescan")
	if err != nil {
		return err
	}

	logger := newLogger()
	defer logger.Sync()

	result, err := loadOrScan(root, rescan, logger)
	if err != nil {
		return err
	}
	logInteraction(result.WorkspaceRoot, fmt.Sprintf("decks: %d listed", len(result.ModelDecks)))

	if asJSON {
		return fileutil.PrintJSON(map[string]any{
			"workspaceRoot": result.WorkspaceRoot,
			"modelDecks":    result.ModelDecks,
		})
	}

	if len(result.ModelDecks) == 0 {
		fmt.Println("no model decks found")
		return nil
	}
	rows := make([][]string, 0, len(result.ModelDecks))
	for i, rec := range result.ModelDecks {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			rec.DeckPath,
			strconv.Itoa(len(rec.Sections)),
			strconv.Itoa(len(rec.Includes)),
		})
	}
	printTable([]string{"#", "Deck", "Sections", "Includes"}, rows)
	return nil
}

func RunDeck(cmd *cobra.Command, args []string) error {
	root, err := ResolveRoot(nil)
	if err != nil {
		return err
	}
	asJSON, err := OptionalBoolFlag(cmd, "json")
	if err != nil {
		return err
	}
	rescan, err := OptionalBoolFlag(cmd, "rescan")
	if err != nil {
		return err
	}

	logger := newLogger()
	defer logger.Sync()

	result, err := loadOrScan(root, rescan, logger)
	if err != nil {
		return err
	}

	rec := findDeck(result.ModelDecks, args[0])
	if rec == nil {
		return fmt.Errorf("deck %q not found (run 'pdkscan decks' to list)", args[0])
	}
	logInteraction(result.WorkspaceRoot, "deck: "+rec.DeckPath)

	if asJSON {
		return fileutil.PrintJSON(rec)
	}

	fmt.Println(rec.DeckPath)
	fmt.Printf("sections (%d):\n", len(rec.Sections))
	for _, section := range rec.Sections {
		fmt.Printf("  %s\n", section)
	}
	fmt.Printf("includes (%d):\n", len(rec.Includes))
	for _, include := range rec.Includes {
		fmt.Printf("  %s\n", include)
	}
	return nil
}

// findDeck resolves a deck reference: a 1-based index from the decks
// listing, an exact path, or a unique path suffix.
func findDeck(decks []deck.Record, ref string) *deck.Record {
	if index, err := strconv.Atoi(ref); err == nil {
		if index >= 1 && index <= len(decks) {
			return &decks[index-1]
		}
		return nil
	}

	var suffixMatch *deck.Record
	for i := range decks {
		if strings.EqualFold(decks[i].DeckPath, ref) {
			return &decks[i]
		}
		if strings.HasSuffix(strings.ToLower(decks[i].DeckPath), strings.ToLower(ref)) {
			if suffixMatch != nil {
				return nil // ambiguous
			}
			suffixMatch = &decks[i]
		}
	}
	return suffixMatch
}
