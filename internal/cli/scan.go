package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdkscan-dev/pdkscan/internal/fileutil"
	"github.com/pdkscan-dev/pdkscan/internal/scan"
	"github.com/pdkscan-dev/pdkscan/internal/store"
)

func RunScan(cmd *cobra.Command, args []string) error {
	root, err := ResolveRoot(args)
	if err != nil {
		return err
	}
	noCache, err := OptionalBoolFlag(cmd, "no-cache")
	if err != nil {
		return err
	}
	asJSON, err := OptionalBoolFlag(cmd, "json")
	if err != nil {
		return err
	}

	logger := newLogger()
	defer logger.Sync()

	result, err := scan.Workspace(root, logger)
	if err != nil {
		return err
	}
	if !noCache {
		if err := store.Save(result); err != nil {
			return fmt.Errorf("failed to persist scan cache: %w", err)
		}
	}
	logInteraction(result.WorkspaceRoot, fmt.Sprintf("scan: %d libraries, %d decks, %d models, %d warnings",
		len(result.Libraries), len(result.ModelDecks), len(result.Models), len(result.Warnings)))

	if asJSON {
		return fileutil.PrintJSON(result)
	}

	fmt.Printf("scanned %s\n", result.WorkspaceRoot)
	printTable(
		[]string{"Libraries", "Decks", "Models", "Warnings"},
		[][]string{{
			fmt.Sprintf("%d", len(result.Libraries)),
			fmt.Sprintf("%d", len(result.ModelDecks)),
			fmt.Sprintf("%d", len(result.Models)),
			fmt.Sprintf("%d", len(result.Warnings)),
		}},
	)
	for _, warning := range result.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}
	return nil
}
