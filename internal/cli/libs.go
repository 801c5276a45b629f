package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdkscan-dev/pdkscan/internal/fileutil"
)

func RunLibs(cmd *cobra.Command, args []string) error {
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
	logInteraction(result.WorkspaceRoot, fmt.Sprintf("libs: %d entries", len(result.Libraries)))

	if asJSON {
		return fileutil.PrintJSON(map[string]any{
			"workspaceRoot": result.WorkspaceRoot,
			"libraries":     result.Libraries,
		})
	}

	if len(result.Libraries) == 0 {
		fmt.Println("no libraries found")
		return nil
	}
	rows := make([][]string, 0, len(result.Libraries))
	for _, lib := range result.Libraries {
		rows = append(rows, []string{lib.Name, lib.Path})
	}
	printTable([]string{"Library", "Path"}, rows)
	return nil
}
