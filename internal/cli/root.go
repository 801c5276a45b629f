package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pdkscan",
		Short: "Discover and catalog device models in a PDK workspace",
		Long: `Pdkscan locates a design workspace's library map and model decks,
walks every deck and its includes with full library/section/corner
scoping, and builds a browsable catalog of the device models it finds.

Scan results are cached per workspace and reused by the inspection
commands until the next scan.`,
		SilenceUsage: true,
	}

	scanCmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "Scan a workspace and rebuild its model catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunScan,
	}
	scanCmd.Flags().Bool("no-cache", false, "Do not persist the scan result")
	scanCmd.Flags().Bool("json", false, "Print the full scan result as JSON")

	libsCmd := &cobra.Command{
		Use:   "libs [root]",
		Short: "List the workspace's library map entries",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunLibs,
	}
	libsCmd.Flags().Bool("json", false, "Print machine-readable library list")
	libsCmd.Flags().Bool("rescan", false, "Ignore the cached scan and rescan")

	decksCmd := &cobra.Command{
		Use:   "decks [root]",
		Short: "List discovered model decks",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunDecks,
	}
	decksCmd.Flags().Bool("json", false, "Print machine-readable deck list")
	decksCmd.Flags().Bool("rescan", false, "Ignore the cached scan and rescan")

	deckCmd := &cobra.Command{
		Use:   "deck <path|index>",
		Short: "Show one deck's sections and direct includes",
		Args:  cobra.ExactArgs(1),
		RunE:  RunDeck,
	}
	deckCmd.Flags().Bool("json", false, "Print machine-readable deck record")
	deckCmd.Flags().Bool("rescan", false, "Ignore the cached scan and rescan")

	modelsCmd := &cobra.Command{
		Use:   "models [root]",
		Short: "List the aggregated model catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunModels,
	}
	modelsCmd.Flags().Bool("json", false, "Print machine-readable model list")
	modelsCmd.Flags().Bool("rescan", false, "Ignore the cached scan and rescan")
	modelsCmd.Flags().String("class", "", "Only models of this device class (nmos, pmos, resistor, ...)")
	modelsCmd.Flags().String("corner", "", "Only models seen under this corner")
	modelsCmd.Flags().String("section", "", "Only models seen inside this section")

	modelCmd := &cobra.Command{
		Use:   "model <name>",
		Short: "Show one canonical model record",
		Args:  cobra.ExactArgs(1),
		RunE:  RunModel,
	}
	modelCmd.Flags().Bool("json", false, "Print machine-readable model record")
	modelCmd.Flags().Bool("rescan", false, "Ignore the cached scan and rescan")

	workspaceCmd := &cobra.Command{
		Use:   "workspace [root]",
		Short: "Print or set the default workspace root",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunWorkspace,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pdkscan %s\n", version)
		},
	}

	rootCmd.AddCommand(
		scanCmd,
		libsCmd,
		decksCmd,
		deckCmd,
		modelsCmd,
		modelCmd,
		workspaceCmd,
		versionCmd,
	)

	return rootCmd
}
