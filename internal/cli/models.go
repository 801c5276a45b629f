package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdkscan-dev/pdkscan/internal/fileutil"
	"github.com/pdkscan-dev/pdkscan/internal/scan"
)

func RunModels(cmd *cobra.Command, args []string) error {
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
	classFilter, err := OptionalStringFlag(cmd, "class")
	if err != nil {
		return err
	}
	cornerFilter, err := OptionalStringFlag(cmd, "corner")
	if err != nil {
		return err
	}
	sectionFilter, err := OptionalStringFlag(cmd, "section")
	if err != nil {
		return err
	}

	logger := newLogger()
	defer logger.Sync()

	result, err := loadOrScan(root, rescan, logger)
	if err != nil {
		return err
	}

	models := filterModels(result.Models, classFilter, cornerFilter, sectionFilter)
	logInteraction(result.WorkspaceRoot, fmt.Sprintf("models: %d of %d listed", len(models), len(result.Models)))

	if asJSON {
		return fileutil.PrintJSON(map[string]any{
			"workspaceRoot": result.WorkspaceRoot,
			"models":        models,
		})
	}

	if len(models) == 0 {
		fmt.Println("no models matched")
		return nil
	}
	rows := make([][]string, 0, len(models))
	for _, m := range models {
		rows = append(rows, []string{
			m.Name,
			m.ModelType,
			m.DeviceClass.String(),
			m.VoltageDomain,
			m.ThresholdFlavor,
			strings.Join(m.Corners, ","),
		})
	}
	printTable([]string{"Model", "Type", "Class", "Voltage", "Vt", "Corners"}, rows)
	return nil
}

func RunModel(cmd *cobra.Command, args []string) error {
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

	model := result.FindModel(args[0])
	if model == nil {
		return fmt.Errorf("model %q not found in %s", args[0], result.WorkspaceRoot)
	}
	logInteraction(result.WorkspaceRoot, "model: "+model.Name)

	if asJSON {
		return fileutil.PrintJSON(model)
	}

	fmt.Println(model.Name)
	fmt.Printf("  type:     %s\n", model.ModelType)
	fmt.Printf("  class:    %s\n", model.DeviceClass)
	if model.VoltageDomain != "" {
		fmt.Printf("  voltage:  %s\n", model.VoltageDomain)
	}
	if model.ThresholdFlavor != "" {
		fmt.Printf("  vt:       %s\n", model.ThresholdFlavor)
	}
	printSet("corners", model.Corners)
	printSet("details", model.CornerDetails)
	printSet("sections", model.Sections)
	printSet("sources", model.SourceFiles)
	printSet("decks", model.Decks)
	return nil
}

func printSet(label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("  %s:\n", label)
	for _, item := range items {
		fmt.Printf("    %s\n", item)
	}
}

func filterModels(models []scan.Model, class, corner, section string) []scan.Model {
	out := make([]scan.Model, 0, len(models))
	for _, m := range models {
		if class != "" && !strings.EqualFold(m.DeviceClass.String(), class) {
			continue
		}
		if corner != "" && !containsFold(m.Corners, corner) {
			continue
		}
		if section != "" && !containsFold(m.Sections, section) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func containsFold(items []string, target string) bool {
	for _, item := range items {
		if strings.EqualFold(item, target) {
			return true
		}
	}
	return false
}
