package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdkscan-dev/pdkscan/internal/config"
)

func RunWorkspace(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if cfg.WorkspaceRoot == "" {
			fmt.Println("no default workspace root set")
			return nil
		}
		fmt.Println(cfg.WorkspaceRoot)
		return nil
	}

	abs, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid workspace root %q: %w", args[0], err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("workspace root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("workspace root %s is not a directory", abs)
	}

	cfg.WorkspaceRoot = abs
	if err := config.Save(cfg); err != nil {
		return err
	}
	logInteraction(abs, "workspace: default root set")
	fmt.Printf("default workspace root set to %s\n", abs)
	return nil
}
