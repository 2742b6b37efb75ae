package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/worldseedr/worldseedr/pkg/reachability"
)

var lintRoot string

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate a possibility library without generating anything",
	Long: `Lint loads a YAML possibility library and checks it for structural
problems that would otherwise only surface partway through generation:
unset modes, missing titles, Final children without a source, and (when
--root is given) possibilities the root can never reach.

Examples:
  worldseedr lint --library world.yaml
  worldseedr lint --library ./schemas --root level`,
	RunE: runLint,
}

func init() {
	lintCmd.Flags().StringVarP(&genLibraryPath, "library", "l", "", "path to a possibility library YAML file or directory (required)")
	lintCmd.Flags().StringVarP(&lintRoot, "root", "r", "", "root possibility title to check reachability from (optional)")
}

func runLint(cmd *cobra.Command, args []string) error {
	if genLibraryPath == "" {
		return fmt.Errorf("--library is required")
	}

	verbosef("loading possibility library from %s", genLibraryPath)
	lib, err := loadLibrary(genLibraryPath)
	if err != nil {
		return fmt.Errorf("failed to load library: %w", err)
	}

	if err := lib.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "library is invalid: %v\n", err)
		return err
	}
	fmt.Printf("%d possibilit(y/ies) loaded, schema valid\n", len(lib))

	if lintRoot == "" {
		return nil
	}

	report, err := reachability.Walk(lib, lintRoot)
	if err != nil {
		return fmt.Errorf("failed to check reachability from %q: %w", lintRoot, err)
	}
	fmt.Printf("%d of %d possibilit(y/ies) reachable from %q\n", len(report.Reachable), len(lib), lintRoot)
	if len(report.Orphaned) > 0 {
		fmt.Println("orphaned (defined but never reachable):")
		for _, title := range report.Orphaned {
			fmt.Printf("  - %s\n", title)
		}
	}
	return nil
}
