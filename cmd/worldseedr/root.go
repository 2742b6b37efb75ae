package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "worldseedr",
	Short: "Procedural rectangle-packing world generator",
	Long: `worldseedr drives a possibility-schema world generator: given a YAML
library of named schemas and a root title, it recursively packs children
into a host rectangle and flattens the result into a command buffer of
concrete placements.

It provides commands for:
  - Generating a world from a possibility library
  - Linting a possibility library before generation is attempted
  - Printing build version information`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress to stderr")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(versionCmd)
}

func verbosef(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
