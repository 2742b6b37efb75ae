package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at release time; left as a placeholder during development.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("worldseedr version %s\n", version)
	},
}
