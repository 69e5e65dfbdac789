package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mapkit",
	Short: "mapkit manipulates nested JSON/YAML documents",
	Long: `mapkit applies nested-map operations (path lookup, key remapping,
filtering) to JSON or YAML documents read from a file or stdin.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("format", "auto", "Input format: json, yaml or auto")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging on stderr")
}
