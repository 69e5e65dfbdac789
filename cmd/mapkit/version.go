package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/mapkit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mapkit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mapkit version %s\n", strings.TrimSpace(mapkit.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
