package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/mapkit"
)

var pruneCmd = &cobra.Command{
	Use:   "prune [file]",
	Short: "Drop top-level entries whose value is null",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd, args, 0)
		if err != nil {
			return err
		}

		pruned := mapkit.Reject(doc, func(_ string, v any) bool {
			return v == nil
		})
		return printJSON(cmd, pruned)
	},
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}
