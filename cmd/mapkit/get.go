package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/mapkit"
)

var getCmd = &cobra.Command{
	Use:   "get <path> [file]",
	Short: "Resolve a dotted path in a document and print the value as JSON",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		doc, err := loadDocument(cmd, args, 1)
		if err != nil {
			return err
		}

		path := args[0]
		logger.Debug("resolving path", "path", path)

		value, err := mapkit.FetchPathStrict(doc, path)
		if err != nil {
			return err
		}
		return printJSON(cmd, value)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
