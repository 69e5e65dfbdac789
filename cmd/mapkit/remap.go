package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/aretw0/mapkit"
)

var remapCmd = &cobra.Command{
	Use:   "remap <transform> [file]",
	Short: "Rewrite every key of a document, recursively",
	Long: `Rewrite every key of a document (including keys of nested objects)
with a named transform: lower, upper or snake.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		transform, err := keyTransform(args[0])
		if err != nil {
			return err
		}

		doc, err := loadDocument(cmd, args, 1)
		if err != nil {
			return err
		}

		logger.Debug("remapping keys", "transform", args[0], "entries", len(doc))
		return printJSON(cmd, mapkit.RemapKeys(doc, transform))
	},
}

func keyTransform(name string) (func(string) string, error) {
	switch name {
	case "lower":
		return strings.ToLower, nil
	case "upper":
		return strings.ToUpper, nil
	case "snake":
		return toSnake, nil
	default:
		return nil, fmt.Errorf("unknown transform %q (want lower, upper or snake)", name)
	}
}

// toSnake converts camelCase and PascalCase keys to snake_case.
// Existing separators are kept as-is.
func toSnake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 2)
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(remapCmd)
}
