package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/mapkit/internal/logging"
)

// newLogger builds the command logger from the persistent --verbose flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(verbose)
}

// loadDocument reads a JSON or YAML document from the file argument at
// args[idx], or from stdin when the argument is absent or "-".
func loadDocument(cmd *cobra.Command, args []string, idx int) (map[string]any, error) {
	var (
		raw    []byte
		source string
		err    error
	)
	if len(args) > idx && args[idx] != "-" {
		source = args[idx]
		raw, err = os.ReadFile(source)
	} else {
		source = "stdin"
		raw, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "auto" {
		format = sniffFormat(raw)
	}

	doc, err := parseDocument(raw, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s as %s: %w", source, format, err)
	}
	return doc, nil
}

// sniffFormat guesses the document format; anything not starting with a JSON
// object or array delimiter is treated as YAML (a superset of JSON anyway).
func sniffFormat(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return "json"
	}
	return "yaml"
}

func parseDocument(raw []byte, format string) (map[string]any, error) {
	var doc map[string]any
	switch format {
	case "json":
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	case "yaml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return doc, nil
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
