package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	sc "github.com/reoring/shapecast"
	"github.com/reoring/shapecast/decode"
	"github.com/reoring/shapecast/descriptor"
)

const stdinName = "-"

// loadSpec reads and compiles the descriptor at path.
func (a *app) loadSpec(path string) (sc.AnySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec: %w", err)
	}
	spec, err := descriptor.Load(data, decode.FormatFromPath(path), descriptor.Options{NumberMode: a.numberMode})
	if err != nil {
		return nil, fmt.Errorf("load spec %s: %w", path, err)
	}
	a.logger.Debug("spec loaded", "path", path)
	return spec, nil
}

// readDocuments decodes every document held by input, a file path or "-"
// for the command's stdin.
func (a *app) readDocuments(cmd *cobra.Command, input string, f decode.Format) ([]any, error) {
	var (
		data []byte
		err  error
	)
	if input == stdinName {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", input, err)
	}
	docs, err := decode.Documents(data, f, a.numberMode)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", input, err)
	}
	return docs, nil
}

// parseFormat maps the --format flag to a decoder. The empty value picks a
// format from the input's extension.
func parseFormat(flag, input string) (decode.Format, error) {
	switch strings.ToLower(flag) {
	case "":
		return decode.FormatFromPath(input), nil
	case "json":
		return decode.FormatJSON, nil
	case "yaml", "yml":
		return decode.FormatYAML, nil
	default:
		return decode.FormatJSON, fmt.Errorf("unknown format %q (valid: json, yaml)", flag)
	}
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
