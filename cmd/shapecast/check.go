package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	sc "github.com/reoring/shapecast"
	"github.com/reoring/shapecast/i18n"
)

// errNotConform reports that at least one checked document failed. Each
// failure has already been printed.
var errNotConform = errors.New("documents do not conform")

func newCheckCmd(a *app) *cobra.Command {
	var specPath, format string
	cmd := &cobra.Command{
		Use:   "check --spec FILE [INPUT...]",
		Short: "Check documents against a spec descriptor",
		Long: `Check decodes every document of every input and reports, one line per
document, whether it conforms to the spec descriptor:

  <input>#<index>: <message>

Inputs are JSON (several concatenated values allowed) or YAML (multi-document
streams allowed). With no input, or "-", stdin is read.

Example:
  shapecast check --spec user.yaml users.ndjson
  cat user.json | shapecast check --spec user.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := a.loadSpec(specPath)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{stdinName}
			}
			failed := 0
			for _, input := range args {
				f, err := parseFormat(format, input)
				if err != nil {
					return err
				}
				docs, err := a.readDocuments(cmd, input, f)
				if err != nil {
					return err
				}
				for i, doc := range docs {
					msg := i18n.T("conforms", nil)
					if !sc.Is(spec, doc) {
						failed++
						msg = i18n.T("not_conform", nil) + " (" + sc.KindOf(doc).String() + ")"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s#%d: %s\n", input, i, msg)
				}
				a.logger.Debug("input checked", "input", input, "format", f.String(), "documents", len(docs))
			}
			if failed > 0 {
				a.logger.Info("check failed", "failed", failed)
				return errNotConform
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&specPath, "spec", "", "spec descriptor file (YAML or JSON)")
	cmd.Flags().StringVar(&format, "format", "", "input format (json, yaml; default: by extension, json for stdin)")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}
