package main

import (
	"github.com/spf13/cobra"

	sc "github.com/reoring/shapecast"
)

func newSampleCmd(a *app) *cobra.Command {
	var specPath string
	cmd := &cobra.Command{
		Use:   "sample --spec FILE",
		Short: "Print a sample document that conforms to a spec descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := a.loadSpec(specPath)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), sc.SampleOf(spec))
		},
	}
	cmd.Flags().StringVar(&specPath, "spec", "", "spec descriptor file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}
