package main

import "github.com/spf13/cobra"

func newSchemaCmd(a *app) *cobra.Command {
	var specPath string
	cmd := &cobra.Command{
		Use:   "schema --spec FILE",
		Short: "Print the JSON Schema projection of a spec descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := a.loadSpec(specPath)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), spec.JSONSchema())
		},
	}
	cmd.Flags().StringVar(&specPath, "spec", "", "spec descriptor file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}
