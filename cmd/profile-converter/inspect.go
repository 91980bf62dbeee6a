package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the profiles of an export as canonical YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, raw, err := a.readInput()
			if err != nil {
				return err
			}

			profiles, err := a.converter.Parse(from, raw)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			if err := enc.Encode(profiles); err != nil {
				return fmt.Errorf("failed to encode profiles: %w", err)
			}

			return enc.Close()
		},
	}
}
