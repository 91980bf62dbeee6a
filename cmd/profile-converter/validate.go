package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every record of an export and report all problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, raw, err := a.readInput()
			if err != nil {
				return err
			}

			diags, err := a.converter.Validate(from, raw)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, w := range diags.Warnings {
				fmt.Fprintln(out, colorize("warning: "+w.String(), color.FgYellow))
			}

			if err := diags.Error(); err != nil {
				n := len(diags.Errors)
				return fmt.Errorf("%s %s in %s input: %w", humanize.Comma(int64(n)), english.PluralWord(n, "problem", ""), from, err)
			}

			fmt.Fprintln(out, colorize(fmt.Sprintf("%s input is valid", from), color.FgGreen))

			return nil
		},
	}
}
