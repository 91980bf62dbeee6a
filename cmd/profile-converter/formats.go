package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"profile-converter/internal/region"
)

func newFormatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported formats, their default file names and address tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			files := newTable(out, "Format", "Input", "Output")
			for _, name := range a.converter.Formats().Names() {
				defaults := a.cfg.DefaultsFor(name)
				files.Append([]string{name, defaults.Input, defaults.Output})
			}

			files.Render()
			fmt.Fprintln(out)

			return renderRegions(out)
		},
	}
}

// renderRegions lists the address reference tables lookups resolve against.
func renderRegions(out io.Writer) error {
	regions := newTable(out, "Table", "Country", "Entries")
	regions.Append([]string{region.Countries.Domain(), "", humanize.Comma(int64(region.Countries.Len()))})

	for _, code := range region.RegionCountries() {
		t, err := region.RegionTable(code)
		if err != nil {
			return err
		}

		regions.Append([]string{t.Domain(), code, humanize.Comma(int64(t.Len()))})
	}

	regions.Render()

	return nil
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)

	return table
}
