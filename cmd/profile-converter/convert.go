package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"profile-converter/internal/config"
	"profile-converter/internal/fileio"
)

// autoFormat asks for the source format to be detected from the input.
const autoFormat = "auto"

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a profile export to another tool's layout",
		Example: `  profile-converter convert --from valor --to stellar
  profile-converter convert --from auto --to cybersole --input export.json --output import.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runConvert(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringP(config.KeyTo, "t", "stellar", "Target format.")
	flags.StringP(config.KeyOutput, "o", "",
		"Output file, - for standard output. Defaults to the target format's import file name.")
	flags.String("group", "Converted Profiles", "Name of the group cybersole output is placed in.")

	_ = a.v.BindPFlag(config.KeyTo, flags.Lookup(config.KeyTo))
	_ = a.v.BindPFlag(config.KeyOutput, flags.Lookup(config.KeyOutput))
	_ = a.v.BindPFlag(config.KeyCybersoleGroup, flags.Lookup("group"))

	return cmd
}

func (a *app) runConvert(cmd *cobra.Command) error {
	to := a.cfg.To

	// a detected source is checked once it is known
	if a.cfg.From != autoFormat {
		if err := a.converter.Check(a.cfg.From, to); err != nil {
			return err
		}
	}

	from, raw, err := a.readInput()
	if err != nil {
		return err
	}

	if err := a.converter.Check(from, to); err != nil {
		return err
	}

	res, err := a.converter.Convert(from, to, raw)
	if err != nil {
		return err
	}

	output := a.cfg.OutputFile(to)
	if err := fileio.WriteJSON(output, res.Output, a.cfg.Indent); err != nil {
		return err
	}

	if output != fileio.Stdio {
		msg := fmt.Sprintf("Converted %s %s from %s to %s: %s",
			humanize.Comma(int64(res.Count)), english.PluralWord(res.Count, "profile", ""), res.From, res.To, output)
		fmt.Fprintln(cmd.OutOrStdout(), colorize(msg, color.FgGreen))
	}

	return nil
}

// readInput resolves the source format and decodes the input document.
// With --from auto the format is detected from the document itself, and
// the input file must then be given explicitly.
func (a *app) readInput() (string, any, error) {
	from := a.cfg.From

	if from == autoFormat {
		if a.cfg.Input == "" {
			return "", nil, fmt.Errorf("--input is required with --from %s", autoFormat)
		}

		raw, data, err := fileio.ReadJSON(a.cfg.Input)
		if err != nil {
			return "", nil, err
		}

		from, err = a.converter.Formats().Detect(data)
		if err != nil {
			return "", nil, err
		}

		a.log.Infof("detected %s input", from)

		return from, raw, nil
	}

	if _, err := a.converter.Formats().Lookup(from, "source"); err != nil {
		return "", nil, err
	}

	raw, _, err := fileio.ReadJSON(a.cfg.InputFile(from))
	if err != nil {
		return "", nil, err
	}

	return from, raw, nil
}
