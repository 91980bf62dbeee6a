// Package main provides the CLI entrypoint for profile-converter.
//
// profile-converter moves checkout-bot profiles between tools:
//   - convert: rewrite one tool's export in another tool's layout
//   - inspect: print the parsed profiles as YAML
//   - validate: report every broken record of an export
//   - formats: list supported tools and their default file names
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"profile-converter/internal/convert"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	root := newRootCmd(viper.New(), logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, colorize("Error: "+err.Error(), color.FgRed))
		os.Exit(exitCode(err))
	}
}

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

// exitCode separates a bad format selection from a bad input document.
func exitCode(err error) int {
	if convert.IsUsageError(err) {
		return exitUsage
	}

	return exitFailure
}
