package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"profile-converter/internal/config"
	"profile-converter/internal/convert"
	"profile-converter/internal/log"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	log     *logrus.Logger
	cfgFile string

	cfg       *config.Config
	converter *convert.Converter
}

func newRootCmd(v *viper.Viper, logger *logrus.Logger) *cobra.Command {
	a := &app{v: v, log: logger}
	config.SetDefaults(v)

	root := &cobra.Command{
		Use:   "profile-converter",
		Short: "Convert checkout bot profiles between tools",
		Long: `profile-converter reads the profile export of one checkout bot and
writes it in the layout another bot imports. Supported tools are listed by
the formats command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	flags := root.PersistentFlags()
	flags.SortFlags = false
	flags.StringVar(&a.cfgFile, "config", "",
		"Configuration file. Defaults to .profile-converter.yaml in the working or home directory.")
	flags.StringP(config.KeyFrom, "f", "valor", "Source format, or auto to detect it from the input.")
	flags.StringP(config.KeyInput, "i", "",
		"Input file, - for standard input. Defaults to the source format's export file name.")
	flags.StringP(config.KeyLogLevel, "l", "info",
		"Log level. Allowed values: trace, debug, info, warn, error.")
	flags.Bool(config.KeyDebug, false, "Use debug mode, same as --logLevel debug.")
	flags.Bool(config.KeyNoColor, false, "Disable colors in output.")

	for _, key := range []string{config.KeyFrom, config.KeyInput, config.KeyLogLevel, config.KeyDebug, config.KeyNoColor} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(
		newConvertCmd(a),
		newInspectCmd(a),
		newValidateCmd(a),
		newFormatsCmd(a),
	)

	return root
}

// init loads the configuration file and environment, then sets up logging
// and the converter.
func (a *app) init() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName(config.FileName)
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}

	config.Bind(a.v)

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return err
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	if err := log.SetLogLevel(a.log, cfg.LogLevel, cfg.Debug, cfg.NoColor); err != nil {
		return err
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debugf("using config file: %s", used)
	}

	a.cfg = cfg
	a.converter = convert.New(convert.DefaultRegistry(convert.Options{CybersoleGroup: cfg.Cybersole.Group}), a.log)

	return nil
}

func colorize(msg string, attr color.Attribute) string {
	return color.New(attr).Sprint(msg)
}
