// Package config resolves run settings from flags, environment and an
// optional configuration file through viper.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Keys shared by flags, environment variables and the configuration file.
const (
	KeyFrom           = "from"
	KeyTo             = "to"
	KeyInput          = "input"
	KeyOutput         = "output"
	KeyCybersoleGroup = "cybersole.group"
	KeyIndent         = "indent"
	KeyLogLevel       = "logLevel"
	KeyDebug          = "debug"
	KeyNoColor        = "no-color"
)

// EnvPrefix prefixes every environment variable, e.g. PROFILE_CONVERTER_FROM.
const EnvPrefix = "profile_converter"

// FileName is the configuration file looked up in the working and home
// directories, without extension.
const FileName = ".profile-converter"

// Files are the default input and output file names of one format.
type Files struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
}

// DefaultFiles holds the file names each tool exports to and imports from.
var DefaultFiles = map[string]Files{
	"stellar":   {Input: "stellarprofiles.json", Output: "stellar_output.json"},
	"valor":     {Input: "valorprofiles.json", Output: "valor_output.txt"},
	"cybersole": {Input: "cybersoleprofiles.json", Output: "cybersole_output.json"},
}

// Config is a resolved set of run settings.
type Config struct {
	From     string           `mapstructure:"from"`
	To       string           `mapstructure:"to"`
	Input    string           `mapstructure:"input"`
	Output   string           `mapstructure:"output"`
	Formats  map[string]Files `mapstructure:"formats"`
	Indent   string           `mapstructure:"indent"`
	LogLevel string           `mapstructure:"logLevel"`
	Debug    bool             `mapstructure:"debug"`
	NoColor  bool             `mapstructure:"no-color"`

	Cybersole struct {
		Group string `mapstructure:"group"`
	} `mapstructure:"cybersole"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyFrom, "valor")
	v.SetDefault(KeyTo, "stellar")
	v.SetDefault(KeyCybersoleGroup, "Converted Profiles")
	v.SetDefault(KeyIndent, "  ")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyNoColor, false)

	for name, files := range DefaultFiles {
		v.SetDefault("formats."+name+".input", files.Input)
		v.SetDefault("formats."+name+".output", files.Output)
	}
}

// Bind enables environment variable lookup on v.
func Bind(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load decodes the settings held by v and validates them.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", KeyLogLevel, cfg.LogLevel, err)
	}

	if strings.Trim(cfg.Indent, " \t") != "" {
		return nil, fmt.Errorf("invalid %s %q: only spaces and tabs are allowed", KeyIndent, cfg.Indent)
	}

	return &cfg, nil
}

// InputFile returns the explicit input path, or the default file of format.
func (c *Config) InputFile(format string) string {
	if c.Input != "" {
		return c.Input
	}

	return c.DefaultsFor(format).Input
}

// OutputFile returns the explicit output path, or the default file of format.
func (c *Config) OutputFile(format string) string {
	if c.Output != "" {
		return c.Output
	}

	return c.DefaultsFor(format).Output
}

// DefaultsFor returns the configured file names of format, ignoring any
// explicit input or output path.
func (c *Config) DefaultsFor(format string) Files {
	if f, ok := c.Formats[format]; ok {
		return f
	}

	return DefaultFiles[format]
}
