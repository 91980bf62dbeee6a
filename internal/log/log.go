// Package log configures the logrus logger used by the command line.
package log

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

// SetFormatter prints bare messages.
func SetFormatter(logger *logrus.Logger) {
	logger.SetReportCaller(false)
	logger.SetFormatter(&easy.Formatter{
		LogFormat: "%msg%\n",
	})
}

// SetDebugFormatter prints levels, fields and the calling file.
func SetDebugFormatter(logger *logrus.Logger, noColor bool) {
	logger.SetReportCaller(true)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:          noColor,
		DisableLevelTruncation: true,
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
		},
	})
}

// SetLogLevel sets the level and formatter of logger. Debug mode overrides
// logLevel.
func SetLogLevel(logger *logrus.Logger, logLevel string, debug, noColor bool) error {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
		SetDebugFormatter(logger, noColor)

		return nil
	}

	SetFormatter(logger)

	if logLevel == "" {
		logger.SetLevel(logrus.InfoLevel)
		return nil
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	logger.SetLevel(level)

	return nil
}
