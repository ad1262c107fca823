// Package logger builds zerolog loggers from declarative configuration, with
// console output and size-rotated file output.
package logger

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// New creates a zerolog.Logger from the given configuration
func New(config LoggerConfig) (zerolog.Logger, error) {
	if err := validateConfig(config); err != nil {
		return zerolog.Nop(), err
	}

	var writers []io.Writer
	if config.EnableConsole {
		writers = append(writers, newConsoleWriter(config))
	}
	if config.EnableFile {
		writers = append(writers, newFileWriter(config))
	}
	if len(writers) == 0 {
		return zerolog.Nop(), fmt.Errorf("no output writers configured")
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(config.Level).
		With().
		Timestamp().
		Logger()

	return logger, nil
}

func validateConfig(config LoggerConfig) error {
	if config.EnableFile && config.FilePath == "" {
		return fmt.Errorf("file path required when file logging enabled")
	}
	if config.EnableFile && config.MaxSizeMB <= 0 {
		return fmt.Errorf("max size must be positive, got %d", config.MaxSizeMB)
	}
	return nil
}
