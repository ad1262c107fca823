package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// formatWriter wraps the raw output in the formatter matching the configured
// log format.
func formatWriter(format LogFormat, output io.Writer, noColor bool) io.Writer {
	switch format {
	case FormatConsole:
		return zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
			NoColor:    noColor,
		}
	case FormatText:
		return zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	default:
		return output
	}
}

// newConsoleWriter creates a writer for stderr output
func newConsoleWriter(config LoggerConfig) io.Writer {
	return formatWriter(config.Format, os.Stderr, false)
}

// newFileWriter creates a size-rotated file writer
func newFileWriter(config LoggerConfig) io.Writer {
	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
		// fall back to stderr if the log directory cannot be created
		return newConsoleWriter(config)
	}

	rotated := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		LocalTime:  true,
	}

	// file output is never colored
	return formatWriter(config.Format, rotated, true)
}
