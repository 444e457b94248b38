// Package logging configures the global zerolog logger for the binaries.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultFileName is the log file written under the host's log directory.
const DefaultFileName = "insteon_control.log"

// Options selects where log output goes.
type Options struct {
	// File, when set, receives JSON log lines through a rotating writer
	// instead of the console.
	File    string
	Verbose bool
}

// DefaultFile returns the host's log path for this app, or "" when
// SPLUNK_HOME is not set.
func DefaultFile() string {
	home := os.Getenv("SPLUNK_HOME")
	if home == "" {
		return ""
	}
	return filepath.Join(home, "var", "log", "splunk", DefaultFileName)
}

// Setup installs the global logger. The returned closer flushes the log
// file, if any.
func Setup(opts Options) io.Closer {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if opts.File == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return nopCloser{}
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		log.Warn().Err(err).Str("file", opts.File).Msg("Cannot create log directory, logging to stderr")
		return nopCloser{}
	}

	w := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return w
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
