// Package logging builds the zerolog logger used for diagnostic output.
// Hook status lines are not log records; they go through the console package.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/bolt/bolthooks/internal/branding"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Profile selects the defaults a logger starts from.
type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Options tweak a profile's defaults.
type Options struct {
	Verbose bool
	Getenv  func(string) string
}

// EnvLogLevel names the variable that overrides the log level.
func EnvLogLevel() string {
	return branding.EnvVar("LOG_LEVEL")
}

// New returns a console logger writing to w.
func New(w io.Writer, profile Profile, opts Options) zerolog.Logger {
	level := defaultLevel(profile)
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if lvl, ok := parseLevel(getenv(EnvLogLevel())); ok {
		level = lvl
	}
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	cw := zerolog.ConsoleWriter{Out: w, NoColor: profile == ProfileTest || !isTerminal(w)}
	if profile == ProfileTest {
		cw.PartsExclude = []string{zerolog.TimestampFieldName}
	} else {
		cw.TimeFormat = "15:04:05"
	}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

func defaultLevel(profile Profile) zerolog.Level {
	if profile == ProfileTest {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

func parseLevel(raw string) (zerolog.Level, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return zerolog.NoLevel, false
	}
	lvl, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.NoLevel, false
	}
	return lvl, true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
