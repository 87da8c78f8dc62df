package hooks

import (
	"os"
	"path/filepath"

	"github.com/bolt/bolthooks/internal/app"
	"github.com/bolt/bolthooks/internal/console"
	"github.com/bolt/bolthooks/internal/manifest"
	"github.com/rs/zerolog"
)

// ResourceLocator answers resource path lookups from a loaded application.
// An Unavailable lookup makes the resolver fall back to options; an error
// is returned to the caller unchanged.
type ResourceLocator interface {
	LookupPath(name string) (app.Lookup, error)
}

// Event is the context a hook runs in.
type Event struct {
	Name     string
	IO       *console.IO
	Composer *manifest.Composer
	// App is consulted before options. Nil means no application is
	// available.
	App ResourceLocator
	// PackageDir is the root of the Bolt package holding the bundled
	// app/view, files and theme trees.
	PackageDir string
	// WorkDir anchors relative paths. Empty means the process working
	// directory.
	WorkDir string
	Getenv  func(string) string
	Log     zerolog.Logger
}

func (ev *Event) getenv(key string) string {
	if ev.Getenv == nil {
		return os.Getenv(key)
	}
	return ev.Getenv(key)
}

func (ev *Event) workDir() string {
	if ev.WorkDir != "" {
		return ev.WorkDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// abs anchors a relative path at the event's working directory.
func (ev *Event) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ev.workDir(), path)
}
