package hooks

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bolt/bolthooks/internal/branding"
	"github.com/spf13/cast"
)

// ErrDirNotConfigured is returned when a directory without a default is
// neither known to the application nor set as an option.
var ErrDirNotConfigured = errors.New("directory not configured")

// GetDir resolves a named directory from the application, falling back to
// the "<name>-dir" option and then def. Trailing separators are removed.
func GetDir(ev *Event, name, def string) (string, error) {
	if ev.App != nil {
		lookup, err := ev.App.LookupPath(name)
		if err != nil {
			return "", fmt.Errorf("looking up %s directory: %w", name, err)
		}
		if lookup.Found {
			ev.Log.Debug().Str("name", name).Str("path", lookup.Path).Msg("directory from application")
			return trimSeparators(lookup.Path), nil
		}
		ev.Log.Debug().Str("name", name).Str("reason", lookup.Reason).Msg("application unavailable, using options")
	}

	raw := GetOption(ev, name+"-dir", def)
	dir, err := cast.ToStringE(raw)
	if err != nil {
		return "", fmt.Errorf("option %s%s-dir: %w", branding.OptionPrefix(), name, err)
	}
	ev.Log.Debug().Str("name", name).Str("path", dir).Msg("directory from options")
	return trimSeparators(dir), nil
}

// RequireDir is GetDir for directories that have no default.
func RequireDir(ev *Event, name string) (string, error) {
	dir, err := GetDir(ev, name, "")
	if err != nil {
		return "", err
	}
	if dir == "" {
		key := branding.OptionPrefix() + name + "-dir"
		return "", fmt.Errorf("%w: %s (set %s or extra.%s)", ErrDirNotConfigured, name, branding.OptionEnvVar(key), key)
	}
	return dir, nil
}

// GetWebDir resolves the web root. When it does not exist a warning is
// written to stdout and ok is false.
func GetWebDir(ev *Event) (dir string, ok bool, err error) {
	dir, err = GetDir(ev, "web", "public")
	if err != nil {
		return "", false, err
	}

	if info, statErr := os.Stat(ev.abs(dir)); statErr != nil || !info.IsDir() {
		ev.IO.Write("<error>The web directory (%s) was not found in %s, can not install assets.</error>", dir, ev.workDir())
		return "", false, nil
	}
	return dir, true, nil
}

// trimSeparators strips trailing path separators, keeping a bare root.
func trimSeparators(dir string) string {
	trimmed := strings.TrimRight(dir, "/"+string(os.PathSeparator))
	if trimmed == "" && dir != "" {
		return dir[:1]
	}
	return trimmed
}
