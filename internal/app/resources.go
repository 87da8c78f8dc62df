package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
)

// ErrPlaceholderCycle is returned when resource paths reference each other.
var ErrPlaceholderCycle = errors.New("resource path placeholders form a cycle")

// DefaultPaths is the standard Bolt project layout. Values may reference
// other resources as %name%.
var DefaultPaths = map[string]string{
	"root":       ".",
	"app":        "%root%/app",
	"cache":      "%app%/cache",
	"config":     "%app%/config",
	"database":   "%app%/database",
	"extensions": "%root%/extensions",
	"web":        "%root%/public",
	"files":      "%web%/files",
	"themebase":  "%root%/theme",
	"view":       "%web%/bolt-public/view",
}

var placeholder = regexp.MustCompile(`%([a-z_-]+)%`)

// Resources maps resource names to absolute paths.
type Resources struct {
	paths map[string]string
}

// NewResources resolves overrides on top of DefaultPaths for a project
// rooted at root.
func NewResources(root string, overrides map[string]string) (*Resources, error) {
	raw := make(map[string]string, len(DefaultPaths)+len(overrides))
	for k, v := range DefaultPaths {
		raw[k] = v
	}
	for k, v := range overrides {
		raw[k] = v
	}
	raw["root"] = root

	r := &Resources{paths: make(map[string]string, len(raw))}
	for name := range raw {
		if _, err := r.expand(name, raw, map[string]bool{}); err != nil {
			return nil, err
		}
	}
	for name, path := range r.paths {
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		r.paths[name] = filepath.Clean(path)
	}
	return r, nil
}

func (r *Resources) expand(name string, raw map[string]string, visiting map[string]bool) (string, error) {
	if p, ok := r.paths[name]; ok {
		return p, nil
	}
	if visiting[name] {
		return "", fmt.Errorf("%w: %%%s%%", ErrPlaceholderCycle, name)
	}
	visiting[name] = true
	defer delete(visiting, name)

	var expandErr error
	value := placeholder.ReplaceAllStringFunc(raw[name], func(m string) string {
		ref := placeholder.FindStringSubmatch(m)[1]
		if _, ok := raw[ref]; !ok {
			return m
		}
		p, err := r.expand(ref, raw, visiting)
		if err != nil && expandErr == nil {
			expandErr = err
		}
		return p
	})
	if expandErr != nil {
		return "", expandErr
	}

	r.paths[name] = value
	return value, nil
}

// Path returns the absolute path of a named resource.
func (r *Resources) Path(name string) (string, bool) {
	p, ok := r.paths[name]
	return p, ok
}

// Names returns the known resource names in sorted order.
func (r *Resources) Names() []string {
	names := make([]string, 0, len(r.paths))
	for name := range r.paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
