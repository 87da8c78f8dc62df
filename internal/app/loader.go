package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bolt/bolthooks/internal/branding"
	"github.com/bolt/bolthooks/internal/config"
)

// BootstrapFile is the entry point Composer generates inside the Bolt
// package during autoload.
const BootstrapFile = "app/bootstrap.php"

// Application is a loaded Bolt project.
type Application struct {
	Root      string
	Config    *config.Project
	Resources *Resources
}

// Loader loads the Application for a project once and answers resource
// lookups from it. A Loader is safe for concurrent use.
type Loader struct {
	root      string
	vendorDir string

	once   sync.Once
	app    *Application
	reason string
	err    error
	loads  int
}

// NewLoader returns a Loader for the project in root whose dependencies are
// installed in vendorDir.
func NewLoader(root, vendorDir string) *Loader {
	return &Loader{root: root, vendorDir: vendorDir}
}

// BootstrapPath returns where the Bolt bootstrap is expected.
func (l *Loader) BootstrapPath() string {
	return filepath.Join(l.vendorDir, filepath.FromSlash(branding.PackageName()), filepath.FromSlash(BootstrapFile))
}

// Load returns the application. A nil Application with a nil error means the
// application is not installed yet; the returned reason says why. The first
// outcome is cached, including failures.
func (l *Loader) Load() (*Application, string, error) {
	l.once.Do(func() {
		l.loads++
		l.app, l.reason, l.err = l.load()
	})
	return l.app, l.reason, l.err
}

func (l *Loader) load() (*Application, string, error) {
	bootstrap := l.BootstrapPath()
	if _, err := os.Stat(bootstrap); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Sprintf("bootstrap %s not found", bootstrap), nil
		}
		return nil, "", fmt.Errorf("checking bootstrap %s: %w", bootstrap, err)
	}

	cfg, err := config.Load(l.root)
	if err != nil {
		return nil, "", err
	}

	resources, err := NewResources(l.root, cfg.Paths)
	if err != nil {
		return nil, "", fmt.Errorf("resolving resource paths: %w", err)
	}

	return &Application{Root: l.root, Config: cfg, Resources: resources}, "", nil
}

// LookupPath asks the application for the path of a named resource.
func (l *Loader) LookupPath(name string) (Lookup, error) {
	app, reason, err := l.Load()
	if err != nil {
		return Lookup{}, err
	}
	if app == nil {
		return Unavailable(reason), nil
	}
	return app.LookupPath(name), nil
}

// LookupPath returns the configured path for name.
func (a *Application) LookupPath(name string) Lookup {
	p, ok := a.Resources.Path(name)
	if !ok {
		return Unavailable(fmt.Sprintf("unknown resource %q (known: %s)", name, strings.Join(a.Resources.Names(), ", ")))
	}
	return Found(p)
}
