package hooks

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bolt/bolthooks/internal/app"
	"github.com/bolt/bolthooks/internal/console"
	"github.com/bolt/bolthooks/internal/manifest"
	"github.com/stretchr/testify/require"
)

// fakeLocator answers lookups from a map and counts calls.
type fakeLocator struct {
	paths map[string]string
	err   error
	calls int
}

func (f *fakeLocator) LookupPath(name string) (app.Lookup, error) {
	f.calls++
	if f.err != nil {
		return app.Lookup{}, f.err
	}
	if p, ok := f.paths[name]; ok {
		return app.Found(p), nil
	}
	return app.Unavailable("not configured"), nil
}

var errBroken = errors.New("broken bootstrap")

type testEvent struct {
	*Event
	out    *bytes.Buffer
	errOut *bytes.Buffer
	env    map[string]string
}

// newTestEvent builds an event rooted at a temp project with a bundled Bolt
// package in vendor/bolt/bolt.
func newTestEvent(t *testing.T, extra map[string]any) *testEvent {
	t.Helper()
	root := t.TempDir()
	pkg := filepath.Join(root, "vendor", "bolt", "bolt")

	for _, dir := range AssetDirs {
		writeFile(t, filepath.Join(pkg, "app", "view", dir, "bolt."+dir), dir)
	}
	writeFile(t, filepath.Join(pkg, "files", "index.html"), "files")
	writeFile(t, filepath.Join(pkg, "theme", "base-2018", "theme.yml"), "name: base")

	te := &testEvent{
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		env:    map[string]string{},
	}
	te.Event = &Event{
		Name:       EventPostAutoloadDump,
		IO:         console.New(te.out, te.errOut),
		Composer:   manifest.New(root, extra),
		PackageDir: pkg,
		WorkDir:    root,
		Getenv:     func(key string) string { return te.env[key] },
	}
	return te
}

func (te *testEvent) root() string {
	return te.WorkDir
}

func (te *testEvent) mkdir(t *testing.T, rel string) string {
	t.Helper()
	dir := filepath.Join(te.root(), rel)
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
