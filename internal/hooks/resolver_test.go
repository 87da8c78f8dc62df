package hooks

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDirPrefersApplication(t *testing.T) {
	te := newTestEvent(t, map[string]any{"bolt-web-dir": "from-extra"})
	te.env["BOLT_WEB_DIR"] = "from-env"
	locator := &fakeLocator{paths: map[string]string{"web": "/srv/app/public/"}}
	te.App = locator

	dir, err := GetDir(te.Event, "web", "public")
	require.NoError(t, err)
	assert.Equal(t, "/srv/app/public", dir)
	assert.Equal(t, 1, locator.calls)
}

func TestGetDirFallsBackWhenUnavailable(t *testing.T) {
	te := newTestEvent(t, map[string]any{"bolt-files-dir": "public/files/"})
	te.App = &fakeLocator{}

	dir, err := GetDir(te.Event, "files", "")
	require.NoError(t, err)
	assert.Equal(t, "public/files", dir)
}

func TestGetDirWithoutApplication(t *testing.T) {
	te := newTestEvent(t, nil)

	dir, err := GetDir(te.Event, "web", "public")
	require.NoError(t, err)
	assert.Equal(t, "public", dir)

	dir, err = GetDir(te.Event, "themebase", "")
	require.NoError(t, err)
	assert.Empty(t, dir)
}

func TestGetDirPropagatesLookupErrors(t *testing.T) {
	te := newTestEvent(t, map[string]any{"bolt-web-dir": "public"})
	te.App = &fakeLocator{err: errBroken}

	_, err := GetDir(te.Event, "web", "public")
	assert.ErrorIs(t, err, errBroken)
}

func TestGetDirRejectsNonStringOption(t *testing.T) {
	te := newTestEvent(t, map[string]any{"bolt-web-dir": map[string]any{"a": "b"}})

	_, err := GetDir(te.Event, "web", "public")
	assert.ErrorContains(t, err, "bolt-web-dir")
}

func TestRequireDir(t *testing.T) {
	te := newTestEvent(t, nil)

	_, err := RequireDir(te.Event, "themebase")
	assert.ErrorIs(t, err, ErrDirNotConfigured)
	assert.ErrorContains(t, err, "BOLT_THEMEBASE_DIR")
	assert.ErrorContains(t, err, "extra.bolt-themebase-dir")

	te.env["BOLT_THEMEBASE_DIR"] = "theme"
	dir, err := RequireDir(te.Event, "themebase")
	require.NoError(t, err)
	assert.Equal(t, "theme", dir)
}

func TestGetWebDirFromExtra(t *testing.T) {
	te := newTestEvent(t, nil)
	web := te.mkdir(t, "srv/pub")
	te.Composer.Extra = map[string]any{"bolt-web-dir": web + "/"}

	dir, ok, err := GetWebDir(te.Event)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, web, dir)
	assert.Empty(t, te.out.String())
}

func TestGetWebDirRelativeToWorkDir(t *testing.T) {
	te := newTestEvent(t, nil)
	te.mkdir(t, "public")

	dir, ok, err := GetWebDir(te.Event)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "public", dir)
}

func TestGetWebDirMissing(t *testing.T) {
	te := newTestEvent(t, nil)

	dir, ok, err := GetWebDir(te.Event)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, dir)

	assert.Equal(t,
		"The web directory (public) was not found in "+te.root()+", can not install assets.\n",
		te.out.String())
	assert.Empty(t, te.errOut.String())
}

func TestGetWebDirIsAFile(t *testing.T) {
	te := newTestEvent(t, nil)
	writeFile(t, filepath.Join(te.root(), "public"), "not a dir")

	_, ok, err := GetWebDir(te.Event)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, te.out.String(), "was not found")
}

func TestTrimSeparators(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"public", "public"},
		{"public/", "public"},
		{"/srv/pub//", "/srv/pub"},
		{"/", "/"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, trimSeparators(tt.in), tt.in)
	}
}
