package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdataDir = "testdata"

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func absTestdata(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(testdataDir)
	require.NoError(t, err)
	return dir
}

func TestLoad(t *testing.T) {
	root := absTestdata(t)

	c, err := Load(root, env(nil))
	require.NoError(t, err)

	assert.Equal(t, "bolt/composer-install", c.Name)
	assert.Equal(t, filepath.Join(root, "composer.json"), c.Path)
	assert.Equal(t, root, c.Root)
	assert.Equal(t, filepath.Join(root, "lib"), c.VendorDir())

	v, ok := c.ExtraValue("bolt-web-dir")
	assert.True(t, ok)
	assert.Equal(t, "public/", v)

	_, ok = c.ExtraValue("bolt-files-dir")
	assert.False(t, ok)
}

func TestLoadHonorsComposerEnv(t *testing.T) {
	root := absTestdata(t)

	c, err := Load(root, env(map[string]string{EnvComposer: "minimal.json"}))
	require.NoError(t, err)

	assert.Equal(t, "acme/site", c.Name)
	assert.Equal(t, filepath.Join(root, DefaultVendorDir), c.VendorDir())
	assert.Nil(t, c.Extra)
}

func TestLoadVendorDirEnvWins(t *testing.T) {
	root := absTestdata(t)

	c, err := Load(root, env(map[string]string{EnvVendorDir: "/opt/vendor"}))
	require.NoError(t, err)
	assert.Equal(t, "/opt/vendor", c.VendorDir())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir(), env(nil))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	_, err := LoadFile(filepath.Join(testdataDir, "malformed.json"), env(nil))
	assert.ErrorContains(t, err, "parsing manifest")
}

func TestLoadRejectsNonStringVendorDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "composer.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"config": {"vendor-dir": {"a": 1}}}`), 0644))

	_, err := LoadFile(path, env(nil))
	assert.ErrorContains(t, err, "config.vendor-dir")
}

func TestNew(t *testing.T) {
	c := New("/srv/site", map[string]any{"bolt-web-dir": "web"})

	assert.Equal(t, "/srv/site", c.Root)
	assert.Equal(t, filepath.Join("/srv/site", "vendor"), c.VendorDir())
	v, ok := c.ExtraValue("bolt-web-dir")
	assert.True(t, ok)
	assert.Equal(t, "web", v)
}

func TestExtraValueNilManifest(t *testing.T) {
	var c *Composer
	_, ok := c.ExtraValue("bolt-web-dir")
	assert.False(t, ok)
}
