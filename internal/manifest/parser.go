package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
)

// FileName returns the manifest file name, honoring the COMPOSER variable.
func FileName(getenv func(string) string) string {
	if name := getenv(EnvComposer); name != "" {
		return name
	}
	return DefaultFileName
}

// Load reads the manifest of the project in root.
func Load(root string, getenv func(string) string) (*Composer, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	path := FileName(getenv)
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return LoadFile(path, getenv)
}

// LoadFile reads the manifest at path. The project root is the file's
// directory.
func LoadFile(path string, getenv func(string) string) (*Composer, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var c Composer
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	c.Path = path
	c.Root = filepath.Dir(path)
	c.vendorDir, err = resolveVendorDir(&c, getenv)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// New builds a manifest in memory, for callers that have no composer.json.
func New(root string, extra map[string]any) *Composer {
	return &Composer{
		Path:      filepath.Join(root, DefaultFileName),
		Root:      root,
		Extra:     extra,
		vendorDir: filepath.Join(root, DefaultVendorDir),
	}
}

// resolveVendorDir mirrors Composer's precedence: the COMPOSER_VENDOR_DIR
// variable, then config.vendor-dir, then "vendor". Relative values are
// anchored at the project root.
func resolveVendorDir(c *Composer, getenv func(string) string) (string, error) {
	dir := getenv(EnvVendorDir)
	if dir == "" {
		if raw, ok := c.Config["vendor-dir"]; ok {
			s, err := cast.ToStringE(raw)
			if err != nil {
				return "", fmt.Errorf("config.vendor-dir in %s: %w", c.Path, err)
			}
			dir = s
		}
	}
	if dir == "" {
		dir = DefaultVendorDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.Root, dir)
	}
	return dir, nil
}
