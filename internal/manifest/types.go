package manifest

// Defaults Composer applies when the environment and manifest are silent.
const (
	DefaultFileName  = "composer.json"
	DefaultVendorDir = "vendor"
)

// Environment variables Composer itself honors.
const (
	EnvComposer  = "COMPOSER"
	EnvVendorDir = "COMPOSER_VENDOR_DIR"
)

// Composer is the subset of composer.json the hooks care about.
type Composer struct {
	// Path is the manifest file that was read.
	Path string `json:"-"`
	// Root is the project directory containing the manifest.
	Root string `json:"-"`

	Name   string         `json:"name"`
	Extra  map[string]any `json:"extra"`
	Config map[string]any `json:"config"`

	vendorDir string
}

// VendorDir returns the absolute vendor directory.
func (c *Composer) VendorDir() string {
	return c.vendorDir
}

// ExtraValue returns the extra entry for key and whether it was present.
func (c *Composer) ExtraValue(key string) (any, bool) {
	if c == nil || c.Extra == nil {
		return nil, false
	}
	v, ok := c.Extra[key]
	return v, ok
}
