// Package branding provides compile-time identity values for the hook runner.
//
// The values come from branding.yaml, embedded at build time, so a fork that
// installs a differently named CMS package only has to edit that file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	EnvPrefix    string `yaml:"env_prefix"`
	OptionPrefix string `yaml:"option_prefix"`
	PackageName  string `yaml:"package_name"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "bolthooks",
			DisplayName:  "Bolt Hooks",
			Description:  "Composer lifecycle hooks for Bolt projects",
			EnvPrefix:    "BOLT",
			OptionPrefix: "bolt-",
			PackageName:  "bolt/bolt",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "bolthooks").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "BOLT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// OptionPrefix returns the prefix of Composer extra keys (e.g., "bolt-").
func OptionPrefix() string { load(); return defaults.OptionPrefix }

// PackageName returns the Composer package that ships the bundled assets
// (e.g., "bolt/bolt"). It doubles as its path below the vendor directory.
func PackageName() string { load(); return defaults.PackageName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("LOG_LEVEL") → "BOLT_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

// OptionEnvVar maps a prefixed option key to its environment variable name,
// e.g., OptionEnvVar("bolt-web-dir") → "BOLT_WEB_DIR".
func OptionEnvVar(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}
