package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bolt/bolthooks/internal/app"
	"github.com/bolt/bolthooks/internal/branding"
	"github.com/bolt/bolthooks/internal/console"
	"github.com/bolt/bolthooks/internal/hooks"
	"github.com/bolt/bolthooks/internal/logging"
	"github.com/bolt/bolthooks/internal/manifest"
	"github.com/spf13/cobra"
)

// newEvent builds the hook context for the project selected by the
// persistent flags.
func newEvent(cmd *cobra.Command, name string) (*hooks.Event, error) {
	root, err := projectRoot()
	if err != nil {
		return nil, err
	}

	composer, err := manifest.Load(root, os.Getenv)
	if err != nil {
		return nil, err
	}

	ev := &hooks.Event{
		Name:       name,
		IO:         console.New(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		Composer:   composer,
		App:        app.NewLoader(root, composer.VendorDir()),
		PackageDir: resolvePackageDir(composer),
		WorkDir:    root,
		Getenv:     os.Getenv,
		Log:        logging.New(cmd.ErrOrStderr(), logging.ProfileRuntime, logging.Options{Verbose: verbose}),
	}

	// Bad options are reported but only fail once a hook actually uses them.
	result, err := composer.Validate()
	if err != nil {
		return nil, err
	}
	for _, issue := range result.Issues {
		ev.IO.WriteError("<comment>%s: extra%s: %s</comment>", filepath.Base(composer.Path), issue.Path, issue.Message)
	}

	ev.Log.Debug().
		Str("root", root).
		Str("vendor", composer.VendorDir()).
		Str("package", ev.PackageDir).
		Msg("project")
	return ev, nil
}

func projectRoot() (string, error) {
	root := workingDir
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		root = wd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", root, err)
	}
	return abs, nil
}

// resolvePackageDir prefers --package-dir, then the installed Bolt package,
// then the project itself (when developing Bolt).
func resolvePackageDir(composer *manifest.Composer) string {
	if packageDir != "" {
		abs, err := filepath.Abs(packageDir)
		if err != nil {
			return packageDir
		}
		return abs
	}
	installed := filepath.Join(composer.VendorDir(), filepath.FromSlash(branding.PackageName()))
	if info, err := os.Stat(installed); err == nil && info.IsDir() {
		return installed
	}
	return composer.Root
}
