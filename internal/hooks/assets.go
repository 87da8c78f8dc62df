package hooks

import (
	"fmt"
	"path/filepath"

	"github.com/bolt/bolthooks/internal/mirror"
)

// AssetDirs are the app/view subdirectories published to the web root.
var AssetDirs = []string{"css", "fonts", "img", "js"}

// PublicViewDir is where assets land, relative to the web root.
const PublicViewDir = "bolt-public/view"

// InstallAssets publishes Bolt's backend assets. It should run on the
// "post-autoload-dump" event.
func InstallAssets(ev *Event) error {
	webDir, ok, err := GetWebDir(ev)
	if err != nil || !ok {
		return err
	}

	originDir := filepath.Join(ev.PackageDir, "app", "view")
	targetDir := filepath.Join(webDir, filepath.FromSlash(PublicViewDir))

	ev.IO.WriteError("Installing assets to <info>%s</info>", targetDir)
	for _, dir := range AssetDirs {
		result, err := mirror.Mirror(
			filepath.Join(originDir, dir),
			ev.abs(filepath.Join(targetDir, dir)),
			mirror.Options{Override: true, Delete: true},
		)
		if err != nil {
			return fmt.Errorf("installing %s assets: %w", dir, err)
		}
		ev.Log.Debug().Str("dir", dir).Int("removed", len(result.Removed)).Msg("assets mirrored")
	}
	return nil
}
