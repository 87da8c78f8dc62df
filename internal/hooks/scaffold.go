package hooks

import (
	"fmt"
	"path/filepath"

	"github.com/bolt/bolthooks/internal/mirror"
)

// InstallThemesAndFiles copies Bolt's default theme and files. It should run
// on the "post-create-project-cmd" event.
func InstallThemesAndFiles(ev *Event) error {
	mode, err := ConfigureDirMode(ev)
	if err != nil {
		return err
	}

	if _, ok, err := GetWebDir(ev); err != nil || !ok {
		return err
	}

	opts := mirror.Options{Override: true, DirMode: mode}

	target, err := RequireDir(ev, "files")
	if err != nil {
		return err
	}
	ev.IO.WriteError("Installing <info>files</info> to <info>%s</info>", target)
	if _, err := mirror.Mirror(filepath.Join(ev.PackageDir, "files"), ev.abs(target), opts); err != nil {
		return fmt.Errorf("installing files: %w", err)
	}

	target, err = RequireDir(ev, "themebase")
	if err != nil {
		return err
	}
	ev.IO.WriteError("Installing <info>themes</info> to <info>%s</info>", target)
	if _, err := mirror.Mirror(filepath.Join(ev.PackageDir, "theme"), ev.abs(target), opts); err != nil {
		return fmt.Errorf("installing themes: %w", err)
	}
	return nil
}
