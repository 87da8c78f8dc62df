package platform

import (
	"fmt"
	"os"
	"runtime"
)

// DefaultDirMode is the mode directories get when no mode is configured.
const DefaultDirMode os.FileMode = 0777

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// ChmodDirs applies mode to every directory in dirs, stopping at the first
// failure.
func ChmodDirs(dirs []string, mode os.FileMode) error {
	for _, dir := range dirs {
		if err := Chmod(dir, mode); err != nil {
			return fmt.Errorf("setting mode %o on %s: %w", mode, dir, err)
		}
	}
	return nil
}

// Umask returns the creation mask equivalent to creating directories with
// mode, i.e. 0777 - mode.
func Umask(mode os.FileMode) os.FileMode {
	return DefaultDirMode - mode.Perm()
}
