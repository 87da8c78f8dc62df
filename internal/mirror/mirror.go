package mirror

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bolt/bolthooks/internal/platform"
	"github.com/otiai10/copy"
)

// excludedNames are never copied, and never pruned from the destination.
var excludedNames = map[string]bool{
	".git":      true,
	".DS_Store": true,
}

// Options controls how Mirror treats the destination.
type Options struct {
	// Override copies every file even if the destination copy is newer.
	Override bool
	// Delete removes destination entries that do not exist in the source.
	Delete bool
	// DirMode is applied to directories Mirror creates, including missing
	// parents of the destination. Existing directories are left alone.
	// Zero keeps the mode the creation mask gives.
	DirMode os.FileMode
}

// Result lists what Mirror changed besides plain file copies.
type Result struct {
	Created []string
	Removed []string
}

// Mirror copies src onto dst according to opts.
func Mirror(src, dst string, opts Options) (*Result, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("reading source %s: %w", src, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", src)
	}

	result := &Result{}

	if opts.Delete {
		removed, err := prune(src, dst)
		if err != nil {
			return nil, err
		}
		result.Removed = removed
	}

	created, err := missingDirs(dst)
	if err != nil {
		return nil, err
	}
	result.Created = created

	// Copied files keep the creation mask's mode; only execute bits
	// follow the source.
	var executables []copiedFile

	err = copy.Copy(src, dst, copy.Options{
		OnSymlink: func(string) copy.SymlinkAction {
			return copy.Deep
		},
		OnDirExists: func(string, string) copy.DirExistsAction {
			return copy.Merge
		},
		Skip: func(srcinfo os.FileInfo, src, dest string) (bool, error) {
			if shouldExclude(srcinfo.Name()) {
				return true, nil
			}
			if srcinfo.Mode()&os.ModeSymlink != 0 {
				target, err := os.Stat(src)
				if err != nil {
					return false, fmt.Errorf("resolving %s: %w", src, err)
				}
				srcinfo = target
			}
			destinfo, err := os.Lstat(dest)
			if srcinfo.IsDir() {
				if errors.Is(err, fs.ErrNotExist) {
					result.Created = append(result.Created, dest)
				}
				return false, nil
			}
			// Without override only newer sources replace existing files.
			if !opts.Override && err == nil && !srcinfo.ModTime().After(destinfo.ModTime()) {
				return true, nil
			}
			if exec := srcinfo.Mode().Perm() & 0111; exec != 0 {
				executables = append(executables, copiedFile{path: dest, exec: exec})
			}
			return false, nil
		},
		PermissionControl: copy.DoNothing,
	})
	if err != nil {
		return nil, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}

	for _, f := range executables {
		info, err := os.Stat(f.path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.path, err)
		}
		if err := platform.Chmod(f.path, info.Mode().Perm()|f.exec); err != nil {
			return nil, fmt.Errorf("setting mode on %s: %w", f.path, err)
		}
	}

	if opts.DirMode != 0 {
		if err := platform.ChmodDirs(result.Created, opts.DirMode); err != nil {
			return nil, err
		}
	}

	return result, nil
}

type copiedFile struct {
	path string
	exec os.FileMode
}

// missingDirs returns dir and its missing ancestors, outermost first.
func missingDirs(dir string) ([]string, error) {
	var missing []string
	for {
		_, err := os.Lstat(dir)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("checking %s: %w", dir, err)
		}
		missing = append([]string{dir}, missing...)
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return missing, nil
}

// prune removes entries under dst with no counterpart under src.
func prune(src, dst string) ([]string, error) {
	if _, err := os.Stat(dst); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var removed []string
	err := filepath.WalkDir(dst, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == dst {
			return nil
		}
		if shouldExclude(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(dst, path)
		if err != nil {
			return err
		}
		if _, err := os.Lstat(filepath.Join(src, rel)); err == nil {
			return nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
		removed = append(removed, path)
		if d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pruning %s: %w", dst, err)
	}
	return removed, nil
}

// shouldExclude returns true if the name should be left alone.
func shouldExclude(name string) bool {
	return excludedNames[name]
}
