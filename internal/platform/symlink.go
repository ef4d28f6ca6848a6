package platform

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// CreateSymlink creates a symbolic link at link pointing to target.
func CreateSymlink(target, link string) error {
	return os.Symlink(target, link)
}

// RemoveSymlink removes the symlink at path. It refuses to remove anything
// that is not a symlink.
func RemoveSymlink(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return fmt.Errorf("%s is not a symbolic link", path)
	}
	return os.Remove(path)
}

// ReadSymlinkTarget returns the target of the symlink at path. Relative
// targets are resolved against the directory containing the link, so the
// result is always absolute when path is.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return filepath.Clean(target), nil
}

// IsSymlinkTo reports whether link is a symbolic link whose target resolves
// to target. A missing link, a regular file, a directory or a link pointing
// anywhere else all report false without an error.
func IsSymlinkTo(link, target string) (bool, error) {
	info, err := os.Lstat(link)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return false, nil
	}

	got, err := ReadSymlinkTarget(link)
	if err != nil {
		return false, err
	}
	want := filepath.Clean(target)
	if got == want {
		return true, nil
	}

	// The textual targets differ; they can still name the same file when
	// either side goes through another symlink (e.g. /tmp on macOS).
	resolvedGot, errGot := filepath.EvalSymlinks(got)
	resolvedWant, errWant := filepath.EvalSymlinks(want)
	if errGot != nil || errWant != nil {
		return false, nil
	}
	return resolvedGot == resolvedWant, nil
}

// Describe returns a short human-readable description of what occupies
// path, for conflict messages.
func Describe(path string) string {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "nothing"
		}
		return err.Error()
	}
	switch mode := info.Mode(); {
	case mode&fs.ModeSymlink != 0:
		target, err := os.Readlink(path)
		if err != nil {
			return "a symbolic link"
		}
		return fmt.Sprintf("a symbolic link to %s", target)
	case mode.IsDir():
		return "a directory"
	case mode.IsRegular():
		return "a regular file"
	default:
		return fmt.Sprintf("a special file (%s)", mode.Type())
	}
}

// IsSymlinkSupported reports whether the host can publish native symlinks.
func IsSymlinkSupported() bool {
	return SymlinkSupported(runtime.GOOS)
}

// SymlinkSupported reports whether the given GOOS value is a host venvlink
// can publish scripts on.
func SymlinkSupported(goos string) bool {
	switch goos {
	case "windows", "plan9", "js", "wasip1":
		return false
	default:
		return true
	}
}
