package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/venvlink/venvlink/internal/branding"
)

// Directory name constants for the install layout.
const (
	// DefaultPrefix is the system-wide base directory.
	DefaultPrefix = "/usr/local"

	UserPrefixDir = ".local"
	BinDir        = "bin"
	LibDir        = "lib"
)

// Permission constants.
const (
	DirPermShared os.FileMode = 0755
)

// Options selects the base directory.
type Options struct {
	// User selects <home>/.local and wins over Prefix.
	User bool
	// Prefix is an explicit base directory. Empty or DefaultPrefix means
	// the system default.
	Prefix string
}

// Layout is a fully resolved set of install locations.
type Layout struct {
	// Prefix is the resolved base directory.
	Prefix string
	// EnvsRoot holds one environment directory per package.
	EnvsRoot string
	// BinDir is the shared directory links are published into.
	BinDir string
}

// Home returns the current user's home directory. Call it once at startup
// and pass the value down.
func Home() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return home, nil
}

// Prefix returns the base installation directory for opts.
func Prefix(opts Options, home string) (string, error) {
	if opts.User {
		return filepath.Join(home, UserPrefixDir), nil
	}
	if opts.Prefix != "" && opts.Prefix != DefaultPrefix {
		abs, err := filepath.Abs(ExpandUser(opts.Prefix, home))
		if err != nil {
			return "", fmt.Errorf("resolving prefix %s: %w", opts.Prefix, err)
		}
		return abs, nil
	}
	return DefaultPrefix, nil
}

// Resolve computes the full layout for opts.
func Resolve(opts Options, home string) (*Layout, error) {
	prefix, err := Prefix(opts, home)
	if err != nil {
		return nil, err
	}
	return &Layout{
		Prefix:   prefix,
		EnvsRoot: filepath.Join(prefix, LibDir, branding.EnvsDir()),
		BinDir:   filepath.Join(prefix, BinDir),
	}, nil
}

// EnvDir returns the environment directory for a package.
func (l *Layout) EnvDir(name string) string {
	return filepath.Join(l.EnvsRoot, name)
}

// EnvBinDir returns the executable directory inside a package's environment.
func (l *Layout) EnvBinDir(name string) string {
	return filepath.Join(l.EnvDir(name), BinDir)
}

// ExpandUser replaces a leading "~" or "~/" with home. Other forms, such as
// "~alice/x", are returned unchanged.
func ExpandUser(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return filepath.Join(home, path[2:])
	}
	return path
}

// ValidateName rejects package names that cannot safely be used as a single
// directory name under EnvsRoot.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("package name must not be empty")
	case name == "." || name == "..":
		return fmt.Errorf("invalid package name %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("invalid package name %q: must not contain path separators", name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("invalid package name %q", name)
	}
	return nil
}
