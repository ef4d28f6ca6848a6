package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/venvlink/venvlink/internal/linker"
	"github.com/venvlink/venvlink/internal/paths"
	"github.com/venvlink/venvlink/internal/pip"
	"github.com/venvlink/venvlink/internal/platform"
	"github.com/venvlink/venvlink/internal/scripts"
	"github.com/venvlink/venvlink/internal/venv"
)

// Manager installs and uninstalls packages under one layout.
type Manager struct {
	Layout    *paths.Layout
	Creator   venv.Creator
	Installer pip.Installer
	Logger    *log.Logger
}

// InstallReport describes a finished install.
type InstallReport struct {
	Package string
	EnvDir  string
	BinDir  string
	Scripts []string
	Links   *linker.Result
}

// UninstallReport describes a finished uninstall. Removed is false when
// there was nothing to remove.
type UninstallReport struct {
	Package  string
	EnvDir   string
	Removed  bool
	Unlinked []string
}

func (m *Manager) logger() *log.Logger {
	if m.Logger == nil {
		return log.Default()
	}
	return m.Logger
}

// Install (re)creates the package's environment, installs the package into
// it and links its scripts into the shared bin directory.
func (m *Manager) Install(ctx context.Context, pkg pip.Package) (*InstallReport, error) {
	logger := m.logger().With("package", pkg.Name)

	if err := paths.ValidateName(pkg.Name); err != nil {
		return nil, err
	}
	envDir := m.Layout.EnvDir(pkg.Name)

	logger.Debug("creating environment", "dir", envDir)
	env, err := m.Creator.Create(ctx, envDir)
	if err != nil {
		return nil, fmt.Errorf("creating environment for %s: %w", pkg.Name, err)
	}

	logger.Debug("upgrading pip")
	if _, err := m.Installer.Install(ctx, env, "--upgrade", "pip"); err != nil {
		return nil, fmt.Errorf("upgrading pip for %s: %w", pkg.Name, err)
	}

	source := pkg.Source()
	logger.Debug("installing package", "source", source)
	if _, err := m.Installer.Install(ctx, env, source); err != nil {
		return nil, fmt.Errorf("installing %s: %w", source, err)
	}

	if err := platform.EnsureDir(m.Layout.BinDir, paths.DirPermShared); err != nil {
		return nil, fmt.Errorf("creating bin directory %s: %w", m.Layout.BinDir, err)
	}

	names, err := scripts.Discover(env.BinDir)
	if err != nil {
		return nil, fmt.Errorf("discovering scripts for %s: %w", pkg.Name, err)
	}
	logger.Debug("discovered scripts", "scripts", names)

	result, err := linker.Link(env.BinDir, m.Layout.BinDir, names)
	if err != nil {
		return nil, err
	}
	for _, name := range result.Created {
		logger.Debug("linked", "script", name)
	}

	return &InstallReport{
		Package: pkg.Name,
		EnvDir:  env.Dir,
		BinDir:  m.Layout.BinDir,
		Scripts: names,
		Links:   result,
	}, nil
}

// Uninstall removes the package's links and environment. Uninstalling a
// package that is not installed is not an error.
func (m *Manager) Uninstall(ctx context.Context, name string) (*UninstallReport, error) {
	logger := m.logger().With("package", name)

	if err := paths.ValidateName(name); err != nil {
		return nil, err
	}
	report := &UninstallReport{Package: name, EnvDir: m.Layout.EnvDir(name)}

	envExists, err := isDir(report.EnvDir)
	if err != nil {
		return nil, err
	}
	if !envExists {
		logger.Debug("not installed", "dir", report.EnvDir)
		return report, nil
	}

	env := venv.Open(report.EnvDir)
	binExists, err := isDir(env.BinDir)
	if err != nil {
		return nil, err
	}
	sharedExists, err := isDir(m.Layout.BinDir)
	if err != nil {
		return nil, err
	}

	if binExists && sharedExists {
		names, err := scripts.Discover(env.BinDir)
		if err != nil {
			return nil, fmt.Errorf("discovering scripts for %s: %w", name, err)
		}
		result, err := linker.Unlink(env.BinDir, m.Layout.BinDir, names)
		if err != nil {
			return nil, err
		}
		for _, script := range result.Removed {
			logger.Debug("unlinked", "script", script)
		}
		report.Unlinked = result.Removed
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("removing environment", "dir", report.EnvDir)
	if err := os.RemoveAll(report.EnvDir); err != nil {
		return nil, fmt.Errorf("removing environment %s: %w", report.EnvDir, err)
	}
	report.Removed = true

	return report, nil
}

// isDir reports whether path exists and is a directory.
func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	return info.IsDir(), nil
}
