package pip

import (
	"context"

	"github.com/venvlink/venvlink/internal/runner"
	"github.com/venvlink/venvlink/internal/venv"
)

// Installer installs packages into an environment.
type Installer interface {
	// Install runs `pip install <args...>` inside env and returns its
	// combined output.
	Install(ctx context.Context, env *venv.Environment, args ...string) (*runner.Output, error)
}

// PipInstaller runs `<env python> -m pip install`.
type PipInstaller struct {
	Runner runner.Runner
	// ExtraArgs are inserted before the caller's args on every install,
	// e.g. an --index-url from configuration.
	ExtraArgs []string
}

// NewPipInstaller returns an installer using r, or a host runner when r is nil.
func NewPipInstaller(r runner.Runner, extraArgs ...string) *PipInstaller {
	if r == nil {
		r = &runner.ExecRunner{}
	}
	return &PipInstaller{Runner: r, ExtraArgs: extraArgs}
}

// Install implements Installer.
func (i *PipInstaller) Install(ctx context.Context, env *venv.Environment, args ...string) (*runner.Output, error) {
	cmdArgs := []string{"-m", "pip", "install", "--disable-pip-version-check"}
	cmdArgs = append(cmdArgs, i.ExtraArgs...)
	cmdArgs = append(cmdArgs, args...)
	return i.Runner.Run(ctx, env.Python, cmdArgs...)
}
