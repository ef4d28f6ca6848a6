package preflight

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/venvlink/venvlink/internal/platform"
	"github.com/venvlink/venvlink/internal/runner"
)

// MinPythonVersion is the oldest interpreter venvlink supports.
const MinPythonVersion = "3.7"

// Check names.
const (
	CheckPlatform    = "platform"
	CheckInterpreter = "interpreter"
	CheckVersion     = "version"
	CheckModules     = "modules"
)

const (
	versionScript = "import sys; print('%d.%d.%d' % sys.version_info[:3])"
	modulesScript = "import venv, ensurepip"
)

// Error reports a failed precondition.
type Error struct {
	Check string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s check failed: %v", e.Check, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Checker runs the precondition checks.
type Checker struct {
	// GOOS is the host platform; defaults to runtime.GOOS.
	GOOS string
	// Python is the interpreter name or path.
	Python string
	Runner runner.Runner
	// LookPath resolves Python; defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// New returns a Checker for the host.
func New(python string, r runner.Runner) *Checker {
	if r == nil {
		r = &runner.ExecRunner{}
	}
	return &Checker{
		GOOS:     runtime.GOOS,
		Python:   python,
		Runner:   r,
		LookPath: exec.LookPath,
	}
}

// Platform fails on hosts where scripts cannot be published as symlinks.
func (c *Checker) Platform() error {
	if !platform.SymlinkSupported(c.GOOS) {
		return &Error{Check: CheckPlatform, Err: fmt.Errorf("unsupported platform %q", c.GOOS)}
	}
	return nil
}

// Run performs every check in order and returns the interpreter's resolved
// path and version. The first failure is returned as *Error.
func (c *Checker) Run(ctx context.Context) (string, *semver.Version, error) {
	if err := c.Platform(); err != nil {
		return "", nil, err
	}

	python, err := c.LookPath(c.Python)
	if err != nil {
		return "", nil, &Error{Check: CheckInterpreter, Err: fmt.Errorf("python interpreter %q not found: %w", c.Python, err)}
	}

	version, err := c.Version(ctx, python)
	if err != nil {
		return python, nil, err
	}

	if _, err := c.Runner.Run(ctx, python, "-c", modulesScript); err != nil {
		return python, version, &Error{Check: CheckModules, Err: fmt.Errorf("%s cannot create environments (venv/ensurepip missing): %w", python, err)}
	}

	return python, version, nil
}

// Version reports python's version and fails if it is older than
// MinPythonVersion.
func (c *Checker) Version(ctx context.Context, python string) (*semver.Version, error) {
	out, err := c.Runner.Run(ctx, python, "-c", versionScript)
	if err != nil {
		return nil, &Error{Check: CheckVersion, Err: fmt.Errorf("querying %s version: %w", python, err)}
	}

	v, err := semver.NewVersion(strings.TrimSpace(out.Combined))
	if err != nil {
		return nil, &Error{Check: CheckVersion, Err: fmt.Errorf("parsing %s version %q: %w", python, strings.TrimSpace(out.Combined), err)}
	}

	ok, err := Supported(v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return v, &Error{Check: CheckVersion, Err: fmt.Errorf("unsupported Python version %d.%d, requires %s+", v.Major(), v.Minor(), MinPythonVersion)}
	}
	return v, nil
}

// Supported reports whether v satisfies >= MinPythonVersion.
func Supported(v *semver.Version) (bool, error) {
	constraint, err := semver.NewConstraint(">= " + MinPythonVersion)
	if err != nil {
		return false, fmt.Errorf("parsing version constraint: %w", err)
	}
	return constraint.Check(v), nil
}
