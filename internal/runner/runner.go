package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a command and blocks until it exits.
type Runner interface {
	// Run executes name with args. A non-zero exit is reported as *ExitError
	// with the captured output attached.
	Run(ctx context.Context, name string, args ...string) (*Output, error)
}

// Output captures the result of a command.
type Output struct {
	ExitCode int
	// Combined holds stdout and stderr interleaved in the order written.
	Combined string
}

// ExitError is returned when a command exits non-zero. Its message is the
// command's captured output, verbatim.
type ExitError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *ExitError) Error() string {
	if strings.TrimSpace(e.Output) != "" {
		return e.Output
	}
	return fmt.Sprintf("%s: exit status %d", e.Command, e.ExitCode)
}

// ExecRunner runs commands on the host with os/exec.
type ExecRunner struct {
	// Dir is the working directory; empty means the current one.
	Dir string
	// Env, when non-nil, replaces the inherited environment.
	Env []string
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (*Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	if r.Env != nil {
		cmd.Env = r.Env
	}

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()

	output := &Output{Combined: buf.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, &ExitError{
				Command:  CommandLine(name, args...),
				ExitCode: output.ExitCode,
				Output:   output.Combined,
			}
		}
		return output, fmt.Errorf("running %s: %w", name, err)
	}

	return output, nil
}

// CommandLine renders name and args for messages and logs.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
