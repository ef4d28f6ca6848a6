// Package runnertest provides a scripted runner.Runner for tests.
package runnertest

import (
	"context"
	"strings"
	"sync"

	"github.com/venvlink/venvlink/internal/runner"
)

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []string
}

// String renders the call as a command line.
func (c Call) String() string {
	return runner.CommandLine(c.Name, c.Args...)
}

// Response is what the fake returns for a matching call.
type Response struct {
	Output   string
	ExitCode int
	Err      error
	// Do runs before the response is returned, e.g. to create files the real
	// command would have created.
	Do func(name string, args []string) error
}

// Fake records calls and answers them from Responses, keyed by a substring
// of the rendered command line. Unmatched calls succeed with no output.
type Fake struct {
	mu        sync.Mutex
	Calls     []Call
	Responses map[string]Response
}

// Run implements runner.Runner.
func (f *Fake) Run(_ context.Context, name string, args ...string) (*runner.Output, error) {
	f.mu.Lock()
	call := Call{Name: name, Args: append([]string(nil), args...)}
	f.Calls = append(f.Calls, call)
	resp, ok := f.match(call.String())
	f.mu.Unlock()

	if !ok {
		return &runner.Output{}, nil
	}
	if resp.Do != nil {
		if err := resp.Do(name, args); err != nil {
			return nil, err
		}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	out := &runner.Output{ExitCode: resp.ExitCode, Combined: resp.Output}
	if resp.ExitCode != 0 {
		return out, &runner.ExitError{Command: call.String(), ExitCode: resp.ExitCode, Output: resp.Output}
	}
	return out, nil
}

// match returns the response with the longest key contained in line, so a
// specific key wins over a general one.
func (f *Fake) match(line string) (Response, bool) {
	var (
		best    Response
		bestLen = -1
	)
	for key, resp := range f.Responses {
		if strings.Contains(line, key) && len(key) > bestLen {
			best, bestLen = resp, len(key)
		}
	}
	return best, bestLen >= 0
}

// Commands returns the recorded calls as command lines.
func (f *Fake) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = c.String()
	}
	return lines
}
