package venv

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/venvlink/venvlink/internal/runner"
)

// DefaultPython is the interpreter used when none is configured.
const DefaultPython = "python3"

const (
	binDir     = "bin"
	pythonName = "python"
)

// Environment is an isolated Python runtime on disk.
type Environment struct {
	// Dir is the environment root.
	Dir string
	// BinDir holds the interpreter, pip and installed entry points.
	BinDir string
	// Python is the environment's own interpreter.
	Python string
}

// Creator provisions environments.
type Creator interface {
	// Create (re)creates an environment at dir, discarding prior contents.
	Create(ctx context.Context, dir string) (*Environment, error)
}

// Open describes the environment rooted at dir without touching the disk.
func Open(dir string) *Environment {
	bin := filepath.Join(dir, binDir)
	return &Environment{
		Dir:    dir,
		BinDir: bin,
		Python: filepath.Join(bin, pythonName),
	}
}

// PythonCreator runs `<Python> -m venv --clear <dir>`.
type PythonCreator struct {
	Python string
	Runner runner.Runner
}

// NewPythonCreator returns a creator for the given interpreter, falling back
// to DefaultPython and a host runner.
func NewPythonCreator(python string, r runner.Runner) *PythonCreator {
	if python == "" {
		python = DefaultPython
	}
	if r == nil {
		r = &runner.ExecRunner{}
	}
	return &PythonCreator{Python: python, Runner: r}
}

// Create implements Creator.
func (c *PythonCreator) Create(ctx context.Context, dir string) (*Environment, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving environment path %s: %w", dir, err)
	}
	if _, err := c.Runner.Run(ctx, c.Python, "-m", "venv", "--clear", abs); err != nil {
		return nil, err
	}
	return Open(abs), nil
}
