//go:build integration

package integration_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/venvlink/venvlink/internal/linker"
	"github.com/venvlink/venvlink/internal/runner"
	"github.com/venvlink/venvlink/internal/scripts"
	"github.com/venvlink/venvlink/internal/venv"
)

// TestDiscoverRealEnvironment checks the exclusion rules against whatever
// the host's venv module actually lays down.
func TestDiscoverRealEnvironment(t *testing.T) {
	python := requirePython(t)
	env := setupTestEnv(t)

	created, err := venv.NewPythonCreator(python, &runner.ExecRunner{}).Create(context.Background(), env.Layout.EnvDir("bare"))
	if err != nil {
		t.Skipf("host python cannot create environments: %v", err)
	}

	names, err := scripts.Discover(created.BinDir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("fresh environment exposed scripts %v, want none", names)
	}
}

func TestLinkLeavesForeignFilesAlone(t *testing.T) {
	env := setupTestEnv(t)

	source := filepath.Join(env.Layout.EnvDir("tool"), "bin")
	writeFile(t, filepath.Join(source, "tool"), "#!/bin/sh\n")
	writeFile(t, filepath.Join(source, "helper"), "#!/bin/sh\n")
	writeFile(t, filepath.Join(env.Layout.BinDir, "helper"), "#!/bin/sh\n# someone else's\n")

	result, err := linker.Link(source, env.Layout.BinDir, []string{"tool", "helper"})
	if err == nil {
		t.Fatal("expected conflict on helper")
	}
	if len(result.Created) != 1 || result.Created[0] != "tool" {
		t.Errorf("created = %v, want [tool]", result.Created)
	}

	unlinked, err := linker.Unlink(source, env.Layout.BinDir, []string{"tool", "helper"})
	if err != nil {
		t.Fatalf("Unlink: %v", err)
	}
	if len(unlinked.Removed) != 1 || unlinked.Removed[0] != "tool" {
		t.Errorf("removed = %v, want [tool]", unlinked.Removed)
	}
	assertNotExists(t, filepath.Join(env.Layout.BinDir, "tool"))
	if _, err := filepath.EvalSymlinks(filepath.Join(env.Layout.BinDir, "helper")); err != nil {
		t.Errorf("foreign helper removed: %v", err)
	}
}
