//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/venvlink/venvlink/internal/paths"
	"github.com/venvlink/venvlink/internal/platform"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // stands in for $HOME
	Prefix  string // --prefix for the run
	Layout  *paths.Layout
}

// setupTestEnv creates isolated temp directories and clears VENVLINK_*
// variables so the host configuration cannot leak into a run.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if !platform.IsSymlinkSupported() {
		t.Skip("symlinks not supported on this platform")
	}

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	env := &testEnv{
		HomeDir: filepath.Join(root, "home"),
		Prefix:  filepath.Join(root, "prefix"),
	}
	if err := os.MkdirAll(env.HomeDir, 0755); err != nil {
		t.Fatalf("creating home: %v", err)
	}

	for _, key := range []string{"VENVLINK_PREFIX", "VENVLINK_USER", "VENVLINK_PYTHON", "VENVLINK_PIP_ARGS", "VENVLINK_CONFIG"} {
		t.Setenv(key, "")
	}

	env.Layout, err = paths.Resolve(paths.Options{Prefix: env.Prefix}, env.HomeDir)
	if err != nil {
		t.Fatalf("resolving layout: %v", err)
	}
	return env
}

// requirePython skips the test unless a python3 interpreter is available.
func requirePython(t *testing.T) string {
	t.Helper()
	python, err := exec.LookPath("python3")
	if err != nil {
		t.Skip("python3 not found on PATH")
	}
	return python
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertLinkTo fails the test unless link is a symlink resolving to target.
func assertLinkTo(t *testing.T, link, target string) {
	t.Helper()
	ok, err := platform.IsSymlinkTo(link, target)
	if err != nil {
		t.Errorf("checking %s: %v", link, err)
		return
	}
	if !ok {
		t.Errorf("expected %s to link to %s, found %s", link, target, platform.Describe(link))
	}
}

// assertNotExists fails the test if anything exists at path.
func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected %s NOT to exist", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}
