package scripts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// touch creates empty executable files named names inside dir.
func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0755); err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
	}
}

func TestDiscoverScriptsLookup(t *testing.T) {
	binDir := t.TempDir()
	touch(t, binDir,
		"activate",
		"activate.csh",
		"Activate.ps1",
		"deactivate",
		"easy_install",
		"easy_install-3.7",
		"pip",
		"pip3",
		"py.test",
		"pytest",
		"python",
		"python3",
	)

	got, err := Discover(binDir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{"py.test", "pytest"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestDiscoverSingleTool(t *testing.T) {
	binDir := t.TempDir()
	touch(t, binDir, "activate", "activate.csh", "deactivate", "pip", "pip3", "python", "python3", "mytool")

	got, err := Discover(binDir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"mytool"}) {
		t.Errorf("Discover = %v, want [mytool]", got)
	}
}

func TestDiscoverKeepsLookalikes(t *testing.T) {
	binDir := t.TempDir()
	touch(t, binDir, "pipeline", "pythonic", "pip", "python3")

	got, err := Discover(binDir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{"pipeline", "pythonic"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestDiscoverSkipsDirectoriesAndSymlinks(t *testing.T) {
	binDir := t.TempDir()
	touch(t, binDir, "tool")

	if err := os.Mkdir(filepath.Join(binDir, "subdir"), 0755); err != nil {
		t.Fatal(err)
	}
	// venv links python3.12 to the base interpreter; a link like that is
	// never a script even when its name passes the rules.
	if err := os.Symlink("/usr/bin/env", filepath.Join(binDir, "linked-tool")); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(binDir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"tool"}) {
		t.Errorf("Discover = %v, want [tool]", got)
	}
}

func TestDiscoverEmptyDir(t *testing.T) {
	got, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no scripts, got %v", got)
	}
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestDiscoverWithCustomRules(t *testing.T) {
	binDir := t.TempDir()
	touch(t, binDir, "pip", "wheel", "tool")

	got, err := DiscoverWith(binDir, []Rule{{Name: "wheel", Kind: Exact}})
	if err != nil {
		t.Fatalf("DiscoverWith: %v", err)
	}
	want := []string{"pip", "tool"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DiscoverWith = %v, want %v", got, want)
	}
}
