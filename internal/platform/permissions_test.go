package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "test.txt")
	if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, 0600); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("permissions = %o, want %o", perm, 0600)
		}
	}
}

func TestEnsureDirCreatesWithMode(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "prefix", "bin")

	if err := EnsureDir(dir, 0755); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Fatal("expected a directory")
	}
	if runtime.GOOS != "windows" {
		if perm := info.Mode().Perm(); perm != 0755 {
			t.Errorf("permissions = %o, want %o", perm, 0755)
		}
	}
}

func TestEnsureDirLeavesExistingAlone(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "bin")
	if err := os.Mkdir(dir, 0700); err != nil {
		t.Fatal(err)
	}

	if err := EnsureDir(dir, 0755); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0700 {
			t.Errorf("existing dir permissions changed to %o", perm)
		}
	}
}

func TestEnsureDirOnFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "bin")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if err := EnsureDir(path, 0755); err == nil {
		t.Fatal("expected error when path is a regular file")
	}
}
