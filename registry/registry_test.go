package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func writePC(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

// TestGetPackageIdempotent covers property 1.
func TestGetPackageIdempotent(t *testing.T) {
	dir := t.TempDir()
	writePC(t, dir, "foo.pc", "Name: foo\nVersion: 1.0\nDescription: d\n")

	r := New(Config{})
	r.AddSearchDir(dir)

	a, ok := r.GetPackage("foo")
	if !ok {
		t.Fatal("GetPackage(foo) failed")
	}
	b, ok := r.GetPackage("foo")
	if !ok {
		t.Fatal("GetPackage(foo) failed on second call")
	}
	if a != b {
		t.Errorf("GetPackage returned different objects across calls: %p != %p", a, b)
	}
}

// TestFirstWinsScanning covers property 2.
func TestFirstWinsScanning(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writePC(t, dirA, "foo.pc", "Name: foo-a\nVersion: 1.0\nDescription: from a\n")
	writePC(t, dirB, "foo.pc", "Name: foo-b\nVersion: 2.0\nDescription: from b\n")

	r := New(Config{})
	r.AddSearchDir(dirA)
	r.AddSearchDir(dirB)

	pkg, ok := r.GetPackage("foo")
	if !ok {
		t.Fatal("GetPackage(foo) failed")
	}
	if pkg.Name != "foo-a" {
		t.Errorf("Name = %q, want %q (earlier directory should win)", pkg.Name, "foo-a")
	}
}

func TestGetPackageNotFound(t *testing.T) {
	r := New(Config{})
	r.AddSearchDir(t.TempDir())
	if _, ok := r.GetPackage("nonexistent"); ok {
		t.Fatal("expected GetPackage to report not found")
	}
}

func TestGetPackageUninstalledPreference(t *testing.T) {
	dir := t.TempDir()
	writePC(t, dir, "foo.pc", "Name: foo\nVersion: 1.0\nDescription: installed\n")
	writePC(t, dir, "foo-uninstalled.pc", "Name: foo\nVersion: 1.0-dev\nDescription: uninstalled\n")

	r := New(Config{})
	r.AddSearchDir(dir)

	pkg, ok := r.GetPackage("foo")
	if !ok {
		t.Fatal("GetPackage(foo) failed")
	}
	if pkg.Description != "uninstalled" {
		t.Errorf("Description = %q, want the uninstalled variant to be preferred", pkg.Description)
	}
	if !pkg.Uninstalled {
		t.Error("Uninstalled = false, want true")
	}
}

func TestGetPackageUninstalledDisabled(t *testing.T) {
	dir := t.TempDir()
	writePC(t, dir, "foo.pc", "Name: foo\nVersion: 1.0\nDescription: installed\n")
	writePC(t, dir, "foo-uninstalled.pc", "Name: foo\nVersion: 1.0-dev\nDescription: uninstalled\n")

	r := New(Config{DisableUninstalled: true})
	r.AddSearchDir(dir)

	pkg, ok := r.GetPackage("foo")
	if !ok {
		t.Fatal("GetPackage(foo) failed")
	}
	if pkg.Description != "installed" {
		t.Errorf("Description = %q, want the installed variant", pkg.Description)
	}
}
