package pkgconfig

import (
	"strings"
	"testing"
)

func flagArgs(flags []Flag) []string {
	var out []string
	for _, f := range flags {
		out = append(out, f.Arg)
	}
	return out
}

func joinFlagArgs(flags []Flag) string {
	return strings.Join(flagArgs(flags), " ")
}

// TestParseBasic covers scenario S1.
func TestParseBasic(t *testing.T) {
	src := "Name: foo\nVersion: 1.2\nDescription: d\nLibs: -L/usr/lib -lfoo\nCflags: -I/usr/include\n"
	pkg, err := Parse("foo.pc", "/usr/lib/pkgconfig", strings.NewReader(src), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if pkg.Name != "foo" || pkg.Version != "1.2" || pkg.Description != "d" {
		t.Fatalf("got %+v", pkg)
	}
	if joinFlagArgs(pkg.Libs) != "-L/usr/lib -lfoo" {
		t.Errorf("Libs = %q", joinFlagArgs(pkg.Libs))
	}
	if joinFlagArgs(pkg.Cflags) != "-I/usr/include" {
		t.Errorf("Cflags = %q", joinFlagArgs(pkg.Cflags))
	}
}

// TestParsePrefixRelocation covers scenario S5.
func TestParsePrefixRelocation(t *testing.T) {
	src := "prefix=/opt/foo\nlibdir=${prefix}/lib\nName: foo\nVersion: 1\nDescription: d\nLibs: -L${libdir} -lfoo\n"
	pkg, err := Parse("foo.pc", "/alt/lib/pkgconfig", strings.NewReader(src), Options{DefinePrefix: true})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if pkg.OrigPrefix != "/opt/foo" {
		t.Errorf("OrigPrefix = %q, want %q", pkg.OrigPrefix, "/opt/foo")
	}
	if got := pkg.Vars["prefix"]; got != "/alt" {
		t.Errorf("prefix = %q, want %q", got, "/alt")
	}
	if got := pkg.Vars["libdir"]; got != "/alt/lib" {
		t.Errorf("libdir = %q, want %q", got, "/alt/lib")
	}
	if got := joinFlagArgs(pkg.Libs); got != "-L/alt/lib -lfoo" {
		t.Errorf("Libs = %q, want %q", got, "-L/alt/lib -lfoo")
	}
}

func TestParseDuplicateFieldStrict(t *testing.T) {
	src := "Name: foo\nName: bar\nVersion: 1\nDescription: d\n"
	_, err := Parse("foo.pc", "/usr/lib/pkgconfig", strings.NewReader(src), Options{StrictMode: true})
	if err == nil {
		t.Fatal("expected error for duplicate field in strict mode")
	}
}

func TestParseDuplicateFieldLax(t *testing.T) {
	src := "Name: foo\nName: bar\nVersion: 1\nDescription: d\n"
	pkg, err := Parse("foo.pc", "/usr/lib/pkgconfig", strings.NewReader(src), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if pkg.Name != "foo" {
		t.Errorf("Name = %q, want first occurrence %q", pkg.Name, "foo")
	}
}

func TestParseRequires(t *testing.T) {
	src := "Name: a\nVersion: 1\nDescription: d\nRequires: b >= 2.0, c\n"
	pkg, err := Parse("a.pc", "/usr/lib/pkgconfig", strings.NewReader(src), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(pkg.RequiresEntries) != 2 {
		t.Fatalf("got %d entries, want 2: %#v", len(pkg.RequiresEntries), pkg.RequiresEntries)
	}
	if pkg.RequiredVersions["b"].Version != "2.0" {
		t.Errorf("RequiredVersions[b] = %#v", pkg.RequiredVersions["b"])
	}
}

func TestParseCflagsAlias(t *testing.T) {
	src := "Name: a\nVersion: 1\nDescription: d\nCFlags: -DFOO\n"
	pkg, err := Parse("a.pc", "/usr/lib/pkgconfig", strings.NewReader(src), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if joinFlagArgs(pkg.Cflags) != "-DFOO" {
		t.Errorf("Cflags = %q", joinFlagArgs(pkg.Cflags))
	}
}
