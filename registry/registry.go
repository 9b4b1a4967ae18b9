package registry

import (
	"fmt"
	"os"

	shellwords "github.com/kballard/go-shellquote"

	"github.com/etnz/pkgconf/pkgconfig"
)

// DefaultSearchDir is the compiled-in system default directory, scanned
// after every directory added via AddSearchDir. A vendor packaging this for
// a different filesystem layout overrides it before the first query.
var DefaultSearchDir = "/usr/lib/pkgconfig"

// Registry is an interning cache of loaded descriptors plus the search
// path, global variable overrides, and collaborator hooks needed to
// resolve them. A zero Registry is not usable; construct one with New.
type Registry struct {
	Config Config

	searchDirs []string
	locations  map[string]string
	packages   map[string]*pkgconfig.Package
	globals    map[string]string
	scanned    bool

	// VerboseErrorf emits a user-visible diagnostic, e.g. "package foo not
	// found". Defaults to writing to os.Stderr.
	VerboseErrorf func(format string, args ...any)

	// DebugSpewf emits a diagnostic only useful when debugging the resolver
	// itself. Defaults to a no-op unless Config.Debug is set.
	DebugSpewf func(format string, args ...any)

	// CompatResolver is the legacy "*-config" script fallback, consulted
	// only when a key can't be found in locations. nil (the default)
	// disables the fallback entirely.
	CompatResolver func(name string) (*pkgconfig.Package, bool)
}

// New builds a Registry with default diagnostics sinks.
func New(cfg Config) *Registry {
	r := &Registry{
		Config:    cfg,
		locations: map[string]string{},
		packages:  map[string]*pkgconfig.Package{},
		globals:   map[string]string{},
	}
	r.VerboseErrorf = func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
	r.DebugSpewf = func(format string, args ...any) {
		if cfg.Debug {
			fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
		}
	}
	return r
}

// AddSearchDir appends a directory to the search path. Earlier entries take
// precedence over later ones and over DefaultSearchDir.
func (r *Registry) AddSearchDir(path string) {
	r.searchDirs = append(r.searchDirs, path)
	r.scanned = false
}

// DefineGlobalVariable records a variable override that takes precedence
// over any value a descriptor defines for itself.
func (r *Registry) DefineGlobalVariable(name, value string) {
	r.globals[name] = value
}

// packageGetVar resolves name against global overrides, then pkg's own
// variables, then the synthetic pcfiledir entry — the order §4.2 of the
// parser's variable substitution expects.
func (r *Registry) packageGetVar(pkg *pkgconfig.Package, name string) (string, bool) {
	if v, ok := r.globals[name]; ok {
		return v, true
	}
	if v, ok := pkg.Var(name); ok {
		return v, true
	}
	if name == "pcfiledir" {
		return pkg.PCFileDir, true
	}
	return "", false
}

// PackageGetVar is the public single-package variable accessor.
func (r *Registry) PackageGetVar(pkg *pkgconfig.Package, name string) (string, bool) {
	return r.packageGetVar(pkg, name)
}

// ParsePackageVariable is like PackageGetVar but, when the stored value is
// fully quoted (leading '"' or '\''), returns it shell-unquoted; on
// unquote failure it falls back to the raw stored value.
func (r *Registry) ParsePackageVariable(pkg *pkgconfig.Package, name string) (string, bool) {
	raw, ok := r.packageGetVar(pkg, name)
	if !ok {
		return "", false
	}
	if len(raw) == 0 || (raw[0] != '"' && raw[0] != '\'') {
		return raw, true
	}
	words, err := shellwords.Split(raw)
	if err != nil || len(words) != 1 {
		return raw, true
	}
	return words[0], true
}

// ensureScanned performs the directory scan on first use. Re-scanning after
// AddSearchDir keeps locations consistent with the current search path.
func (r *Registry) ensureScanned() {
	if r.scanned {
		return
	}
	r.locations = map[string]string{}
	for _, dir := range append(append([]string{}, r.searchDirs...), DefaultSearchDir) {
		r.scanDir(dir)
	}
	r.scanned = true
}
