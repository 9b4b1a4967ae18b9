package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/pkgconf/pkgconfig"
	"github.com/etnz/pkgconf/version"
)

// GetPackage resolves name to a loaded, verified Package, following the key
// resolution rules of §4.7: the interning cache, a direct ".pc" path, the
// "-uninstalled" preference, the search-path locations map, and finally the
// legacy compatibility fallback.
func (r *Registry) GetPackage(name string) (*pkgconfig.Package, bool) {
	return r.getPackage(name, false)
}

// getPackage is GetPackage's implementation; quiet suppresses the "not
// found" diagnostic for the internal "-uninstalled" probe, which is
// expected to miss far more often than it hits.
func (r *Registry) getPackage(name string, quiet bool) (*pkgconfig.Package, bool) {
	if pkg, ok := r.packages[name]; ok {
		return pkg, true
	}

	if strings.HasSuffix(name, ".pc") {
		if _, err := os.Stat(name); err == nil {
			key := strings.TrimSuffix(filepath.Base(name), ".pc")
			return r.loadAndCache(key, name, quiet)
		}
	}

	if !r.Config.DisableUninstalled && !strings.HasSuffix(name, "-uninstalled") {
		if pkg, ok := r.getPackage(name+"-uninstalled", true); ok {
			r.packages[name] = pkg
			return pkg, true
		}
	}

	r.ensureScanned()
	path, ok := r.locations[name]
	if !ok {
		if r.CompatResolver != nil {
			if pkg, ok := r.CompatResolver(name); ok {
				r.packages[name] = pkg
				return pkg, true
			}
		}
		if !quiet {
			r.VerboseErrorf("package %s not found", name)
		}
		return nil, false
	}

	return r.loadAndCache(name, path, quiet)
}

func (r *Registry) loadAndCache(key, path string, silent bool) (*pkgconfig.Package, bool) {
	pkg, err := r.loadPackage(key, path)
	if err != nil {
		if r.Config.StrictMode && !silent {
			r.VerboseErrorf("%v", err)
			return nil, false
		}
		r.DebugSpewf("%v", err)
		return nil, false
	}
	r.packages[key] = pkg
	return pkg, true
}

func (r *Registry) loadPackage(key, path string) (*pkgconfig.Package, error) {
	f, err := os.Open(path)
	if err != nil {
		r.DebugSpewf("cannot open %s: %v", path, err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	opts := pkgconfig.Options{
		Globals:        func(name string) (string, bool) { v, ok := r.globals[name]; return v, ok },
		StrictMode:     r.Config.StrictMode,
		DefinePrefix:   r.Config.DefinePrefix,
		PrefixVariable: r.Config.PrefixVariable,
		MSVCSyntax:     r.Config.MSVCSyntax,
	}

	pkg, err := pkgconfig.Parse(path, filepath.Dir(path), f, opts)
	if err != nil {
		return nil, err
	}

	pkg.Key = key
	pkg.Uninstalled = strings.HasSuffix(filepath.Base(path), "uninstalled.pc")
	backfillOwner(pkg.RequiresEntries, key)
	backfillOwner(pkg.RequiresPrivateEntries, key)
	backfillOwner(pkg.Conflicts, key)

	if err := r.resolveRequires(pkg); err != nil {
		return nil, err
	}

	if err := verifyPackage(pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

func backfillOwner(entries []pkgconfig.RequiredVersion, owner string) {
	for i := range entries {
		entries[i].Owner = owner
	}
}

// resolveRequires loads every package pkg.RequiresEntries and
// pkg.RequiresPrivateEntries name to, in declared order.
func (r *Registry) resolveRequires(pkg *pkgconfig.Package) error {
	for _, rv := range pkg.RequiresEntries {
		dep, ok := r.GetPackage(rv.Name)
		if !ok {
			return fmt.Errorf("%s requires %s, which was not found", pkg.Key, rv.Name)
		}
		pkg.Requires = append(pkg.Requires, dep)
	}
	for _, rv := range pkg.RequiresPrivateEntries {
		dep, ok := r.GetPackage(rv.Name)
		if !ok {
			return fmt.Errorf("%s requires %s, which was not found", pkg.Key, rv.Name)
		}
		pkg.RequiresPrivate = append(pkg.RequiresPrivate, dep)
	}
	return nil
}

// childrenOf selects the children a transitive walk follows: Requires
// always, plus RequiresPrivate when static is true.
func childrenOf(static bool) func(*pkgconfig.Package) []*pkgconfig.Package {
	return func(p *pkgconfig.Package) []*pkgconfig.Package {
		if !static {
			return p.Requires
		}
		return append(append([]*pkgconfig.Package{}, p.Requires...), p.RequiresPrivate...)
	}
}

// walkTransitive implements recursive_fill_list (§4.9): a depth-first
// pre-order walk over root's requires closure, appending selector(pkg) at
// each newly-visited package. A visited-set bounds redundant work on
// diamond dependency graphs without changing the first-visit order; a
// package already appended is neither re-appended nor re-walked.
func walkTransitive[T any](root *pkgconfig.Package, children func(*pkgconfig.Package) []*pkgconfig.Package, selector func(*pkgconfig.Package) []T) []T {
	visited := map[*pkgconfig.Package]bool{}
	var out []T
	var rec func(p *pkgconfig.Package)
	rec = func(p *pkgconfig.Package) {
		if visited[p] {
			return
		}
		visited[p] = true
		out = append(out, selector(p)...)
		for _, c := range children(p) {
			rec(c)
		}
	}
	rec(root)
	return out
}

// verifyPackage asserts required fields, checks each direct Requires
// constraint, and fails if any transitively-required package is also
// transitively conflicted with.
func verifyPackage(pkg *pkgconfig.Package) error {
	if pkg.Name == "" || pkg.Version == "" || pkg.Description == "" {
		return fmt.Errorf("%s: missing required field (Name, Version, or Description)", pkg.Key)
	}

	for _, dep := range pkg.Requires {
		constraint, ok := pkg.RequiredVersions[dep.Key]
		if !ok || constraint.Comparison == version.AlwaysMatch {
			continue
		}
		if !version.Test(constraint.Comparison, dep.Version, constraint.Version) {
			return fmt.Errorf("%s requires %s %s %s but found version %s",
				pkg.Key, constraint.Name, constraint.Comparison, constraint.Version, dep.Version)
		}
	}

	selectSelf := func(p *pkgconfig.Package) []*pkgconfig.Package { return []*pkgconfig.Package{p} }
	selectConflicts := func(p *pkgconfig.Package) []pkgconfig.RequiredVersion { return p.Conflicts }

	reqClosure := walkTransitive(pkg, childrenOf(false), selectSelf)
	conflictClosure := walkTransitive(pkg, childrenOf(false), selectConflicts)

	for _, dep := range reqClosure {
		for _, c := range conflictClosure {
			if c.Name != dep.Key {
				continue
			}
			if version.Test(c.Comparison, dep.Version, c.Version) {
				return fmt.Errorf("%s conflicts with %s %s %s (found %s)",
					c.Owner, c.Name, c.Comparison, c.Version, dep.Version)
			}
		}
	}

	return nil
}
