package registry

import (
	"fmt"
	"io"
	"sort"

	"github.com/etnz/pkgconf/pkgconfig"
)

// PackageLLibs returns pkg's own "-l" flags, undeduplicated, in declared
// order — no transitive walk.
func PackageLLibs(pkg *pkgconfig.Package) []pkgconfig.Flag {
	return flagsOfKind(pkg.Libs, pkgconfig.LibsSmallL)
}

// PackageLLibsDirs returns pkg's own "-L" flags.
func PackageLLibsDirs(pkg *pkgconfig.Package) []pkgconfig.Flag {
	return flagsOfKind(pkg.Libs, pkgconfig.LibsL)
}

// PackageOtherLibs returns pkg's own libs flags that are neither "-L" nor
// "-l" (e.g. "-framework X").
func PackageOtherLibs(pkg *pkgconfig.Package) []pkgconfig.Flag {
	return flagsOfKind(pkg.Libs, pkgconfig.LibsOther)
}

// PackageICflags returns pkg's own "-I" flags.
func PackageICflags(pkg *pkgconfig.Package) []pkgconfig.Flag {
	return flagsOfKind(pkg.Cflags, pkgconfig.CflagsI)
}

// PackageOtherCflags returns pkg's own cflags that are not "-I".
func PackageOtherCflags(pkg *pkgconfig.Package) []pkgconfig.Flag {
	return flagsOfKind(pkg.Cflags, pkgconfig.CflagsOther)
}

func libsSelector(static bool) func(*pkgconfig.Package) []pkgconfig.Flag {
	return func(p *pkgconfig.Package) []pkgconfig.Flag {
		if !static {
			return p.Libs
		}
		return append(append([]pkgconfig.Flag{}, p.Libs...), p.LibsPrivate...)
	}
}

func cflagsSelector(p *pkgconfig.Package) []pkgconfig.Flag { return p.Cflags }

func collectKind(roots []*pkgconfig.Package, static bool, selector func(*pkgconfig.Package) []pkgconfig.Flag, kind pkgconfig.FlagKind) []pkgconfig.Flag {
	children := childrenOf(static)
	var out []pkgconfig.Flag
	for _, root := range roots {
		flags := walkTransitive(root, children, selector)
		out = append(out, flagsOfKind(flags, kind)...)
	}
	return out
}

// PackagesLibsL is the multi-package, transitively-walked, forward-deduped
// "-L" flag list.
func PackagesLibsL(roots []*pkgconfig.Package, static bool) string {
	return joinFlags(forwardDedup(collectKind(roots, static, libsSelector(static), pkgconfig.LibsL)))
}

// PackagesLibsSmallL is the multi-package, transitively-walked,
// backward-deduped "-l" flag list.
func PackagesLibsSmallL(roots []*pkgconfig.Package, static bool) string {
	return joinFlags(backwardDedup(collectKind(roots, static, libsSelector(static), pkgconfig.LibsSmallL)))
}

// PackagesLibsOther is the multi-package, transitively-walked,
// forward-deduped list of libs flags that are neither "-L" nor "-l".
func PackagesLibsOther(roots []*pkgconfig.Package, static bool) string {
	return joinFlags(forwardDedup(collectKind(roots, static, libsSelector(static), pkgconfig.LibsOther)))
}

// PackagesCflagsI is the multi-package, transitively-walked,
// forward-deduped "-I" flag list.
func PackagesCflagsI(roots []*pkgconfig.Package, static bool) string {
	return joinFlags(forwardDedup(collectKind(roots, static, cflagsSelector, pkgconfig.CflagsI)))
}

// PackagesCflagsOther is the multi-package, transitively-walked,
// forward-deduped list of cflags that are not "-I".
func PackagesCflagsOther(roots []*pkgconfig.Package, static bool) string {
	return joinFlags(forwardDedup(collectKind(roots, static, cflagsSelector, pkgconfig.CflagsOther)))
}

// PackagesAllLibs is the full "--libs" output: other-libs, then -L, then
// -l, each category merged with the dedup discipline appropriate to it.
func PackagesAllLibs(roots []*pkgconfig.Package, static bool) string {
	return joinNonEmpty(
		PackagesLibsOther(roots, static),
		PackagesLibsL(roots, static),
		PackagesLibsSmallL(roots, static),
	)
}

// PackagesAllCflags is the full "--cflags" output: other-cflags then -I.
func PackagesAllCflags(roots []*pkgconfig.Package, static bool) string {
	return joinNonEmpty(
		PackagesCflagsOther(roots, static),
		PackagesCflagsI(roots, static),
	)
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	result := ""
	for i, p := range out {
		if i > 0 {
			result += " "
		}
		result += p
	}
	return result
}

// PrintPackageList writes "{key}\t\t{name} - {description}" for every
// scanned location, one per line, sorted by key for reproducible output.
func (r *Registry) PrintPackageList(w io.Writer) {
	r.ensureScanned()

	keys := make([]string, 0, len(r.locations))
	for k := range r.locations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		pkg, ok := r.GetPackage(key)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t\t%s - %s\n", pkg.Key, pkg.Name, pkg.Description)
	}
}
