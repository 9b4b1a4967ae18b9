// Command pkgconf is a pkg-config-compatible front-end over the registry
// package: it parses flags and an optional YAML config file, drives one
// registry.Registry, and prints the merged result or a diagnostic with a
// matching exit code.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/etnz/pkgconf/pkgconfig"
	"github.com/etnz/pkgconf/registry"
	"github.com/etnz/pkgconf/version"
)

func main() {
	var (
		flagCflags             bool
		flagLibs               bool
		flagLibsOnlyL          bool
		flagLibsOnlyl          bool
		flagLibsOnlyOther      bool
		flagCflagsOnlyI        bool
		flagCflagsOnlyOther    bool
		flagExists             bool
		flagModversion         bool
		flagVariable           string
		flagDefineVariable     []string
		flagStatic             bool
		flagSilenceErrors      bool
		flagPrintErrors        bool
		flagMSVCSyntax         bool
		flagDontDefinePrefix   bool
		flagDisableUninstalled bool
		flagConfig             string
		flagListAll            bool
	)

	pflag.BoolVar(&flagCflags, "cflags", false, "output all pre-processor and compiler flags")
	pflag.BoolVar(&flagLibs, "libs", false, "output all linker flags")
	pflag.BoolVar(&flagLibsOnlyL, "libs-only-L", false, "output -L flags only")
	pflag.BoolVar(&flagLibsOnlyl, "libs-only-l", false, "output -l flags only")
	pflag.BoolVar(&flagLibsOnlyOther, "libs-only-other", false, "output other linker flags only")
	pflag.BoolVar(&flagCflagsOnlyI, "cflags-only-I", false, "output -I flags only")
	pflag.BoolVar(&flagCflagsOnlyOther, "cflags-only-other", false, "output other compiler flags only")
	pflag.BoolVar(&flagExists, "exists", false, "return 0 if the requested packages exist")
	pflag.BoolVar(&flagModversion, "modversion", false, "output the version for the requested packages")
	pflag.StringVar(&flagVariable, "variable", "", "output the value of a package variable")
	pflag.StringArrayVar(&flagDefineVariable, "define-variable", nil, "define NAME=VALUE, overriding any descriptor's own definition")
	pflag.BoolVar(&flagStatic, "static", false, "output flags for static linking (includes Requires.private/Libs.private)")
	pflag.BoolVar(&flagSilenceErrors, "silence-errors", false, "suppress the not-found diagnostic on stderr")
	pflag.BoolVar(&flagPrintErrors, "print-errors", true, "print errors (accepted for compatibility; always on)")
	pflag.BoolVar(&flagMSVCSyntax, "msvc-syntax", false, "emit MSVC-style /libpath:/.lib linker syntax")
	pflag.BoolVar(&flagDontDefinePrefix, "dont-define-prefix", false, "disable the prefix-relocation special case")
	pflag.BoolVar(&flagDisableUninstalled, "disable-uninstalled", false, "disable the -uninstalled package preference")
	pflag.StringVar(&flagConfig, "config", "", "path to a YAML config file (search_dirs, variables, strict, msvc_syntax, disable_uninstalled)")
	pflag.BoolVar(&flagListAll, "list-all", false, "list all known packages")
	pflag.Parse()

	cfg := registry.Config{
		DefinePrefix: !flagDontDefinePrefix,
	}
	var searchDirs []string
	globals := map[string]string{}

	if flagConfig != "" {
		fc, err := loadFileConfig(flagConfig)
		if err != nil {
			log.Fatalf("loading config %s: %v", flagConfig, err)
		}
		searchDirs = append(searchDirs, fc.SearchDirs...)
		for k, v := range fc.Variables {
			globals[k] = v
		}
		cfg.StrictMode = fc.Strict
		cfg.MSVCSyntax = fc.MSVCSyntax
		cfg.DisableUninstalled = fc.DisableUninstalled
	}

	if flagMSVCSyntax {
		cfg.MSVCSyntax = true
	}
	if flagDisableUninstalled {
		cfg.DisableUninstalled = true
	}

	reg := registry.New(cfg)
	if flagSilenceErrors {
		reg.VerboseErrorf = func(string, ...any) {}
	}

	for _, dir := range searchDirs {
		reg.AddSearchDir(dir)
	}
	if envPath := os.Getenv("PKG_CONFIG_PATH"); envPath != "" {
		for _, dir := range filepath.SplitList(envPath) {
			reg.AddSearchDir(dir)
		}
	}

	for name, val := range globals {
		reg.DefineGlobalVariable(name, val)
	}
	for _, kv := range flagDefineVariable {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			log.Fatalf("--define-variable expects NAME=VALUE, got %q", kv)
		}
		reg.DefineGlobalVariable(name, val)
	}

	if flagListAll {
		reg.PrintPackageList(os.Stdout)
		return
	}

	args := pflag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "pkgconf: must specify at least one package name")
		os.Exit(1)
	}

	if flagExists {
		os.Exit(runExists(reg, args, cfg.StrictMode))
	}

	pkgs := make([]*pkgconfig.Package, 0, len(args))
	for _, name := range args {
		pkg, ok := reg.GetPackage(name)
		if !ok {
			os.Exit(1)
		}
		pkgs = append(pkgs, pkg)
	}

	switch {
	case flagModversion:
		for _, pkg := range pkgs {
			fmt.Println(pkg.Version)
		}
	case flagVariable != "":
		for _, pkg := range pkgs {
			if v, ok := reg.ParsePackageVariable(pkg, flagVariable); ok {
				fmt.Println(v)
			}
		}
	default:
		fmt.Println(buildOutput(reg, pkgs, cfg.StrictMode, outputFlags{
			cflags:          flagCflags,
			cflagsOnlyI:     flagCflagsOnlyI,
			cflagsOnlyOther: flagCflagsOnlyOther,
			libs:            flagLibs,
			libsOnlyL:       flagLibsOnlyL,
			libsOnlyl:       flagLibsOnlyl,
			libsOnlyOther:   flagLibsOnlyOther,
			static:          flagStatic,
		}))
	}
}

type outputFlags struct {
	cflags, cflagsOnlyI, cflagsOnlyOther bool
	libs, libsOnlyL, libsOnlyl, libsOnlyOther bool
	static bool
}

// buildOutput assembles the requested categories, in the canonical
// cflags-before-libs, other-before-switch order.
func buildOutput(reg *registry.Registry, pkgs []*pkgconfig.Package, static bool, f outputFlags) string {
	var parts []string

	switch {
	case f.cflags:
		parts = append(parts, registry.PackagesAllCflags(pkgs, f.static))
	case f.cflagsOnlyI:
		parts = append(parts, registry.PackagesCflagsI(pkgs, f.static))
	case f.cflagsOnlyOther:
		parts = append(parts, registry.PackagesCflagsOther(pkgs, f.static))
	}

	switch {
	case f.libs:
		parts = append(parts, registry.PackagesAllLibs(pkgs, f.static))
	case f.libsOnlyL:
		parts = append(parts, registry.PackagesLibsL(pkgs, f.static))
	case f.libsOnlyl:
		parts = append(parts, registry.PackagesLibsSmallL(pkgs, f.static))
	case f.libsOnlyOther:
		parts = append(parts, registry.PackagesLibsOther(pkgs, f.static))
	}

	return strings.Join(parts, " ")
}

func runExists(reg *registry.Registry, args []string, strict bool) int {
	entries, err := pkgconfig.ParseModuleList(strings.Join(args, " "), !strict)
	if err != nil {
		return 1
	}
	for _, e := range entries {
		pkg, ok := reg.GetPackage(e.Name)
		if !ok {
			return 1
		}
		if e.Comparison != version.AlwaysMatch && !version.Test(e.Comparison, pkg.Version, e.Version) {
			return 1
		}
	}
	return 0
}
