package pkgconfig

import "github.com/etnz/pkgconf/version"

// FlagKind classifies a single already-escaped compiler or linker argument.
type FlagKind int

const (
	CflagsI FlagKind = iota
	CflagsOther
	LibsL
	LibsSmallL
	LibsOther
)

func (k FlagKind) String() string {
	switch k {
	case CflagsI:
		return "CflagsI"
	case CflagsOther:
		return "CflagsOther"
	case LibsL:
		return "LibsL"
	case LibsSmallL:
		return "LibsSmallL"
	case LibsOther:
		return "LibsOther"
	default:
		return "Unknown"
	}
}

// Flag is one classified, shell-escaped compiler or linker argument, already
// carrying its canonical switch (e.g. "-I/foo", "-lfoo", "-L/foo").
type Flag struct {
	Kind FlagKind
	Arg  string
}

// RequiredVersion is a single "name [op version]" constraint declared by a
// Requires, Requires.private, or Conflicts field.
type RequiredVersion struct {
	Name       string
	Comparison version.Operator
	Version    string

	// Owner is the key of the declaring Package, used only to format
	// diagnostics. It is a plain string rather than a pointer back into the
	// owning Package so RequiredVersion never participates in a reference
	// cycle.
	Owner string
}

// Package is the loaded, in-memory representation of one descriptor file.
// A Package is immutable once returned by a loader, except for the fields a
// registry fills in afterwards: Key, Uninstalled, the Owner of each
// RequiredVersion entry, and Requires/RequiresPrivate once the descriptors
// it depends on have been loaded.
type Package struct {
	Key       string
	PCFileDir string

	Name        string
	Version     string
	Description string
	URL         string

	Vars       map[string]string
	OrigPrefix string

	RequiresEntries        []RequiredVersion
	RequiresPrivateEntries []RequiredVersion
	Conflicts              []RequiredVersion

	// RequiredVersions indexes RequiresEntries and RequiresPrivateEntries by
	// referenced key, for O(1) constraint lookup during verification.
	RequiredVersions map[string]RequiredVersion

	// Requires holds resolved pointers to loaded dependencies, filled in by
	// a resolver after parsing; insertion order mirrors RequiresEntries.
	Requires []*Package

	// RequiresPrivate holds resolved pointers for RequiresPrivateEntries,
	// consulted only by static (--static) queries.
	RequiresPrivate []*Package

	Cflags      []Flag
	Libs        []Flag
	LibsPrivate []Flag

	Uninstalled bool
}

// Var returns a variable defined directly in the descriptor body, not
// consulting any global override or the synthetic pcfiledir entry. Callers
// resolving substitutions should go through a registry's variable lookup
// instead.
func (p *Package) Var(name string) (string, bool) {
	v, ok := p.Vars[name]
	return v, ok
}
