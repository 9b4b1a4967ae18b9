package pkgconfig

import (
	"bufio"
	"io"
	"strings"
)

// Options configures a single descriptor parse. Globals resolves a global
// variable override (e.g. injected via --define-variable or a CLI config
// file); it is consulted before the descriptor's own variables.
type Options struct {
	Globals        VarLookup
	StrictMode     bool
	DefinePrefix   bool
	PrefixVariable string // defaults to "prefix" if empty
	MSVCSyntax     bool
}

func (o Options) prefixVariable() string {
	if o.PrefixVariable == "" {
		return "prefix"
	}
	return o.PrefixVariable
}

// Parse drives the line reader to end of stream, dispatching each logical
// line to a field or variable assignment and building a Package. Key and
// Uninstalled are left zero-valued; a registry fills them in once the
// file's location is known.
func Parse(path, pcfiledir string, r io.Reader, opts Options) (*Package, error) {
	pkg := &Package{
		PCFileDir: pcfiledir,
		Vars:      map[string]string{},
	}

	seenFields := map[string]bool{}
	seenVars := map[string]bool{}

	lookup := func(name string) (string, bool) {
		if opts.Globals != nil {
			if v, ok := opts.Globals(name); ok {
				return v, true
			}
		}
		if v, ok := pkg.Vars[name]; ok {
			return v, true
		}
		if name == "pcfiledir" {
			return pkg.PCFileDir, true
		}
		return "", false
	}

	br := bufio.NewReader(r)
	for {
		raw, ok, err := readLogicalLine(br)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ident, rest := splitIdent(line)
		if ident == "" {
			continue // unrecognized line; forward-compatible no-op
		}
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			continue
		}

		switch rest[0] {
		case ':':
			value := strings.TrimLeft(rest[1:], " \t")
			canon := canonicalField(ident)
			if canon == "" {
				continue // unknown field: forward compatibility
			}
			if seenFields[canon] {
				if opts.StrictMode {
					return nil, newParseError(path, "duplicate field %q", canon)
				}
				continue
			}
			seenFields[canon] = true
			if err := pkg.applyField(path, canon, value, lookup, opts); err != nil {
				return nil, err
			}

		case '=':
			value := strings.TrimLeft(rest[1:], " \t")
			if seenVars[ident] {
				if opts.StrictMode {
					return nil, newParseError(path, "duplicate variable %q", ident)
				}
				continue
			}
			seenVars[ident] = true
			if err := pkg.applyVariable(path, ident, value, lookup, opts); err != nil {
				return nil, err
			}
		}
	}

	pkg.RequiredVersions = map[string]RequiredVersion{}
	for _, rv := range pkg.RequiresEntries {
		pkg.RequiredVersions[rv.Name] = rv
	}
	for _, rv := range pkg.RequiresPrivateEntries {
		pkg.RequiredVersions[rv.Name] = rv
	}

	return pkg, nil
}

// splitIdent extracts the leading identifier (bytes in [A-Za-z0-9_.]) from
// line and returns it along with everything after it.
func splitIdent(line string) (ident, rest string) {
	i := 0
	for i < len(line) && isIdentByte(line[i]) {
		i++
	}
	return line[:i], line[i:]
}

func isIdentByte(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_' || b == '.'
}

func canonicalField(ident string) string {
	switch ident {
	case "Name", "Description", "Version", "Requires", "Requires.private",
		"Libs", "Libs.private", "Conflicts", "URL":
		return ident
	case "Cflags", "CFlags":
		return "Cflags"
	default:
		return ""
	}
}

// applyField dispatches a field's raw value to substitution/tokenization.
// Unlike applyVariable, it never runs rewritePrefixLiteral: pkg-config's own
// parse_line only wires the literal-prefix rewrite into the '=' (variable)
// branch, not the ':' (field) branch, so a field that hardcodes the old
// prefix literally is left alone.
func (pkg *Package) applyField(path, field, raw string, lookup VarLookup, opts Options) error {
	switch field {
	case "Name":
		v, err := substitute(path, raw, lookup, opts.StrictMode)
		if err != nil {
			return err
		}
		pkg.Name = v
	case "Description":
		v, err := substitute(path, raw, lookup, opts.StrictMode)
		if err != nil {
			return err
		}
		pkg.Description = v
	case "Version":
		v, err := substitute(path, raw, lookup, opts.StrictMode)
		if err != nil {
			return err
		}
		pkg.Version = v
	case "URL":
		v, err := substitute(path, raw, lookup, opts.StrictMode)
		if err != nil {
			return err
		}
		pkg.URL = v
	case "Requires":
		v, err := substitute(path, raw, lookup, opts.StrictMode)
		if err != nil {
			return err
		}
		entries, err := parseModuleList(path, v, !opts.StrictMode)
		if err != nil {
			return err
		}
		pkg.RequiresEntries = entries
	case "Requires.private":
		v, err := substitute(path, raw, lookup, opts.StrictMode)
		if err != nil {
			return err
		}
		entries, err := parseModuleList(path, v, !opts.StrictMode)
		if err != nil {
			return err
		}
		pkg.RequiresPrivateEntries = entries
	case "Conflicts":
		v, err := substitute(path, raw, lookup, opts.StrictMode)
		if err != nil {
			return err
		}
		entries, err := parseModuleList(path, v, !opts.StrictMode)
		if err != nil {
			return err
		}
		pkg.Conflicts = entries
	case "Cflags":
		flags, err := tokenizeArgs(path, raw, lookup, opts.StrictMode, argModeCflags, opts.MSVCSyntax)
		if err != nil {
			return err
		}
		pkg.Cflags = flags
	case "Libs":
		flags, err := tokenizeArgs(path, raw, lookup, opts.StrictMode, argModeLibs, opts.MSVCSyntax)
		if err != nil {
			return err
		}
		pkg.Libs = flags
	case "Libs.private":
		flags, err := tokenizeArgs(path, raw, lookup, opts.StrictMode, argModeLibs, opts.MSVCSyntax)
		if err != nil {
			return err
		}
		pkg.LibsPrivate = flags
	}
	return nil
}

func (pkg *Package) applyVariable(path, name, raw string, lookup VarLookup, opts Options) error {
	raw = pkg.rewritePrefixLiteral(raw, opts)

	if opts.DefinePrefix && name == opts.prefixVariable() && strings.EqualFold(sBasename(pkg.PCFileDir), "pkgconfig") {
		pkg.OrigPrefix = strings.TrimSpace(raw)
		override := sDirname(sDirname(pkg.PCFileDir))
		pkg.Vars[name] = shellEscape(normalizeSlashes(override))
		return nil
	}

	v, err := substitute(path, raw, lookup, opts.StrictMode)
	if err != nil {
		return err
	}
	pkg.Vars[name] = v
	return nil
}

// rewritePrefixLiteral rewrites a leading literal occurrence of OrigPrefix
// in raw to the descriptor's current effective prefix value, before
// substitution runs. It is a no-op until a prefix relocation has happened.
func (pkg *Package) rewritePrefixLiteral(raw string, opts Options) string {
	if pkg.OrigPrefix == "" {
		return raw
	}
	cur, ok := pkg.Vars[opts.prefixVariable()]
	if !ok {
		return raw
	}
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, pkg.OrigPrefix+"/") {
		return cur + trimmed[len(pkg.OrigPrefix):]
	}
	return raw
}

func normalizeSlashes(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

func sBasename(p string) string {
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}

func sDirname(p string) string {
	p = strings.TrimRight(p, "/")
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return "."
	}
	if i == 0 {
		return "/"
	}
	return p[:i]
}
