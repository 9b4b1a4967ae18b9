package pkgconfig

import "strings"

// VarLookup resolves a variable name to its value. Parse builds one that
// checks global overrides (Options.Globals, supplied by the registry), then
// the descriptor's own vars, then the synthetic pcfiledir entry — in that
// order — so this package never needs to import registry.
type VarLookup func(name string) (string, bool)

// substitute expands "${name}" references and "$$" escapes in raw, using
// lookup to resolve names. It runs a single pass: the substituted output is
// never re-scanned for further "${...}" tokens.
//
// When strict is true, an undefined variable is a *ParseError; otherwise it
// expands to the empty string and a debug note is the caller's
// responsibility (substitute itself does not log).
func substitute(path, raw string, lookup VarLookup, strict bool) (string, error) {
	raw = strings.TrimSpace(raw)

	var out strings.Builder
	i := 0
	for i < len(raw) {
		c := raw[i]
		if c != '$' {
			out.WriteByte(c)
			i++
			continue
		}

		if i+1 < len(raw) && raw[i+1] == '$' {
			out.WriteByte('$')
			i += 2
			continue
		}

		if i+1 < len(raw) && raw[i+1] == '{' {
			end := strings.IndexByte(raw[i+2:], '}')
			if end < 0 {
				out.WriteString(raw[i:])
				break
			}
			name := raw[i+2 : i+2+end]
			val, ok := lookup(name)
			if !ok {
				if strict {
					return "", newParseError(path, "undefined variable %q", name)
				}
				val = ""
			}
			out.WriteString(val)
			i += 2 + end + 1
			continue
		}

		out.WriteByte('$')
		i++
	}

	return out.String(), nil
}
