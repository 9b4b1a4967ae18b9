package pkgconfig

import (
	"strings"

	shellwords "github.com/kballard/go-shellquote"
)

// argMode selects which field a raw argument string came from, since Cflags
// and Libs recognize different flag prefixes.
type argMode int

const (
	argModeCflags argMode = iota
	argModeLibs
)

// shellEscape prefixes every byte outside [A-Za-z0-9_./:@^+,%=-] with a
// backslash, so the result can be pasted back into a shell command line
// without being reinterpreted.
func shellEscape(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isShellSafe(c) {
			out.WriteByte(c)
			continue
		}
		out.WriteByte('\\')
		out.WriteByte(c)
	}
	return out.String()
}

func isShellSafe(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '_', '.', '/', ':', '@', '^', '+', ',', '%', '=', '-':
		return true
	}
	return false
}

// tokenizeArgs substitutes raw, shell-word-splits it, and classifies each
// resulting token into a Flag per mode. msvc rewrites -L/-l syntax into
// /libpath:/.lib form after classification. An unparseable argument list is
// a *ParseError when strict is true; otherwise the field yields no flags.
func tokenizeArgs(path string, raw string, lookup VarLookup, strict bool, mode argMode, msvc bool) ([]Flag, error) {
	substituted, err := substitute(path, raw, lookup, strict)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(substituted) == "" {
		return nil, nil
	}

	words, err := shellwords.Split(substituted)
	if err != nil {
		if !strict {
			return nil, nil
		}
		return nil, newParseError(path, "unparseable argument list %q: %v", raw, err)
	}

	var flags []Flag
	for i := 0; i < len(words); i++ {
		tok := strings.TrimSpace(words[i])
		if tok == "" {
			continue
		}

		var f Flag
		consumed := 1

		switch mode {
		case argModeCflags:
			f, consumed = classifyCflagsToken(words, i)
		case argModeLibs:
			f, consumed = classifyLibsToken(words, i)
		}

		if msvc {
			rewriteMSVC(&f)
		}
		flags = append(flags, f)
		i += consumed - 1
	}

	return flags, nil
}

func classifyCflagsToken(words []string, i int) (Flag, int) {
	tok := words[i]

	switch tok {
	case "-idirafter", "-isystem":
		if i+1 < len(words) {
			return Flag{Kind: CflagsI, Arg: tok + " " + shellEscape(words[i+1])}, 2
		}
		return Flag{Kind: CflagsOther, Arg: shellEscape(tok)}, 1
	case "-I":
		if i+1 < len(words) {
			return Flag{Kind: CflagsI, Arg: "-I" + shellEscape(words[i+1])}, 2
		}
		return Flag{Kind: CflagsOther, Arg: shellEscape(tok)}, 1
	}

	if strings.HasPrefix(tok, "-I") {
		return Flag{Kind: CflagsI, Arg: "-I" + shellEscape(tok[2:])}, 1
	}

	return Flag{Kind: CflagsOther, Arg: shellEscape(tok)}, 1
}

func classifyLibsToken(words []string, i int) (Flag, int) {
	tok := words[i]

	if tok == "-framework" && i+1 < len(words) {
		return Flag{Kind: LibsOther, Arg: tok + " " + shellEscape(words[i+1])}, 2
	}
	if tok == "-Wl,-framework" && i+1 < len(words) {
		return Flag{Kind: LibsOther, Arg: tok + " " + shellEscape(words[i+1])}, 2
	}

	// "-lib:" is the C# compiler's library option, not pkg-config's "-l"
	// flag; it must not be mistaken for one even though it shares the
	// prefix.
	if strings.HasPrefix(tok, "-lib:") {
		return Flag{Kind: LibsOther, Arg: shellEscape(tok)}, 1
	}

	switch tok {
	case "-L":
		if i+1 < len(words) {
			return Flag{Kind: LibsL, Arg: "-L" + shellEscape(words[i+1])}, 2
		}
		return Flag{Kind: LibsOther, Arg: shellEscape(tok)}, 1
	case "-l":
		if i+1 < len(words) {
			return Flag{Kind: LibsSmallL, Arg: "-l" + shellEscape(words[i+1])}, 2
		}
		return Flag{Kind: LibsOther, Arg: shellEscape(tok)}, 1
	}

	if strings.HasPrefix(tok, "-L") {
		return Flag{Kind: LibsL, Arg: "-L" + shellEscape(tok[2:])}, 1
	}
	if strings.HasPrefix(tok, "-l") {
		return Flag{Kind: LibsSmallL, Arg: "-l" + shellEscape(tok[2:])}, 1
	}

	return Flag{Kind: LibsOther, Arg: shellEscape(tok)}, 1
}

// rewriteMSVC rewrites a LibsL or LibsSmallL flag's already-built Arg into
// MSVC linker syntax: "-L" becomes "/libpath:", "-l" becomes an empty
// prefix with ".lib" appended to the library name.
func rewriteMSVC(f *Flag) {
	switch f.Kind {
	case LibsL:
		if strings.HasPrefix(f.Arg, "-L") {
			f.Arg = "/libpath:" + f.Arg[len("-L"):]
		}
	case LibsSmallL:
		if strings.HasPrefix(f.Arg, "-l") {
			f.Arg = f.Arg[len("-l"):] + ".lib"
		}
	}
}
