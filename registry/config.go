package registry

// Config holds the ambient configuration a front-end gathers (from flags,
// a config file, or an embedding program) before driving any query.
type Config struct {
	// StrictMode makes recoverable parse errors fatal instead of skipping or
	// defaulting the offending datum. Missing required fields and
	// constraint/conflict violations fail the load in either mode; StrictMode
	// only decides whether that failure is reported through VerboseErrorf
	// (strict) or DebugSpewf (lax).
	StrictMode bool

	// DefinePrefix enables the prefix-relocation special case in the
	// descriptor parser.
	DefinePrefix bool

	// PrefixVariable names the variable treated as the relocatable prefix;
	// defaults to "prefix" when empty.
	PrefixVariable string

	// MSVCSyntax rewrites -L/-l flags into /libpath:/.lib MSVC linker
	// syntax.
	MSVCSyntax bool

	// DisableUninstalled suppresses the "-uninstalled" preference in key
	// resolution.
	DisableUninstalled bool

	// Debug turns on DebugSpewf's default stderr sink.
	Debug bool
}
