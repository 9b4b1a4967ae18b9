// Package registry resolves pkg-config style package descriptors: it scans
// search directories for ".pc" files, loads and verifies them lazily via
// pkgconfig.Parse, walks transitive Requires/Conflicts closures, and merges
// per-package flag lists into the de-duplicated strings a compiler or
// linker invocation expects.
//
// State that pkg-config's C implementation keeps in process-wide globals
// (locations, loaded packages, global variable overrides, the search path)
// is encapsulated here in an explicit *Registry value instead, so a program
// can hold more than one independently configured resolver.
package registry
