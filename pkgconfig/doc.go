// Package pkgconfig parses pkg-config ".pc" descriptor files: the line
// reader, variable substitutor, module-list tokenizer, compiler/linker
// argument tokenizer, and the descriptor parser that ties them together
// into a Package value.
//
// The package knows nothing about where descriptors live on disk or how
// one Package's Requires are resolved against another's — that is
// registry's job. pkgconfig only turns descriptor text into data.
package pkgconfig
