package registry

import "github.com/etnz/pkgconf/pkgconfig"

// forwardDedup walks flags left to right, keeping only each distinct
// (Kind, Arg) pair's first occurrence. Used for CflagsI and LibsL, where
// the first-declared search path should win.
func forwardDedup(flags []pkgconfig.Flag) []pkgconfig.Flag {
	seen := map[pkgconfig.Flag]bool{}
	var out []pkgconfig.Flag
	for _, f := range flags {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// backwardDedup keeps only each distinct flag's last occurrence, preserving
// relative order — the correct linker semantics for repeated "-l" flags,
// where a later mention can matter for link-order resolution.
func backwardDedup(flags []pkgconfig.Flag) []pkgconfig.Flag {
	reversed := make([]pkgconfig.Flag, len(flags))
	for i, f := range flags {
		reversed[len(flags)-1-i] = f
	}
	deduped := forwardDedup(reversed)
	out := make([]pkgconfig.Flag, len(deduped))
	for i, f := range deduped {
		out[len(deduped)-1-i] = f
	}
	return out
}

func flagsOfKind(flags []pkgconfig.Flag, kind pkgconfig.FlagKind) []pkgconfig.Flag {
	var out []pkgconfig.Flag
	for _, f := range flags {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

func joinFlags(flags []pkgconfig.Flag) string {
	var sb []byte
	for i, f := range flags {
		if i > 0 {
			sb = append(sb, ' ')
		}
		sb = append(sb, f.Arg...)
	}
	return string(sb)
}
