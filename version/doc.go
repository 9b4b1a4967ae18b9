// Package version implements the rpm-style version ordering used to evaluate
// pkg-config style "Requires: foo >= 1.2" constraints.
//
// The comparator walks two version strings in lockstep, splitting each into
// alternating runs of digits and runs of letters, and compares run-by-run.
// It is the same algorithm RPM has used since the 1990s (and which pkg-config
// borrowed verbatim); it is deliberately not SemVer and not lexicographic
// string comparison.
package version
