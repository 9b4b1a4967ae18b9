package version

// Compare returns -1, 0, or 1 according to whether a sorts before, equal to,
// or after b, using rpm's alphanumeric-segment ordering.
//
// Ported from pkg-config's rpmvercmp (itself lifted from rpm/lib/misc.c):
// walk both strings skipping non-alphanumeric separators, pull the next
// maximal run of digits (if both sides start with a digit) or letters
// otherwise, and compare those runs. Numeric runs compare by magnitude after
// stripping leading zeros (so "10" beats "9" — plain strcmp would get that
// backwards); alphabetic runs compare lexicographically.
func Compare(a, b string) int {
	if a == b {
		return 0
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		for i < len(a) && !isAlnum(a[i]) {
			i++
		}
		for j < len(b) && !isAlnum(b[j]) {
			j++
		}
		if i >= len(a) || j >= len(b) {
			break
		}

		segStartA, segStartB := i, j
		var numeric bool
		if isDigit(a[i]) {
			numeric = true
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
		} else {
			for i < len(a) && isAlpha(a[i]) {
				i++
			}
			for j < len(b) && isAlpha(b[j]) {
				j++
			}
		}

		segA, segB := a[segStartA:i], b[segStartB:j]

		// Type-mismatch tiebreak: whichever side's segment turned out empty
		// (because the chosen type, decided from a's leading byte, doesn't
		// match what's actually there) loses. This is the quirk noted in the
		// spec's Design Notes: it returns -1 in both directions and is not
		// antisymmetric in this pathological case. Preserved byte-for-byte
		// for compatibility.
		if segA == "" {
			return -1
		}
		if segB == "" {
			return -1
		}

		if numeric {
			segA = stripLeadingZeros(segA)
			segB = stripLeadingZeros(segB)
			if len(segA) != len(segB) {
				if len(segA) > len(segB) {
					return 1
				}
				return -1
			}
		}

		if c := compareStrings(segA, segB); c != 0 {
			return c
		}
	}

	aRest := i < len(a)
	bRest := j < len(b)
	switch {
	case !aRest && !bRest:
		return 0
	case !aRest:
		return -1
	default:
		return 1
	}
}

func stripLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isAlnum(c byte) bool { return isDigit(c) || isAlpha(c) }
