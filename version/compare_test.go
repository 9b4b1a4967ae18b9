package version

import "testing"

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1.0", "2.0", -1},
		{"2.0", "1.0", 1},
		{"1.0.2a", "1.0.2a", 0},
		{"1.0.2a", "1.0.2b", -1},
		{"5.5p1", "5.5p2", -1},
		{"5.5p10", "5.5p1", 1},
		{"10", "9", 1},
		{"9", "10", -1},
		{"0010", "10", 0},
		{"1.0010", "1.9", 1},
		{"1.05", "1.5", 0},
		{"1.0", "1.0a", -1},
		{"1.0a", "1.0", 1},
		{"20190502131153", "20190101000000", 1},
		{"1.1a", "1.1", 1},
		{"1.0~beta", "1.0", 1},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCompareReflexive(t *testing.T) {
	inputs := []string{"1.0", "2.3.4-rc1", "abc", "1.0.2a", ""}
	for _, s := range inputs {
		if got := Compare(s, s); got != 0 {
			t.Errorf("Compare(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

// TestCompareTypeMismatchQuirk documents the non-antisymmetric tiebreak
// inherited from rpmvercmp: when the two sides disagree on whether the next
// run is numeric or alphabetic, the loser is decided by which segment came
// out empty under the type chosen from a's leading byte, not by swapping the
// arguments. Compare(a, b) and Compare(b, a) are not required to be exact
// negations of each other in this case.
func TestCompareTypeMismatchQuirk(t *testing.T) {
	if got := Compare("1.0", "1.a"); got != -1 {
		t.Errorf("Compare(%q, %q) = %d, want -1", "1.0", "1.a", got)
	}
	if got := Compare("1.a", "1.0"); got != -1 {
		t.Errorf("Compare(%q, %q) = %d, want -1", "1.a", "1.0", got)
	}
}

func TestTest(t *testing.T) {
	cases := []struct {
		op        Operator
		have, want string
		result    bool
	}{
		{AlwaysMatch, "1.0", "9.9", true},
		{Equal, "1.0", "1.0", true},
		{Equal, "1.0", "1.1", false},
		{NotEqual, "1.0", "1.1", true},
		{Less, "1.0", "1.1", true},
		{Less, "1.1", "1.0", false},
		{LessEq, "1.0", "1.0", true},
		{Greater, "2.0", "1.0", true},
		{GreaterEq, "1.0", "1.0", true},
	}
	for _, c := range cases {
		if got := Test(c.op, c.have, c.want); got != c.result {
			t.Errorf("Test(%s, %q, %q) = %v, want %v", c.op, c.have, c.want, got, c.result)
		}
	}
}

func TestParseOperator(t *testing.T) {
	for tok, want := range map[string]Operator{
		"<": Less, "<=": LessEq, "=": Equal, "!=": NotEqual, ">=": GreaterEq, ">": Greater,
	} {
		op, ok := ParseOperator(tok)
		if !ok || op != want {
			t.Errorf("ParseOperator(%q) = %v, %v; want %v, true", tok, op, ok, want)
		}
	}
	if _, ok := ParseOperator("~="); ok {
		t.Errorf("ParseOperator(%q) unexpectedly succeeded", "~=")
	}
}
