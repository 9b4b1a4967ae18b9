package pkgconfig

import (
	"reflect"
	"testing"

	"github.com/etnz/pkgconf/version"
)

func TestParseModuleList(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []RequiredVersion
	}{
		{
			name: "bare names comma separated",
			in:   "foo, bar",
			want: []RequiredVersion{
				{Name: "foo", Comparison: version.AlwaysMatch},
				{Name: "bar", Comparison: version.AlwaysMatch},
			},
		},
		{
			name: "operator attached with spaces",
			in:   "foo >= 1.2",
			want: []RequiredVersion{
				{Name: "foo", Comparison: version.GreaterEq, Version: "1.2"},
			},
		},
		{
			name: "mixed bare and constrained",
			in:   "foo >= 1.2, bar",
			want: []RequiredVersion{
				{Name: "foo", Comparison: version.GreaterEq, Version: "1.2"},
				{Name: "bar", Comparison: version.AlwaysMatch},
			},
		},
		{
			name: "whitespace separated without comma",
			in:   "foo bar baz",
			want: []RequiredVersion{
				{Name: "foo", Comparison: version.AlwaysMatch},
				{Name: "bar", Comparison: version.AlwaysMatch},
				{Name: "baz", Comparison: version.AlwaysMatch},
			},
		},
		{
			name: "not-equal operator",
			in:   "foo != 1.0",
			want: []RequiredVersion{
				{Name: "foo", Comparison: version.NotEqual, Version: "1.0"},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := parseModuleList("x.pc", c.in, false)
			if err != nil {
				t.Fatalf("parseModuleList(%q): %v", c.in, err)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("parseModuleList(%q) = %#v, want %#v", c.in, got, c.want)
			}
		})
	}
}

func TestParseModuleListCommaCommitsName(t *testing.T) {
	// A comma immediately after a name commits it with AlwaysMatch; the
	// next module starts fresh and can still pick up an operator across
	// whitespace, since only a comma (not a space) blocks that lookahead.
	got, err := parseModuleList("x.pc", "foo, bar >= 1.0", true)
	if err != nil {
		t.Fatalf("parseModuleList: %v", err)
	}
	want := []RequiredVersion{
		{Name: "foo", Comparison: version.AlwaysMatch},
		{Name: "bar", Comparison: version.GreaterEq, Version: "1.0"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParseModuleListLaxSynthesizesVersion(t *testing.T) {
	got, err := parseModuleList("x.pc", "foo >=", true)
	if err != nil {
		t.Fatalf("parseModuleList: %v", err)
	}
	if len(got) != 1 || got[0].Version != "0" {
		t.Errorf("got %#v, want synthesized version 0", got)
	}
}

func TestParseModuleListStrictErrorsOnMissingVersion(t *testing.T) {
	if _, err := parseModuleList("x.pc", "foo >=", false); err == nil {
		t.Fatal("expected error in strict mode")
	}
}
