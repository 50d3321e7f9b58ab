package token

import (
	"strings"
	"testing"
)

type headerTest struct {
	in   string
	name string
	ok   bool
}

func TestSectionHeader(t *testing.T) {
	hts := []headerTest{
		{in: `[a]`, name: "a", ok: true},
		{in: `[a.b c]`, name: "a.b c", ok: true},
		{in: `[a] junk`, name: "a", ok: true},
		{in: `[a]b]`, name: "a]b", ok: true},
		{in: `[]`},
		{in: `a]`},
		{in: `x = 1`},
		{in: ``},
	}
	for _, ht := range hts {
		name, ok := SectionHeader(ht.in)
		if ok != ht.ok || name != ht.name {
			t.Errorf("%q: got (%q, %v) want (%q, %v)", ht.in, name, ok, ht.name, ht.ok)
		}
	}
}

type optTest struct {
	in       string
	nv       bool
	key      string
	delim    string
	val      string
	hasValue bool
	ok       bool
}

func TestOptionMatcher(t *testing.T) {
	ots := []optTest{
		{in: `x = 1`, key: "x", delim: "=", val: "1", hasValue: true, ok: true},
		{in: `x=1`, key: "x", delim: "=", val: "1", hasValue: true, ok: true},
		{in: `x: 1`, key: "x", delim: ":", val: "1", hasValue: true, ok: true},
		{in: `a key = spaced value`, key: "a key", delim: "=", val: "spaced value", hasValue: true, ok: true},
		{in: `x =`, key: "x", delim: "=", val: "", hasValue: true, ok: true},
		{in: `= 3`, key: "", delim: "=", val: "3", hasValue: true, ok: true},
		{in: `no delimiter here`},
		{in: `bare`, nv: true, key: "bare", hasValue: false, ok: true},
		{in: `x = 1`, nv: true, key: "x", delim: "=", val: "1", hasValue: true, ok: true},
	}
	for _, ot := range ots {
		m := NewOptionMatcher([]string{"=", ":"}, ot.nv)
		key, delim, val, hasValue, ok := m.Match(ot.in)
		if ok != ot.ok || key != ot.key || delim != ot.delim || val != ot.val || hasValue != ot.hasValue {
			t.Errorf("%q (nv=%v): got (%q, %q, %q, %v, %v)", ot.in, ot.nv, key, delim, val, hasValue, ok)
		}
	}
}

func TestOptionMatcherCustomDelimiters(t *testing.T) {
	m := NewOptionMatcher([]string{"->"}, false)
	key, delim, val, _, ok := m.Match("x -> 1")
	if !ok || key != "x" || delim != "->" || val != "1" {
		t.Errorf("got (%q, %q, %q, %v)", key, delim, val, ok)
	}
	if _, _, _, _, ok := m.Match("x = 1"); ok {
		t.Error("matched against delimiter outside the configured set")
	}
}

type commentStartTest struct {
	in       string
	prefixes []string
	want     int
}

func TestCommentStart(t *testing.T) {
	cts := []commentStartTest{
		{in: "x = 1 ; note", prefixes: []string{";"}, want: 6},
		{in: "; whole line", prefixes: []string{";"}, want: 0},
		{in: "x = a;b", prefixes: []string{";"}, want: -1},
		{in: "x = a;b ; note", prefixes: []string{";"}, want: 8},
		{in: "x = 1 # c ; d", prefixes: []string{";", "#"}, want: 6},
		{in: "x = 1", prefixes: []string{";"}, want: -1},
		{in: "x = 1 ; note", prefixes: nil, want: -1},
	}
	for _, ct := range cts {
		if got := CommentStart(ct.in, ct.prefixes); got != ct.want {
			t.Errorf("%q %v: got %d want %d", ct.in, ct.prefixes, got, ct.want)
		}
	}
}

// The inherited heuristic truncates values at a whitespace-preceded prefix
// character; this pins the misfire so nobody "fixes" it by accident.
func TestCommentStartValueMisfire(t *testing.T) {
	if got := CommentStart("key = a ; not a comment", []string{";"}); got != 8 {
		t.Errorf("got %d want 8", got)
	}
}

func TestFullLineComment(t *testing.T) {
	prefixes := []string{"#", ";"}
	for in, want := range map[string]bool{
		"# c\n":      true,
		"   ; c\n":   true,
		"x = 1 # c":  false,
		"[a]":        false,
		"":           false,
		"\t# tabbed": true,
	} {
		if got := FullLineComment(in, prefixes); got != want {
			t.Errorf("%q: got %v want %v", in, got, want)
		}
	}
}

type splitTest struct {
	in   string
	want []string
}

func TestSplitLines(t *testing.T) {
	sts := []splitTest{
		{in: "", want: nil},
		{in: "a\n", want: []string{"a\n"}},
		{in: "a\nb\n", want: []string{"a\n", "b\n"}},
		{in: "a\r\nb\r\n", want: []string{"a\r\n", "b\r\n"}},
		{in: "a\nb", want: []string{"a\n", "b"}},
		{in: "\n\n", want: []string{"\n", "\n"}},
	}
	for _, st := range sts {
		got := SplitLines([]byte(st.in))
		if len(got) != len(st.want) {
			t.Errorf("%q: got %q want %q", st.in, got, st.want)
			continue
		}
		for i := range got {
			if got[i] != st.want[i] {
				t.Errorf("%q: line %d got %q want %q", st.in, i, got[i], st.want[i])
			}
		}
		if strings.Join(got, "") != st.in {
			t.Errorf("%q: concatenation does not reproduce input", st.in)
		}
	}
}

func TestIndent(t *testing.T) {
	for in, want := range map[string]int{
		"x = 1":      0,
		"  x = 1":    2,
		"\tx":        1,
		"    2\n":    4,
		"   \n":      0,
		"":           0,
	} {
		if got := Indent(in); got != want {
			t.Errorf("%q: got %d want %d", in, got, want)
		}
	}
}
