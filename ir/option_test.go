package ir

import "testing"

type joinTest struct {
	values []string
	want   string
}

func TestValueJoin(t *testing.T) {
	jts := []joinTest{
		{values: []string{"1"}, want: "1"},
		{values: []string{"1", "2", "3"}, want: "1\n2\n3"},
		{values: []string{""}, want: ""},
		{values: []string{"1", "", "2"}, want: "1\n2"},
		{values: []string{"1", "; dropped", "2"}, want: "1\n2"},
		{values: []string{"1", "# dropped"}, want: "1"},
	}
	for _, jt := range jts {
		o := ParsedOption("x", "=", jt.values[0], true, true, "x = "+jt.values[0]+"\n")
		for _, v := range jt.values[1:] {
			o.AddLine("    " + v + "\n")
		}
		if got := o.Value(); got != jt.want {
			t.Errorf("%q: got %q want %q", jt.values, got, jt.want)
		}
	}
}

func TestValueRecomputed(t *testing.T) {
	o := ParsedOption("x", "=", "1", true, true, "x = 1\n")
	if o.Value() != "1" {
		t.Fatalf("got %q", o.Value())
	}
	o.AddLine("    2\n")
	if o.Value() != "1\n2" {
		t.Errorf("join not recomputed after AddLine: %q", o.Value())
	}
}

func TestSetValueNormalizes(t *testing.T) {
	o := NewOption("x", "  first\n\tsecond\nthird")
	if got, want := o.Value(), "first\n    second\n    third"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestSetValues(t *testing.T) {
	o := ParsedOption("x", "=", "1", true, true, "x = 1\n")
	o.SetValues("a", "b")
	if got, want := o.Value(), "\n    a\n    b"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if !o.Updated() {
		t.Error("SetValues did not dirty the option")
	}
}

func TestSetNoValue(t *testing.T) {
	o := ParsedOption("x", "=", "1", true, true, "x = 1\n")
	o.SetNoValue()
	if o.HasValue() {
		t.Error("still has a value")
	}
	if o.Value() != "" {
		t.Errorf("got %q", o.Value())
	}
}

func TestUpdatedFlag(t *testing.T) {
	parsed := ParsedOption("x", "=", "1", true, true, "x = 1\n")
	if parsed.Updated() {
		t.Error("parsed option updated before any mutation")
	}
	parsed.SetValue("2")
	if !parsed.Updated() {
		t.Error("mutated option not updated")
	}

	fresh := NewOption("y", "2")
	if !fresh.Updated() {
		t.Error("fresh option not updated")
	}

	renamed := ParsedOption("x", "=", "1", true, true, "x = 1\n")
	renamed.SetKey("z")
	if !renamed.Updated() {
		t.Error("renamed option not updated")
	}
}
