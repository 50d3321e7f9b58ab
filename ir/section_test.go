package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSectionSetGetDelete(t *testing.T) {
	s := NewSection("a")
	s.Set("x", "1")
	s.Set("y", "2")
	if got := s.Option("x").Value(); got != "1" {
		t.Errorf("got %q", got)
	}
	s.Set("x", "3")
	if got := s.Option("x").Value(); got != "3" {
		t.Errorf("got %q after reset", got)
	}
	if len(s.OptionBlocks()) != 2 {
		t.Errorf("Set on existing key appended a block: %v", s.Options())
	}
	if !s.Delete("y") {
		t.Error("Delete on existing key reported false")
	}
	if s.Delete("y") {
		t.Error("Delete on missing key reported true")
	}
	if s.Has("y") {
		t.Error("deleted option still present")
	}
}

func TestSectionCaseInsensitiveLookup(t *testing.T) {
	s := NewSection("settings")
	s.AddOption(ParsedOption("Key", "=", "1", true, true, "Key = 1\n"))
	upper, lower := s.Option("KEY"), s.Option("key")
	if upper == nil || upper != lower {
		t.Fatal("lookups with differing case did not resolve to one option")
	}
	if upper.Key() != "Key" {
		t.Errorf("stored key lost its case: %q", upper.Key())
	}
}

func TestSectionKeyTransform(t *testing.T) {
	s := NewSection("a")
	s.SetKeyTransform(func(k string) string { return k })
	s.AddOption(ParsedOption("Key", "=", "1", true, true, "Key = 1\n"))
	if s.Option("key") != nil {
		t.Error("identity transform still folded case")
	}
	if s.Option("Key") == nil {
		t.Error("exact lookup failed under identity transform")
	}
}

func TestSectionCommentSpaceRuns(t *testing.T) {
	s := NewSection("a")
	s.AddComment("# one\n")
	s.AddComment("# two\n")
	s.AddSpace("\n")
	s.AddSpace("\n")
	s.AddComment("# three\n")
	if s.Len() != 3 {
		t.Fatalf("got %d children, want merged runs of 3", s.Len())
	}
	if got := len(s.Blocks()[0].Lines()); got != 2 {
		t.Errorf("first comment run has %d lines", got)
	}
}

func TestSectionToMap(t *testing.T) {
	s := NewSection("a")
	s.Set("x", "1")
	s.Set("Y", "2")
	want := map[string]string{"x": "1", "Y": "2"}
	if diff := cmp.Diff(want, s.ToMap()); diff != "" {
		t.Errorf("ToMap mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionOptionsOrder(t *testing.T) {
	s := NewSection("a")
	s.Set("b", "1")
	s.AddComment("# c\n")
	s.Set("a", "2")
	want := []string{"b", "a"}
	if diff := cmp.Diff(want, s.Options()); diff != "" {
		t.Errorf("Options mismatch (-want +got):\n%s", diff)
	}
}
