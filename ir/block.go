package ir

import "strings"

// Block is one node of a parsed document: a section, an option, a comment
// run, or a blank-line run.
type Block interface {
	Type() Type
	// Lines returns the block's raw source lines, terminators included.
	Lines() []string
	// AddLine appends one raw source line. Parser use.
	AddLine(line string)
	// Updated reports whether the block must be regenerated from its
	// current field values instead of replayed from Lines: either a
	// mutation dirtied it, or it was created programmatically and has no
	// original lines.
	Updated() bool
}

type block struct {
	lines   []string
	updated bool
}

func (b *block) Lines() []string { return b.lines }

func (b *block) AddLine(line string) {
	b.lines = append(b.lines, line)
}

func (b *block) Updated() bool {
	return b.updated || len(b.lines) == 0
}

// Comment is a run of consecutive full-line comments, replayed verbatim.
type Comment struct {
	block
}

func (c *Comment) Type() Type { return CommentType }

// NewComment returns a one-line comment block. text gains the prefix and a
// trailing newline unless it already carries them.
func NewComment(text, prefix string) *Comment {
	if !strings.HasPrefix(text, prefix) {
		text = prefix + " " + text
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	c := &Comment{}
	c.AddLine(text)
	return c
}

// Space is a run of consecutive blank lines, replayed verbatim.
type Space struct {
	block
}

func (s *Space) Type() Type { return SpaceType }

// NewSpace returns a vertical space of n empty lines.
func NewSpace(n int) *Space {
	sp := &Space{}
	for i := 0; i < n; i++ {
		sp.AddLine("\n")
	}
	return sp
}
