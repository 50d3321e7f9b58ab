package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/ini-format/ini/ir"
	"github.com/signadot/ini-format/ini/token"
)

var (
	ErrParse                = errors.New("parse error")
	ErrMissingSectionHeader = errors.New("missing section header")
)

// HeaderError reports an option line read before any section header.
type HeaderError struct {
	Pos  token.Pos
	Text string
}

func (e *HeaderError) Unwrap() error { return ErrMissingSectionHeader }

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrMissingSectionHeader, e.Pos, strconv.Quote(e.Text))
}

// DuplicateSectionError reports a section name seen twice under strict
// parsing.
type DuplicateSectionError struct {
	Section string
	Pos     token.Pos
}

func (e *DuplicateSectionError) Unwrap() error { return ir.ErrDuplicateSection }

func (e *DuplicateSectionError) Error() string {
	return fmt.Sprintf("%s: %s: [%s]", ir.ErrDuplicateSection, e.Pos, e.Section)
}

// DuplicateOptionError reports an option key seen twice in one section
// under strict parsing.
type DuplicateOptionError struct {
	Section, Option string
	Pos             token.Pos
}

func (e *DuplicateOptionError) Unwrap() error { return ir.ErrDuplicateOption }

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("%s: %s: %q in section [%s]", ir.ErrDuplicateOption, e.Pos, e.Option, e.Section)
}

// LineError is one line the parser could not classify.
type LineError struct {
	Line int
	Text string
}

// Error aggregates every unclassifiable line of one pass, raised once the
// pass completes so a caller sees the whole file's problems in one report.
type Error struct {
	Source string
	Lines  []LineError
}

func (e *Error) Unwrap() error { return ErrParse }

func (e *Error) Error() string {
	src := e.Source
	if src == "" {
		src = "<string>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "source contains parsing errors: %s", src)
	for _, le := range e.Lines {
		fmt.Fprintf(&b, "\n\t[line %d]: %s", le.Line, strconv.Quote(le.Text))
	}
	return b.String()
}
