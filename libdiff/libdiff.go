// Package libdiff reports line-level changes between two texts, used to
// show what an edit session will rewrite.
package libdiff

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return "Equal"
	}
}

// Change is one run of whole lines shared by, or differing between, two
// texts. Text keeps its line terminators.
type Change struct {
	Op   Op
	Text string
}

// Lines computes a line-level diff between from and to.
func Lines(from, to string) []Change {
	diffCfg := diffpatch.New()
	a, b, lineArray := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lineArray)
	res := make([]Change, 0, len(diffs))
	for i := range diffs {
		d := &diffs[i]
		c := Change{Text: d.Text}
		switch d.Type {
		case diffpatch.DiffInsert:
			c.Op = Insert
		case diffpatch.DiffDelete:
			c.Op = Delete
		}
		res = append(res, c)
	}
	return res
}

// Changed reports whether any change is an insert or delete.
func Changed(changes []Change) bool {
	for _, c := range changes {
		if c.Op != Equal {
			return true
		}
	}
	return false
}

type config struct {
	color bool
}

type Option func(*config)

// Color forces colorized output on or off. The default follows whether
// stdout is a terminal.
func Color(v bool) Option {
	return func(c *config) { c.color = v }
}

// Sprint renders changes with one gutter per line: "+ " for inserted
// lines, "- " for deleted ones, two spaces for context.
func Sprint(changes []Change, opts ...Option) string {
	cfg := &config{color: isTerminal(os.Stdout)}
	for _, o := range opts {
		o(cfg)
	}
	var b strings.Builder
	for _, c := range changes {
		gutter, paint := "  ", noColor
		switch c.Op {
		case Insert:
			gutter, paint = "+ ", color.GreenString
		case Delete:
			gutter, paint = "- ", color.RedString
		}
		if !cfg.color {
			paint = noColor
		}
		for _, ln := range splitLines(c.Text) {
			b.WriteString(paint("%s%s", gutter, ln))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}

func noColor(format string, a ...any) string {
	return fmt.Sprintf(format, a...)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
