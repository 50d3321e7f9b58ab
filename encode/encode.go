package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/ini-format/ini/ir"
)

// Encode writes doc to w: raw lines verbatim for untouched blocks,
// regenerated text for updated ones.
func Encode(doc *ir.Document, w io.Writer) error {
	var out bytes.Buffer
	for _, b := range doc.Blocks() {
		if s, ok := b.(*ir.Section); ok && len(s.Lines()) == 0 {
			// a freshly created section is separated from what precedes
			// it by exactly one blank line
			pad(&out)
		}
		encodeBlock(&out, b)
	}
	_, err := w.Write(out.Bytes())
	return err
}

// String renders doc to a string.
func String(doc *ir.Document) string {
	var out bytes.Buffer
	_ = Encode(doc, &out) // a buffer write cannot fail
	return out.String()
}

// BlockString renders one block, mainly for tests and debugging.
func BlockString(b ir.Block) string {
	var out bytes.Buffer
	encodeBlock(&out, b)
	return out.String()
}

func pad(out *bytes.Buffer) {
	if out.Len() == 0 {
		return
	}
	if !strings.HasSuffix(out.String(), "\n") {
		out.WriteByte('\n')
	}
	if !strings.HasSuffix(out.String(), "\n\n") {
		out.WriteByte('\n')
	}
}

func encodeBlock(out *bytes.Buffer, b ir.Block) {
	switch t := b.(type) {
	case *ir.Section:
		encodeSection(out, t)
	case *ir.Option:
		encodeOption(out, t)
	default:
		// comment and space runs replay verbatim
		writeLines(out, b.Lines())
	}
}

func encodeSection(out *bytes.Buffer, s *ir.Section) {
	if s.Updated() {
		out.WriteString("[" + s.Name() + "]\n")
	} else {
		writeLines(out, s.Lines())
	}
	for _, c := range s.Blocks() {
		encodeBlock(out, c)
	}
}

func encodeOption(out *bytes.Buffer, o *ir.Option) {
	if !o.Updated() {
		writeLines(out, o.Lines())
		return
	}
	if !o.HasValue() {
		out.WriteString(o.Key() + "\n")
		return
	}
	value := o.Value()
	delim := o.Delimiter()
	if o.SpaceAround() {
		// no space after the delimiter when the value opens a
		// block-style multi-line form
		suffix := " "
		if strings.HasPrefix(value, "\n") {
			suffix = ""
		}
		delim = " " + delim + suffix
	}
	out.WriteString(o.Key() + delim + value + "\n")
}

func writeLines(out *bytes.Buffer, lines []string) {
	for _, ln := range lines {
		out.WriteString(ln)
	}
}
