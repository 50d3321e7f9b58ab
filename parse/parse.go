package parse

import (
	"io"
	"strings"

	"github.com/signadot/ini-format/ini/ir"
	"github.com/signadot/ini-format/ini/token"
)

// Parse parses INI-dialect text into a document tree.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := defaultOpts()
	for _, f := range opts {
		f(pOpts)
	}
	return newParser(pOpts).parse(token.SplitLines(d))
}

// ParseString parses from a string.
func ParseString(s string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader parses from r, reading it fully first.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Document, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

type parser struct {
	opts    *parseOpts
	matcher *token.OptionMatcher
	doc     *ir.Document
	errs    *Error
}

func newParser(opts *parseOpts) *parser {
	return &parser{
		opts:    opts,
		matcher: token.NewOptionMatcher(opts.delimiters, opts.allowNoValue),
	}
}

func (p *parser) parse(lines []string) (*ir.Document, error) {
	p.doc = ir.NewDocument()
	if p.opts.keyTransform != nil {
		p.doc.SetKeyTransform(p.opts.keyTransform)
	}
	st := parserState{}
	for i, line := range lines {
		var err error
		st, err = p.step(st, i+1, line)
		if err != nil {
			return nil, err
		}
	}
	if p.errs != nil {
		return nil, p.errs
	}
	return p.doc, nil
}

// step consumes one physical line and returns the successor state.
func (p *parser) step(st parserState, lineno int, line string) (parserState, error) {
	cut := len(line)
	isComment := false
	if i := token.CommentStart(line, p.opts.inlinePrefixes); i >= 0 {
		cut = i
		isComment = true
	}
	if token.FullLineComment(line, p.opts.commentPrefixes) {
		cut = 0
		isComment = true
		p.addComment(st, line)
	}
	value := strings.TrimSpace(line[:cut])
	if value == "" {
		// a blank remainder always ends any open multi-line value
		st.indent = maxIndent
		if !isComment {
			p.addSpace(st, line)
		}
		return st, nil
	}

	curIndent := token.Indent(line)
	switch {
	case st.option != nil && curIndent > st.indent:
		// continuation: the raw line joins the open option's value,
		// inline comments and all
		st.option.AddLine(line)
		return st, nil
	case st.option != nil && (line[0] == ';' || line[0] == '#'):
		// a comment lead the prefix set does not cover; recorded as a
		// value fragment and dropped again at join time
		st.option.AddLine(line)
		return st, nil
	}

	st.indent = curIndent
	if name, ok := token.SectionHeader(value); ok {
		return p.sectionLine(st, name, line, lineno)
	}
	if st.section == nil {
		return st, &HeaderError{Pos: p.pos(lineno), Text: line}
	}
	return p.optionLine(st, value, line, lineno)
}

func (p *parser) sectionLine(st parserState, name, line string, lineno int) (parserState, error) {
	if existing := p.doc.Section(name); existing != nil {
		if p.opts.strict {
			return st, &DuplicateSectionError{Section: name, Pos: p.pos(lineno)}
		}
		// duplicates permitted: reopen the earlier section so both
		// headers share one option namespace; the repeated header line
		// is absorbed
		st.section = existing
		st.option = nil
		return st, nil
	}
	sec := ir.NewSection(name)
	sec.AddLine(line)
	if err := p.doc.Append(sec); err != nil {
		return st, err
	}
	st.section = sec
	st.option = nil
	return st, nil
}

func (p *parser) optionLine(st parserState, value, line string, lineno int) (parserState, error) {
	key, delim, val, hasValue, ok := p.matcher.Match(value)
	if !ok {
		p.addError(lineno, line)
		return st, nil
	}
	if key == "" {
		// an assignment with no key is recorded as a parse error but
		// still materialized, matching keep-going error handling
		p.addError(lineno, line)
	}
	if st.section.Has(key) && p.opts.strict {
		return st, &DuplicateOptionError{Section: st.section.Name(), Option: key, Pos: p.pos(lineno)}
	}
	opt := ir.ParsedOption(key, delim, val, hasValue, p.opts.spaceAround, line)
	if !st.section.ReplaceOption(opt) {
		st.section.AddOption(opt)
	}
	st.option = opt
	return st, nil
}

func (p *parser) addComment(st parserState, line string) {
	if st.section != nil {
		st.section.AddComment(line)
		return
	}
	p.doc.AddComment(line)
}

func (p *parser) addSpace(st parserState, line string) {
	if st.section != nil {
		st.section.AddSpace(line)
		return
	}
	p.doc.AddSpace(line)
}

func (p *parser) addError(lineno int, line string) {
	if p.errs == nil {
		p.errs = &Error{Source: p.opts.source}
	}
	p.errs.Lines = append(p.errs.Lines, LineError{Line: lineno, Text: line})
}

func (p *parser) pos(lineno int) token.Pos {
	return token.Pos{Source: p.opts.source, Line: lineno}
}
