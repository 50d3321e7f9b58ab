package ir

import (
	"regexp"
	"strings"
	"unicode"
)

// Option is a key/value block inside a section. The value may span
// multiple raw lines; Value joins them on demand, recomputing on each call
// rather than memoizing.
type Option struct {
	block

	key         string
	delim       string
	spaceAround bool
	noValue     bool

	// values holds per-line value fragments, index 0 from the assignment
	// line itself; value/set take over once a mutation replaces them.
	values []string
	value  string
	set    bool
}

// NewOption returns a fresh option carrying key and value. It has no
// original lines, so it serializes from its fields with the default `=`
// delimiter.
func NewOption(key, value string) *Option {
	o := &Option{key: key, delim: "=", spaceAround: true}
	o.SetValue(value)
	return o
}

// NewNoValueOption returns a fresh option carrying a bare key.
func NewNoValueOption(key string) *Option {
	o := &Option{key: key, delim: "=", spaceAround: true}
	o.SetNoValue()
	return o
}

// ParsedOption is the parser's constructor: key, delimiter, and first
// value fragment come from the assignment line, which is stored raw.
func ParsedOption(key, delim, value string, hasValue, spaceAround bool, line string) *Option {
	o := &Option{
		key:         key,
		delim:       delim,
		spaceAround: spaceAround,
		noValue:     !hasValue,
	}
	if hasValue {
		o.values = []string{value}
	}
	o.block.AddLine(line)
	return o
}

func (o *Option) Type() Type { return OptionType }

// AddLine appends a raw continuation line; its trimmed text joins the
// value fragments. Parser use.
func (o *Option) AddLine(line string) {
	o.block.AddLine(line)
	o.values = append(o.values, strings.TrimSpace(line))
}

func (o *Option) Key() string { return o.key }

// SetKey renames the option and dirties it.
func (o *Option) SetKey(key string) {
	o.key = key
	o.updated = true
}

func (o *Option) Delimiter() string { return o.delim }

// SpaceAround reports whether regenerated text puts spaces around the
// delimiter.
func (o *Option) SpaceAround() bool { return o.spaceAround }

// HasValue reports whether the option carries a value at all; a no-value
// option serializes as its bare key.
func (o *Option) HasValue() bool { return !o.noValue }

// Value resolves the value: multi-line fragments joined with "\n",
// dropping empty fragments and fragments that are themselves comments,
// right-trimmed. A no-value option resolves to "".
func (o *Option) Value() string {
	if o.noValue {
		return ""
	}
	if o.set {
		return o.value
	}
	return joinMultiline(o.values)
}

func joinMultiline(values []string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if c := strings.TrimLeftFunc(v, unicode.IsSpace); c != "" && (c[0] == ';' || c[0] == '#') {
			continue
		}
		parts = append(parts, v)
	}
	return strings.TrimRightFunc(strings.Join(parts, "\n"), unicode.IsSpace)
}

// SetValue replaces the value and dirties the option. Multi-line input is
// normalized: the first line is left-trimmed and every later line is
// re-indented to four spaces.
func (o *Option) SetValue(value string) {
	value = normalizeValue(value)
	o.value = value
	o.values = []string{value}
	o.set = true
	o.noValue = false
	o.updated = true
}

// SetValues sets a block-style multi-line value: a bare delimiter on the
// key line, then one fragment per line indented four spaces.
func (o *Option) SetValues(values ...string) {
	o.values = append([]string{""}, values...)
	o.value = strings.Join(o.values, "\n    ")
	o.set = true
	o.noValue = false
	o.updated = true
}

// SetNoValue drops the value, leaving a bare key.
func (o *Option) SetNoValue() {
	o.noValue = true
	o.value = ""
	o.values = nil
	o.set = false
	o.updated = true
}

var leadingSpaceRe = regexp.MustCompile(`^[ \t]*`)

func normalizeValue(value string) string {
	split := strings.Split(value, "\n")
	buf := make([]string, 0, len(split))
	buf = append(buf, strings.TrimLeftFunc(split[0], unicode.IsSpace))
	for _, ln := range split[1:] {
		buf = append(buf, leadingSpaceRe.ReplaceAllString(ln, "    "))
	}
	return strings.Join(buf, "\n")
}
