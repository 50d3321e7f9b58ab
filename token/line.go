package token

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// sectRe is deliberately permissive: the header is everything up to the
// last ']' on the line, and trailing junk after it is ignored.
var sectRe = regexp.MustCompile(`^\[(.+)\]`)

// SectionHeader matches value, already comment-stripped and trimmed,
// against the `[name]` header form.
func SectionHeader(value string) (string, bool) {
	m := sectRe.FindStringSubmatch(value)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Option line templates, one requiring a delimited value and one where the
// whole value arm is optional.
const (
	optTmpl   = `^(?P<option>.*?)\s*(?P<vi>%s)\s*(?P<value>.*)$`
	optNVTmpl = `^(?P<option>.*?)\s*(?:(?P<vi>%s)\s*(?P<value>.*))?$`
)

// OptionMatcher classifies comment-stripped, trimmed lines as option
// assignments for one configured delimiter set.
type OptionMatcher struct {
	re           *regexp.Regexp
	allowNoValue bool
}

func NewOptionMatcher(delimiters []string, allowNoValue bool) *OptionMatcher {
	esc := make([]string, len(delimiters))
	for i, d := range delimiters {
		esc[i] = regexp.QuoteMeta(d)
	}
	tmpl := optTmpl
	if allowNoValue {
		tmpl = optNVTmpl
	}
	return &OptionMatcher{
		re:           regexp.MustCompile(fmt.Sprintf(tmpl, strings.Join(esc, "|"))),
		allowNoValue: allowNoValue,
	}
}

// Match splits value into key, delimiter, and the delimited value. The key
// keeps its original case, right-trimmed. hasValue is false only for a
// bare key under an allow-no-value matcher; a key with a delimiter and
// nothing after it has an empty value, not a missing one.
func (m *OptionMatcher) Match(value string) (key, delim, val string, hasValue, ok bool) {
	sm := m.re.FindStringSubmatch(value)
	if sm == nil {
		return "", "", "", false, false
	}
	key = strings.TrimRightFunc(sm[1], unicode.IsSpace)
	delim = sm[2]
	if delim == "" && m.allowNoValue {
		return key, "", "", false, true
	}
	val = strings.TrimSpace(sm[3])
	return key, delim, val, true, true
}
