package token

import (
	"strings"
	"unicode"
)

// CommentStart returns the index in line where an inline comment opens, or
// -1. A prefix opens a comment only at line start or when the byte before
// it is whitespace. The scan can misread a prefix character embedded in a
// value, such as `key = a ; note` with `;` configured: the value is
// truncated at the `;`. Callers depend on that exact truncation.
func CommentStart(line string, prefixes []string) int {
	if len(prefixes) == 0 {
		return -1
	}
	const unset = int(^uint(0) >> 1)
	start := unset
	inline := make(map[string]int, len(prefixes))
	for _, p := range prefixes {
		inline[p] = -1
	}
	for start == unset && len(inline) > 0 {
		next := make(map[string]int, len(inline))
		for prefix, index := range inline {
			i := indexFrom(line, prefix, index+1)
			if i == -1 {
				continue
			}
			next[prefix] = i
			if i == 0 || unicode.IsSpace(rune(line[i-1])) {
				start = min(start, i)
			}
		}
		inline = next
	}
	if start == unset {
		return -1
	}
	return start
}

func indexFrom(s, sub string, from int) int {
	if from >= len(s) {
		return -1
	}
	if from < 0 {
		from = 0
	}
	i := strings.Index(s[from:], sub)
	if i == -1 {
		return -1
	}
	return from + i
}

// FullLineComment reports whether line, ignoring surrounding whitespace,
// opens with one of the full-line comment prefixes.
func FullLineComment(line string, prefixes []string) bool {
	t := strings.TrimSpace(line)
	for _, p := range prefixes {
		if strings.HasPrefix(t, p) {
			return true
		}
	}
	return false
}
