package token

import "regexp"

// SplitLines splits d into physical lines, each keeping its terminator
// bytes, so "a\nb\r\nc" yields ["a\n", "b\r\n", "c"]. A final line without
// a terminator is returned as-is. The concatenation of the result is
// exactly d.
func SplitLines(d []byte) []string {
	var lines []string
	start := 0
	for i := 0; i < len(d); i++ {
		if d[i] == '\n' {
			lines = append(lines, string(d[start:i+1]))
			start = i + 1
		}
	}
	if start < len(d) {
		lines = append(lines, string(d[start:]))
	}
	return lines
}

var nonSpaceRe = regexp.MustCompile(`\S`)

// Indent returns the index of the first non-whitespace byte of line, or 0
// when the line is all whitespace.
func Indent(line string) int {
	loc := nonSpaceRe.FindStringIndex(line)
	if loc == nil {
		return 0
	}
	return loc[0]
}
