package parse

import "github.com/signadot/ini-format/ini/ir"

// parserState is the scan state threaded through the forward pass: the
// currently open section, the currently open option a continuation line
// would extend, and the indentation width established by that option's
// first line.
type parserState struct {
	section *ir.Section
	option  *ir.Option
	indent  int
}

// maxIndent closes the open option's value: no line can indent deeper.
const maxIndent = int(^uint(0) >> 1)
