package token

import "fmt"

// Pos locates a physical line in a parsed source.
type Pos struct {
	Source string
	Line   int
}

func (p Pos) String() string {
	if p.Source == "" {
		return fmt.Sprintf("line %d", p.Line)
	}
	return fmt.Sprintf("%s:%d", p.Source, p.Line)
}
