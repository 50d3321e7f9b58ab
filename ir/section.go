package ir

import "strings"

// Section is a named block owning an ordered list of child blocks:
// options, comments, and blank-line runs.
type Section struct {
	block

	name     string
	children []Block
	xform    func(string) string
}

// NewSection returns a fresh section. It has no original lines, so its
// header is regenerated on output.
func NewSection(name string) *Section {
	return &Section{name: name}
}

func (s *Section) Type() Type { return SectionType }

func (s *Section) Name() string { return s.name }

// SetName renames the section and dirties it.
func (s *Section) SetName(name string) {
	s.name = name
	s.updated = true
}

// SetKeyTransform sets the case transform used for option lookup,
// strings.ToLower by default.
func (s *Section) SetKeyTransform(f func(string) string) { s.xform = f }

func (s *Section) keyOf(k string) string {
	if s.xform != nil {
		return s.xform(k)
	}
	return strings.ToLower(k)
}

// Blocks returns all children in order, not just options.
func (s *Section) Blocks() []Block { return s.children }

func (s *Section) Len() int { return len(s.children) }

func (s *Section) optionIndex(key string) int {
	key = s.keyOf(key)
	for i, b := range s.children {
		if o, ok := b.(*Option); ok && s.keyOf(o.key) == key {
			return i
		}
	}
	return -1
}

// Option returns the named option, or nil. Lookup goes through the key
// transform; the stored key keeps its original case.
func (s *Section) Option(key string) *Option {
	if i := s.optionIndex(key); i >= 0 {
		return s.children[i].(*Option)
	}
	return nil
}

func (s *Section) Has(key string) bool { return s.optionIndex(key) >= 0 }

// Set assigns an option value, appending a fresh option when the key is
// absent.
func (s *Section) Set(key, value string) *Option {
	if o := s.Option(key); o != nil {
		o.SetValue(value)
		return o
	}
	o := NewOption(key, value)
	s.children = append(s.children, o)
	return o
}

// SetNoValue assigns a bare key with no value.
func (s *Section) SetNoValue(key string) *Option {
	if o := s.Option(key); o != nil {
		o.SetNoValue()
		return o
	}
	o := NewNoValueOption(key)
	s.children = append(s.children, o)
	return o
}

// Delete splices the named option out, reporting whether it existed.
func (s *Section) Delete(key string) bool {
	i := s.optionIndex(key)
	if i < 0 {
		return false
	}
	s.children = append(s.children[:i], s.children[i+1:]...)
	return true
}

// AddOption appends a parsed option. Parser use.
func (s *Section) AddOption(o *Option) {
	s.children = append(s.children, o)
}

// ReplaceOption swaps the child sharing o's key for o, reporting whether
// there was one. Parser use, for later-wins merging outside strict mode.
func (s *Section) ReplaceOption(o *Option) bool {
	i := s.optionIndex(o.key)
	if i < 0 {
		return false
	}
	s.children[i] = o
	return true
}

// AddComment extends the trailing comment run, or starts one. Parser use.
func (s *Section) AddComment(line string) {
	if c, ok := s.lastChild().(*Comment); ok {
		c.AddLine(line)
		return
	}
	c := &Comment{}
	c.AddLine(line)
	s.children = append(s.children, c)
}

// AddSpace extends the trailing blank run, or starts one. Parser use.
func (s *Section) AddSpace(line string) {
	if sp, ok := s.lastChild().(*Space); ok {
		sp.AddLine(line)
		return
	}
	sp := &Space{}
	sp.AddLine(line)
	s.children = append(s.children, sp)
}

func (s *Section) lastChild() Block {
	if n := len(s.children); n > 0 {
		return s.children[n-1]
	}
	return nil
}

// OptionBlocks returns the option children in order.
func (s *Section) OptionBlocks() []*Option {
	var res []*Option
	for _, b := range s.children {
		if o, ok := b.(*Option); ok {
			res = append(res, o)
		}
	}
	return res
}

// Options returns the option keys in order, original case.
func (s *Section) Options() []string {
	var res []string
	for _, o := range s.OptionBlocks() {
		res = append(res, o.key)
	}
	return res
}

// ToMap returns the section's options as a key to resolved-value map.
func (s *Section) ToMap() map[string]string {
	res := make(map[string]string, len(s.children))
	for _, o := range s.OptionBlocks() {
		res[o.key] = o.Value()
	}
	return res
}
