package ir

import (
	"fmt"
	"strings"
)

// Document is the top-level container: an ordered list of sections,
// comments, and blank-line runs, one per parsed file or text buffer.
type Document struct {
	blocks []Block
	xform  func(string) string
}

func NewDocument() *Document {
	return &Document{}
}

// SetKeyTransform sets the case transform used for section and option
// lookup, strings.ToLower by default. Sections the document creates
// inherit it.
func (d *Document) SetKeyTransform(f func(string) string) { d.xform = f }

func (d *Document) keyOf(name string) string {
	if d.xform != nil {
		return d.xform(name)
	}
	return strings.ToLower(name)
}

// Blocks returns all top-level blocks in order, not just sections.
func (d *Document) Blocks() []Block { return d.blocks }

func (d *Document) Len() int { return len(d.blocks) }

func (d *Document) sectionIndex(name string) int {
	name = d.keyOf(name)
	for i, b := range d.blocks {
		if s, ok := b.(*Section); ok && d.keyOf(s.name) == name {
			return i
		}
	}
	return -1
}

// Section returns the named section, or nil. Lookup goes through the key
// transform; the stored name keeps its original case.
func (d *Document) Section(name string) *Section {
	if i := d.sectionIndex(name); i >= 0 {
		return d.blocks[i].(*Section)
	}
	return nil
}

func (d *Document) Has(name string) bool { return d.sectionIndex(name) >= 0 }

// SectionBlocks returns the section blocks in order.
func (d *Document) SectionBlocks() []*Section {
	var res []*Section
	for _, b := range d.blocks {
		if s, ok := b.(*Section); ok {
			res = append(res, s)
		}
	}
	return res
}

// Sections returns the section names in order, original case.
func (d *Document) Sections() []string {
	var res []string
	for _, s := range d.SectionBlocks() {
		res = append(res, s.name)
	}
	return res
}

// AddSection creates a fresh section at the end of the document.
func (d *Document) AddSection(name string) (*Section, error) {
	s := NewSection(name)
	if err := d.Append(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Append appends a pre-built section.
func (d *Document) Append(s *Section) error {
	if d.Has(s.name) {
		return fmt.Errorf("%w: %q", ErrDuplicateSection, s.name)
	}
	s.xform = d.xform
	d.blocks = append(d.blocks, s)
	return nil
}

// SetSection replaces the named section in place, keeping its position, or
// renames s to name and appends it.
func (d *Document) SetSection(name string, s *Section) error {
	if i := d.sectionIndex(name); i >= 0 {
		s.xform = d.xform
		d.blocks[i] = s
		return nil
	}
	s.SetName(name)
	return d.Append(s)
}

// RemoveSection splices the named section out, reporting whether it
// existed. No tombstone remains.
func (d *Document) RemoveSection(name string) bool {
	i := d.sectionIndex(name)
	if i < 0 {
		return false
	}
	d.blocks = append(d.blocks[:i], d.blocks[i+1:]...)
	return true
}

// AddComment extends the trailing top-level comment run, or starts one.
// Parser use.
func (d *Document) AddComment(line string) {
	if c, ok := d.lastBlock().(*Comment); ok {
		c.AddLine(line)
		return
	}
	c := &Comment{}
	c.AddLine(line)
	d.blocks = append(d.blocks, c)
}

// AddSpace extends the trailing top-level blank run, or starts one. Parser
// use.
func (d *Document) AddSpace(line string) {
	if sp, ok := d.lastBlock().(*Space); ok {
		sp.AddLine(line)
		return
	}
	sp := &Space{}
	sp.AddLine(line)
	d.blocks = append(d.blocks, sp)
}

func (d *Document) lastBlock() Block {
	if n := len(d.blocks); n > 0 {
		return d.blocks[n-1]
	}
	return nil
}

// ToMap returns the whole document as a section to options map.
func (d *Document) ToMap() map[string]map[string]string {
	res := make(map[string]map[string]string, len(d.blocks))
	for _, s := range d.SectionBlocks() {
		res[s.name] = s.ToMap()
	}
	return res
}
