package ini

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/ini-format/ini/encode"
	"github.com/signadot/ini-format/ini/ir"
	"github.com/signadot/ini-format/ini/libdiff"
	"github.com/signadot/ini-format/ini/parse"
)

// Updater parses one configuration file into a mutable document tree and
// writes it back, reproducing untouched text byte for byte. It holds no
// locks; one goroutine mutates one Updater.
type Updater struct {
	parseOpts []parse.ParseOption
	xform     func(string) string

	doc      *ir.Document
	filename string
	original string
}

type UpdaterOption func(*Updater)

// Delimiters sets the key/value delimiter set, default "=", ":".
func Delimiters(delims ...string) UpdaterOption {
	return func(u *Updater) {
		u.parseOpts = append(u.parseOpts, parse.WithDelimiters(delims...))
	}
}

// CommentPrefixes sets the full-line comment prefixes, default "#", ";".
func CommentPrefixes(prefixes ...string) UpdaterOption {
	return func(u *Updater) {
		u.parseOpts = append(u.parseOpts, parse.WithCommentPrefixes(prefixes...))
	}
}

// InlineCommentPrefixes enables inline comments after whitespace, default
// none.
func InlineCommentPrefixes(prefixes ...string) UpdaterOption {
	return func(u *Updater) {
		u.parseOpts = append(u.parseOpts, parse.WithInlineCommentPrefixes(prefixes...))
	}
}

// Strict controls whether duplicate sections or options abort a read,
// default true.
func Strict(v bool) UpdaterOption {
	return func(u *Updater) {
		u.parseOpts = append(u.parseOpts, parse.Strict(v))
	}
}

// AllowNoValue permits options with a bare key and no delimiter, default
// false.
func AllowNoValue(v bool) UpdaterOption {
	return func(u *Updater) {
		u.parseOpts = append(u.parseOpts, parse.AllowNoValue(v))
	}
}

// SpaceAroundDelimiters controls how regenerated option lines render the
// delimiter, default true.
func SpaceAroundDelimiters(v bool) UpdaterOption {
	return func(u *Updater) {
		u.parseOpts = append(u.parseOpts, parse.SpaceAroundDelimiters(v))
	}
}

// KeyTransform sets the case transform used for section and option
// lookup, default strings.ToLower.
func KeyTransform(f func(string) string) UpdaterOption {
	return func(u *Updater) {
		u.xform = f
		u.parseOpts = append(u.parseOpts, parse.WithKeyTransform(f))
	}
}

// New returns an empty Updater; use a Read method to load content, or
// build a document from scratch with AddSection and Set.
func New(opts ...UpdaterOption) *Updater {
	u := &Updater{}
	for _, o := range opts {
		o(u)
	}
	u.doc = ir.NewDocument()
	if u.xform != nil {
		u.doc.SetKeyTransform(u.xform)
	}
	return u
}

// ReadFile parses the file at path, replacing any prior content, and
// remembers the path for UpdateFile.
func (u *Updater) ReadFile(path string) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := u.readBytes(d, path); err != nil {
		return err
	}
	u.filename = abs
	return nil
}

// Read parses r, replacing any prior content.
func (u *Updater) Read(r io.Reader) error {
	d, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return u.readBytes(d, "<reader>")
}

// ReadString parses s, replacing any prior content.
func (u *Updater) ReadString(s string) error {
	return u.readBytes([]byte(s), "<string>")
}

func (u *Updater) readBytes(d []byte, source string) error {
	doc, err := parse.Parse(d, u.options(parse.WithSource(source))...)
	if err != nil {
		return err
	}
	u.doc = doc
	u.original = string(d)
	return nil
}

func (u *Updater) options(extra ...parse.ParseOption) []parse.ParseOption {
	opts := make([]parse.ParseOption, 0, len(u.parseOpts)+len(extra))
	opts = append(opts, u.parseOpts...)
	return append(opts, extra...)
}

// Write serializes the current tree to w.
func (u *Updater) Write(w io.Writer) error {
	return encode.Encode(u.doc, w)
}

func (u *Updater) String() string {
	return encode.String(u.doc)
}

// UpdateFile rewrites the file last passed to ReadFile.
func (u *Updater) UpdateFile() error {
	if u.filename == "" {
		return ErrNoConfigFile
	}
	return os.WriteFile(u.filename, []byte(u.String()), 0o644)
}

// Filename returns the absolute path last read by ReadFile, or "".
func (u *Updater) Filename() string { return u.filename }

// Document exposes the underlying tree.
func (u *Updater) Document() *ir.Document { return u.doc }

// Section returns the named section.
func (u *Updater) Section(name string) (*ir.Section, error) {
	s := u.doc.Section(name)
	if s == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoSection, name)
	}
	return s, nil
}

func (u *Updater) HasSection(name string) bool { return u.doc.Has(name) }

// Sections returns the section names in order.
func (u *Updater) Sections() []string { return u.doc.Sections() }

// AddSection creates a fresh section at the end of the document.
func (u *Updater) AddSection(name string) (*ir.Section, error) {
	return u.doc.AddSection(name)
}

// RemoveSection reports whether a section was actually removed.
func (u *Updater) RemoveSection(name string) bool {
	return u.doc.RemoveSection(name)
}

// Get returns the option block holding section's option.
func (u *Updater) Get(section, option string) (*ir.Option, error) {
	s, err := u.Section(section)
	if err != nil {
		return nil, err
	}
	o := s.Option(option)
	if o == nil {
		return nil, fmt.Errorf("%w: %q in section %q", ErrNoOption, option, section)
	}
	return o, nil
}

// Set assigns an option value in an existing section, creating the option
// when absent.
func (u *Updater) Set(section, option, value string) error {
	s, err := u.Section(section)
	if err != nil {
		return err
	}
	s.Set(option, value)
	return nil
}

func (u *Updater) HasOption(section, option string) bool {
	s := u.doc.Section(section)
	return s != nil && s.Has(option)
}

// RemoveOption reports whether the option was actually removed.
func (u *Updater) RemoveOption(section, option string) (bool, error) {
	s, err := u.Section(section)
	if err != nil {
		return false, err
	}
	return s.Delete(option), nil
}

// Options returns the option keys of the named section.
func (u *Updater) Options(section string) ([]string, error) {
	s, err := u.Section(section)
	if err != nil {
		return nil, err
	}
	return s.Options(), nil
}

// SectionItem pairs a section name with its block.
type SectionItem struct {
	Name    string
	Section *ir.Section
}

// OptionItem pairs an option key with its block.
type OptionItem struct {
	Key    string
	Option *ir.Option
}

// Items lists the document's sections in order.
func (u *Updater) Items() []SectionItem {
	var res []SectionItem
	for _, s := range u.doc.SectionBlocks() {
		res = append(res, SectionItem{Name: s.Name(), Section: s})
	}
	return res
}

// SectionItems lists one section's options in order.
func (u *Updater) SectionItems(section string) ([]OptionItem, error) {
	s, err := u.Section(section)
	if err != nil {
		return nil, err
	}
	var res []OptionItem
	for _, o := range s.OptionBlocks() {
		res = append(res, OptionItem{Key: o.Key(), Option: o})
	}
	return res, nil
}

// ToMap returns the whole document as a section to options map.
func (u *Updater) ToMap() map[string]map[string]string { return u.doc.ToMap() }

// ValidateFormat re-parses the current serialization with the configured
// settings, a self-check that mutation has not produced an invalid
// document.
func (u *Updater) ValidateFormat(overrides ...parse.ParseOption) error {
	_, err := parse.Parse([]byte(u.String()), u.options(overrides...)...)
	return err
}

// Changes diffs the last-read text against the current serialization.
func (u *Updater) Changes() []libdiff.Change {
	return libdiff.Lines(u.original, u.String())
}

// Diff renders Changes for display.
func (u *Updater) Diff(opts ...libdiff.Option) string {
	return libdiff.Sprint(u.Changes(), opts...)
}
