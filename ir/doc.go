// Package ir provides the document tree for INI-dialect configuration
// text.
//
// # Overview
//
// A parsed file is a [Document]: an ordered list of top-level blocks, each
// a [Section], a [Comment] run, or a [Space] run of blank lines. A Section
// in turn owns an ordered list of [Option], Comment, and Space blocks.
//
// Every block keeps the raw source lines it was parsed from, terminators
// included. A block whose fields were never mutated replays those lines
// verbatim on output; a mutated block, or one created programmatically
// with no original lines, reports Updated and is regenerated from its
// current field values. That split is what makes edits minimal: touching
// one option's value changes only that option's own lines in the output.
//
// # Ownership
//
// A Document exclusively owns its top-level blocks and a Section
// exclusively owns its children. Blocks hold no back-references; removal
// is an index splice performed by the owner, leaving no tombstone.
//
// # Case handling
//
// Section names and option keys are stored with their original case and
// looked up through a configurable transform, strings.ToLower by default,
// so doc.Section("Settings") and doc.Section("settings") resolve to the
// same block.
//
// # Thread safety
//
// The tree is a plain mutable structure with no internal locking. Callers
// must not mutate one Document from multiple goroutines.
//
// # Related Packages
//
//   - github.com/signadot/ini-format/ini/parse - parses text into a Document
//   - github.com/signadot/ini-format/ini/encode - serializes a Document
package ir
