// Package parse parses INI-dialect text into ir document trees.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// with options
//	doc, err := parse.Parse(data,
//	    parse.WithSource("setup.cfg"),
//	    parse.AllowNoValue(true),
//	    parse.WithInlineCommentPrefixes(";"))
//
// The parser makes a single forward pass. Every physical line lands
// verbatim in the raw buffer of exactly one block, which is what lets the
// encoder reproduce untouched text byte for byte.
//
// # Related Packages
//
//   - github.com/signadot/ini-format/ini/ir - the document tree
//   - github.com/signadot/ini-format/ini/encode - tree back to text
package parse
