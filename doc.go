// Package ini reads, edits, and rewrites INI-style configuration text
// while preserving every byte of formatting the caller does not touch:
// comments, blank lines, delimiters, multi-line values, line endings.
//
// # Usage
//
//	u := ini.New()
//	if err := u.ReadFile("setup.cfg"); err != nil {
//	    return err
//	}
//	opt, err := u.Get("metadata", "version")
//	if err != nil {
//	    return err
//	}
//	_ = opt.Value()
//	if err := u.Set("metadata", "version", "1.2.3"); err != nil {
//	    return err
//	}
//	if err := u.UpdateFile(); err != nil {
//	    return err
//	}
//
// Writing reproduces untouched text exactly; only the edited spans change.
//
// # Related Packages
//
//   - github.com/signadot/ini-format/ini/ir - the document tree
//   - github.com/signadot/ini-format/ini/parse - text to tree
//   - github.com/signadot/ini-format/ini/encode - tree to text
//   - github.com/signadot/ini-format/ini/libdiff - change reporting
package ini
