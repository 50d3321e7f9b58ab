// Package token provides line classification support for INI-dialect text.
//
// [SplitLines] cuts raw bytes into physical lines keeping every terminator
// byte, so parsed blocks can replay their source exactly. [CommentStart],
// [FullLineComment], [SectionHeader], and [OptionMatcher] classify one line
// at a time against a configured dialect.
package token
