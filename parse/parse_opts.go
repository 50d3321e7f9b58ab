package parse

type parseOpts struct {
	source          string
	delimiters      []string
	commentPrefixes []string
	inlinePrefixes  []string
	strict          bool
	allowNoValue    bool
	spaceAround     bool
	keyTransform    func(string) string
}

func defaultOpts() *parseOpts {
	return &parseOpts{
		delimiters:      []string{"=", ":"},
		commentPrefixes: []string{"#", ";"},
		strict:          true,
		spaceAround:     true,
	}
}

type ParseOption func(*parseOpts)

// WithSource names the input in error reports.
func WithSource(name string) ParseOption {
	return func(o *parseOpts) { o.source = name }
}

// WithDelimiters sets the key/value delimiter set, default "=", ":".
func WithDelimiters(delims ...string) ParseOption {
	return func(o *parseOpts) { o.delimiters = delims }
}

// WithCommentPrefixes sets the full-line comment prefixes, default "#", ";".
func WithCommentPrefixes(prefixes ...string) ParseOption {
	return func(o *parseOpts) { o.commentPrefixes = prefixes }
}

// WithInlineCommentPrefixes enables inline comments after whitespace,
// default none.
func WithInlineCommentPrefixes(prefixes ...string) ParseOption {
	return func(o *parseOpts) { o.inlinePrefixes = prefixes }
}

// Strict controls whether duplicate sections or options abort the parse,
// default true.
func Strict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// AllowNoValue permits options with a bare key and no delimiter, default
// false.
func AllowNoValue(v bool) ParseOption {
	return func(o *parseOpts) { o.allowNoValue = v }
}

// SpaceAroundDelimiters controls how regenerated option lines render the
// delimiter, default true.
func SpaceAroundDelimiters(v bool) ParseOption {
	return func(o *parseOpts) { o.spaceAround = v }
}

// WithKeyTransform sets the case transform for section and option lookup
// and duplicate detection, default strings.ToLower.
func WithKeyTransform(f func(string) string) ParseOption {
	return func(o *parseOpts) { o.keyTransform = f }
}
