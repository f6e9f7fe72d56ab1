package parse

type parseOpts struct {
	allowDuplicateKeys bool
	maxDepth           int
}

type Option func(*parseOpts)

// AllowDuplicateKeys suppresses duplicate-key reporting. Structure is
// unaffected either way: duplicate properties are always retained.
func AllowDuplicateKeys() Option {
	return func(o *parseOpts) { o.allowDuplicateKeys = true }
}

// MaxDepth bounds structural recursion. Content nested beyond the bound
// degrades to a plain scalar instead of growing the call stack.
func MaxDepth(n int) Option {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}
