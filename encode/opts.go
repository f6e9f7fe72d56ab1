package encode

type EncodeOption func(*EncState)

// EncodeIndent sets the number of spaces per nesting level. The default
// is 2.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting nesting level.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
