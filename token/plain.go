package token

// CommentStart returns the offset within [start, end) at which a comment
// begins, or -1. A '#' opens a comment at the start of the scan or when
// preceded by a space or tab; a '#' glued to preceding content is scalar
// text (e.g. "Ken Griffey#24").
func CommentStart(src []byte, start, end int) int {
	for i := start; i < end; i++ {
		if src[i] != '#' {
			continue
		}
		if i == start || src[i-1] == ' ' || src[i-1] == '\t' {
			return i
		}
	}
	return -1
}

// KeyColon scans [start, end) for an unquoted, unescaped colon that
// terminates a mapping key. The colon must be followed by a space, a tab,
// or the end of the scan, which keeps scheme-like scalars (http://...) out
// of key position. Quoted regions are skipped and a comment ends the scan.
// The scan is bounded to the single line it is given. Returns the colon
// offset or -1.
func KeyColon(src []byte, start, end int) int {
	i := start
	for i < end {
		switch src[i] {
		case '"':
			i++
			for i < end {
				if src[i] == '\\' && i+1 < end {
					i += 2
					continue
				}
				if src[i] == '"' {
					i++
					break
				}
				i++
			}
		case '\'':
			i++
			for i < end {
				if src[i] == '\'' {
					if i+1 < end && src[i+1] == '\'' {
						i += 2
						continue
					}
					i++
					break
				}
				i++
			}
		case '#':
			if i == start || src[i-1] == ' ' || src[i-1] == '\t' {
				return -1
			}
			i++
		case ':':
			if i+1 == end || src[i+1] == ' ' || src[i+1] == '\t' {
				return i
			}
			i++
		default:
			i++
		}
	}
	return -1
}
