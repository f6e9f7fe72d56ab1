package token

import (
	"strconv"
	"unicode/utf8"
)

// ScanSingle consumes a single quoted scalar starting at off, which must
// point at the opening quote, bounded to lineEnd. The only escape is a
// doubled quote. A missing closing quote is not an error: the content runs
// to lineEnd.
func ScanSingle(src []byte, off, lineEnd int) (string, int) {
	i := off + 1
	res := make([]byte, 0, lineEnd-i)
	for i < lineEnd {
		c := src[i]
		if c != '\'' {
			res = append(res, c)
			i++
			continue
		}
		if i+1 < lineEnd && src[i+1] == '\'' {
			res = append(res, '\'')
			i += 2
			continue
		}
		return string(res), i + 1
	}
	return string(res), lineEnd
}

// ScanDouble consumes a double quoted scalar starting at off, which must
// point at the opening quote, bounded to lineEnd, decoding the standard
// escapes. A missing closing quote is not an error: the content runs to
// lineEnd.
func ScanDouble(src []byte, off, lineEnd int) (string, int) {
	i := off + 1
	res := make([]byte, 0, lineEnd-i)
	for i < lineEnd {
		c := src[i]
		switch c {
		case '"':
			return string(res), i + 1
		case '\\':
			if i+1 >= lineEnd {
				res = append(res, c)
				i++
				continue
			}
			e := src[i+1]
			i += 2
			switch e {
			case 'n':
				res = append(res, '\n')
			case 't':
				res = append(res, '\t')
			case 'r':
				res = append(res, '\r')
			case 'b':
				res = append(res, '\b')
			case 'f':
				res = append(res, '\f')
			case '0':
				res = append(res, 0)
			case 'x':
				res, i = hexEscape(res, src, i, lineEnd, 2)
			case 'u':
				res, i = hexEscape(res, src, i, lineEnd, 4)
			case 'U':
				res, i = hexEscape(res, src, i, lineEnd, 8)
			default:
				// \\, \", \', \/ and anything unrecognized decode to the
				// escaped byte itself
				res = append(res, e)
			}
		default:
			res = append(res, c)
			i++
		}
	}
	return string(res), lineEnd
}

// hexEscape decodes an n-digit hex escape beginning at i. A malformed
// escape is kept verbatim minus the backslash, per the tolerance contract.
func hexEscape(res, src []byte, i, lineEnd, n int) ([]byte, int) {
	if i+n > lineEnd {
		return append(res, src[i-1]), i
	}
	u, err := strconv.ParseUint(string(src[i:i+n]), 16, 32)
	if err != nil {
		return append(res, src[i-1]), i
	}
	return utf8.AppendRune(res, rune(u)), i + n
}
