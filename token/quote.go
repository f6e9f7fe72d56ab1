package token

import (
	"unicode"
	"unicode/utf8"
)

// NeedsQuote reports whether v cannot be written as a plain scalar and
// survive a parse round trip, because it is empty, carries significant
// leading or trailing blanks, opens like structure or a quoted or block
// scalar, or contains a comment or key separator.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if v[0] == ' ' || v[0] == '\t' || v[len(v)-1] == ' ' || v[len(v)-1] == '\t' {
		return true
	}
	switch v[0] {
	case '{', '[', '}', ']', ',', '#', '\'', '"', '|', '>', '&', '*', '%', '@':
		return true
	case '-':
		if len(v) == 1 || v[1] == ' ' || v[1] == '\t' {
			return true
		}
	}
	for i := 0; i < len(v); i++ {
		switch c := v[i]; {
		case c == '\n' || c == '\r' || c < 0x20:
			return true
		case c == '#' && i > 0 && (v[i-1] == ' ' || v[i-1] == '\t'):
			return true
		case c == ':' && (i+1 == len(v) || v[i+1] == ' ' || v[i+1] == '\t'):
			return true
		}
	}
	return false
}

// Quote renders v as a double quoted scalar on one line.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				d = append(d, '\\', 'u')
				d = appendHex4(d, uint16(r))
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

func appendHex4(d []byte, v uint16) []byte {
	const digits = "0123456789abcdef"
	return append(d,
		digits[v>>12&0xf], digits[v>>8&0xf], digits[v>>4&0xf], digits[v&0xf])
}
