package clickatell

import "strings"

const lowerhex = "0123456789abcdef"

// QueryEscape encodes a value for use in a legacy API query string. Letters,
// digits and -_.~ pass through, space becomes + and every other byte is
// percent-encoded with lowercase hex. A string made of safe characters only
// is returned unchanged.
func QueryEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case querySafe(c):
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(lowerhex[c>>4])
			b.WriteByte(lowerhex[c&0xf])
		}
	}
	return b.String()
}

func querySafe(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		c == '-' || c == '_' || c == '.' || c == '~'
}
