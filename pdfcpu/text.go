package pdfcpu

import (
	"strings"
	"unicode"
)

// streamText returns the text a content stream shows. Strings are
// collected until the operator that consumes them; text showing
// operators write them out and positioning operators separate lines.
func streamText(data []byte) string {
	var b strings.Builder
	var pending []string
	sep := func(s string) {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), s) {
			b.WriteString(s)
		}
	}

	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case c == '(':
			s, n := literalString(data[i:])
			pending = append(pending, s)
			i += n
		case c == '<' && i+1 < len(data) && data[i+1] != '<':
			s, n := hexString(data[i:])
			pending = append(pending, s)
			i += n
		case c == '%':
			for i < len(data) && data[i] != '\n' && data[i] != '\r' {
				i++
			}
		case isRegular(c) && !unicode.IsDigit(rune(c)) && c != '-' && c != '+' && c != '.' && c != '/':
			j := i
			for j < len(data) && isRegular(data[j]) {
				j++
			}
			switch string(data[i:j]) {
			case "Tj", "TJ":
				b.WriteString(strings.Join(pending, ""))
			case "'", `"`:
				sep("\n")
				b.WriteString(strings.Join(pending, ""))
			case "Td", "TD", "T*", "Tm", "ET":
				sep("\n")
			}
			pending = pending[:0]
			i = j
		default:
			i++
		}
	}
	return strings.TrimSpace(b.String())
}

func isRegular(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', 0, '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return false
	}
	return true
}

// literalString decodes a (...) string at the start of data and returns
// it with the number of bytes consumed.
func literalString(data []byte) (string, int) {
	var b strings.Builder
	depth := 0
	i := 0
	for ; i < len(data); i++ {
		c := data[i]
		switch {
		case c == '\\' && i+1 < len(data):
			i++
			switch e := data[i]; e {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'b', 'f':
			case '\r', '\n':
			default:
				if e >= '0' && e <= '7' {
					v := int(e - '0')
					for k := 0; k < 2 && i+1 < len(data) && data[i+1] >= '0' && data[i+1] <= '7'; k++ {
						i++
						v = v*8 + int(data[i]-'0')
					}
					b.WriteRune(rune(v & 0xff))
				} else {
					b.WriteByte(e)
				}
			}
		case c == '(':
			if depth > 0 {
				b.WriteByte(c)
			}
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return b.String(), i + 1
			}
			b.WriteByte(c)
		default:
			b.WriteRune(rune(c))
		}
	}
	return b.String(), i
}

// hexString decodes a <...> string at the start of data.
func hexString(data []byte) (string, int) {
	var digits []byte
	i := 1
	for ; i < len(data) && data[i] != '>'; i++ {
		if c := data[i]; strings.IndexByte("0123456789abcdefABCDEF", c) >= 0 {
			digits = append(digits, c)
		}
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	var b strings.Builder
	for k := 0; k < len(digits); k += 2 {
		b.WriteRune(rune(hexVal(digits[k])<<4 | hexVal(digits[k+1])))
	}
	return b.String(), i + 1
}

func hexVal(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	}
	return c - '0'
}
