package parser

import "strings"

// IsBuiltInDateFormat reports whether a built-in number format id renders a
// date or a time. Ids 27-36 and 50-58 are the East Asian date formats.
func IsBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// IsDateFormatCode reports whether a custom number format code renders a date
// or a time. Quoted literals, escaped characters and bracketed sections
// (colors, locales, elapsed-time markers) are ignored; only the first section
// of a multi-section code is considered.
func IsDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote := false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case ch == '"':
			inQuote = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		case ch == '[':
			end := strings.IndexByte(code[i:], ']')
			if end < 0 {
				i = len(code)
				continue
			}
			// [h], [mm], [ss] are elapsed-time tokens
			inner := strings.ToLower(code[i+1 : i+end])
			if inner != "" && strings.Trim(inner, "hms") == "" {
				b.WriteByte('h')
			}
			i += end
		case ch == ';':
			i = len(code)
		default:
			b.WriteByte(ch)
		}
	}

	s := strings.ToLower(b.String())
	if strings.ContainsAny(s, "yd") {
		return true
	}
	// a lone "m" token is ambiguous between month and minute
	return strings.ContainsAny(s, "hs")
}
