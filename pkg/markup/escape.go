package markup

import "strings"

// EscapeText escapes text for safe inclusion in HTML content.
func EscapeText(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 8)

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// EscapeAttr escapes text for safe inclusion in a quoted attribute value.
func EscapeAttr(s string) string {
	if !strings.ContainsAny(s, "&<>\"'") {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 8)

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
