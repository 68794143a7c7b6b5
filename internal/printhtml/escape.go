package printhtml

import "strings"

// Escape replaces & < > " ' with their entity forms in a single pass, so an
// ampersand produced by one replacement is never escaped again. Applying it
// twice double-escapes; callers escape raw text exactly once.
func Escape(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
