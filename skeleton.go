package md2html

import (
	"html"
	"strings"
)

// Fixed skeleton pieces. Assembly order is doctype, head (charset, title,
// stylesheet link, inline style), body with the fragment verbatim.
const (
	docOpen  = "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n"
	headEnd  = "</head>\n<body>\n"
	docClose = "\n</body>\n</html>\n"
)

// assembleDocument wraps a body fragment in the HTML skeleton.
// The title is HTML-escaped; the stylesheet href is inserted verbatim;
// inline CSS is sanitized so it cannot close the <style> block.
// The fragment itself is never modified.
func assembleDocument(in Input, fragment string) string {
	var b strings.Builder

	b.WriteString(docOpen)

	if in.Title != "" {
		b.WriteString("<title>")
		b.WriteString(html.EscapeString(in.Title))
		b.WriteString("</title>\n")
	}

	if in.CSSHref != "" {
		b.WriteString(`<link rel="stylesheet" href="`)
		b.WriteString(in.CSSHref)
		b.WriteString("\">\n")
	}

	if in.CSS != "" {
		b.WriteString("<style>\n")
		b.WriteString(sanitizeCSS(in.CSS))
		b.WriteString("\n</style>\n")
	}

	b.WriteString(headEnd)
	b.WriteString(fragment)
	b.WriteString(docClose)

	return b.String()
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
// Prevents CSS injection by escaping </style> and similar closing sequences.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
