// Package md2html builds standalone HTML pages from Markdown documents.
//
// # Quick Start
//
// Create a service and generate a page:
//
//	svc, err := md2html.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := svc.Generate(ctx, md2html.Input{
//	    Content: "# Hello\n\nWorld",
//	    Title:   "Hello",
//	    CSSHref: "style.css",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(page)
//
// The result is a complete HTML5 document: doctype, a head section with
// an optional <title> and stylesheet reference, and a body holding the
// converted content.
//
// # Pipeline
//
//  1. Markdown to HTML fragment via Goldmark (GFM, footnotes, syntax
//     highlighting), skipped when Input.RawHTML is set
//  2. Document assembly (title, stylesheet link, inline style block)
//
// # Pass-Through Mode
//
// With Input.RawHTML the content is placed in the body verbatim, byte
// for byte. Use this when the source is already an HTML fragment.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := md2html.New(
//	    md2html.WithCodeStyle("monokai"),
//	)
//
// Code styles are chroma style names; unknown names fail at construction
// with ErrInvalidCodeStyle.
package md2html
