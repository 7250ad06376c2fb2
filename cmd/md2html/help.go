package main

import (
	"fmt"
	"io"

	"github.com/alnah/go-md2html/internal/config"
)

// printUsage prints the one-line usage summary.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] <file.md>")
}

// printHelp prints the full help text.
func printHelp(w io.Writer) {
	printUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown document into a standalone HTML page on stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  <file.md>                 Source file (required unless --stdin)")
	fmt.Fprintln(w, "  -s, --stdin               Read from stdin instead of a file; a positional")
	fmt.Fprintln(w, "                            path given alongside --stdin is ignored")
	fmt.Fprintln(w, "  -H, --html                Treat input as raw HTML (no Markdown conversion;")
	fmt.Fprintln(w, "                            assumes a partial file with no body tag)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -t, --title <text>        Give the page a title")
	fmt.Fprintln(w, "  -c, --css <href>          Reference a stylesheet (inserted verbatim as href)")
	fmt.Fprintln(w, "      --embed-css <path>    Read a CSS file and inline it in a <style> block")
	fmt.Fprintln(w, "      --code-style <name>   Syntax highlight style for fenced code blocks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --config <path>       Config file (default search: "+config.Describe()+")")
	fmt.Fprintln(w, "  -v, --verbose             Show timing on stderr")
	fmt.Fprintln(w, "  -h, --help                Print this message")
}
