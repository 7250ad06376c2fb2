package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// pageFlags holds the flags shaping the generated document.
type pageFlags struct {
	title    string
	css      string
	embedCSS string
	html     bool
}

// sourceFlags holds the flags selecting the input source.
type sourceFlags struct {
	stdin bool
}

// commonFlags holds the remaining flags.
type commonFlags struct {
	config    string
	codeStyle string
	verbose   bool
	help      bool
}

// cliFlags holds all flags for the tool.
type cliFlags struct {
	page   pageFlags
	source sourceFlags
	common commonFlags
}

// parseFlags parses command-line flags and returns positional args.
// Usage printing is handled by the caller, not by pflag.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{}

	fs.StringVarP(&f.page.title, "title", "t", "", "page title")
	fs.StringVarP(&f.page.css, "css", "c", "", "stylesheet href")
	fs.StringVar(&f.page.embedCSS, "embed-css", "", "CSS file to inline in a <style> block")
	fs.BoolVarP(&f.page.html, "html", "H", false, "treat input as raw HTML")

	fs.BoolVarP(&f.source.stdin, "stdin", "s", false, "read from stdin instead of a file")

	fs.StringVar(&f.common.config, "config", "", "config file path")
	fs.StringVar(&f.common.codeStyle, "code-style", "", "syntax highlight style for code blocks")
	fs.BoolVarP(&f.common.verbose, "verbose", "v", false, "show timing on stderr")
	fs.BoolVarP(&f.common.help, "help", "h", false, "print this message")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
