package md2html

// Input contains generation parameters for a single page.
// It is built once per invocation and consumed once.
type Input struct {
	Content string // body source text: Markdown, or HTML when RawHTML is set
	Title   string // page title (empty = omit <title>)
	CSSHref string // stylesheet href, inserted verbatim (empty = omit <link>)
	CSS     string // inline CSS, emitted in a <style> block (optional)
	RawHTML bool   // pass-through mode: place Content in the body unchanged
}

// Option configures a Service.
type Option func(*serviceConfig)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	codeStyle string
}

// DefaultCodeStyle is the chroma style used for fenced code blocks when
// no other style is configured.
const DefaultCodeStyle = "github"

// WithCodeStyle sets the chroma style used for syntax highlighting.
// An empty name keeps the default. Unknown names make New fail with
// ErrInvalidCodeStyle.
func WithCodeStyle(name string) Option {
	return func(c *serviceConfig) {
		if name != "" {
			c.codeStyle = name
		}
	}
}
