package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyContent     = errors.New("markdown content cannot be empty")
	ErrHTMLConversion   = errors.New("HTML conversion failed")
	ErrInvalidCodeStyle = errors.New("invalid code highlight style")
)
