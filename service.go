package md2html

import (
	"context"
	"fmt"
	"strings"
)

// Service orchestrates the markdown-to-page pipeline.
type Service struct {
	cfg       serviceConfig
	converter htmlConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithCodeStyle).
func New(opts ...Option) (*Service, error) {
	cfg := serviceConfig{codeStyle: DefaultCodeStyle}
	for _, opt := range opts {
		opt(&cfg)
	}

	converter, err := newGoldmarkConverter(cfg.codeStyle)
	if err != nil {
		return nil, err
	}

	return &Service{cfg: cfg, converter: converter}, nil
}

// Generate produces the complete HTML document for the given input.
// The context is used for cancellation; no partial output is returned
// on error.
func (s *Service) Generate(ctx context.Context, in Input) (string, error) {
	if err := s.validateInput(in); err != nil {
		return "", err
	}

	fragment := in.Content
	if !in.RawHTML {
		frag, err := s.converter.ToFragment(ctx, in.Content)
		if err != nil {
			return "", fmt.Errorf("converting markdown: %w", err)
		}
		// Goldmark terminates the fragment with a newline; the skeleton
		// supplies its own so the body stays predictable.
		fragment = strings.TrimSuffix(frag, "\n")
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	return assembleDocument(in, fragment), nil
}

// validateInput checks that required fields are present.
// An empty raw-HTML body is legal; empty Markdown is not.
func (s *Service) validateInput(in Input) error {
	if !in.RawHTML && in.Content == "" {
		return ErrEmptyContent
	}
	return nil
}
