package md2html

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "basic heading",
			input: "# Hello World",
			wantContains: []string{
				"<h1",
				"Hello World",
				"</h1>",
			},
			wantNot: []string{
				"<!DOCTYPE html>",
				"<body>",
			},
		},
		{
			name:  "headings get IDs",
			input: "# First\n## Second",
			wantContains: []string{
				"<h1",
				"<h2",
				`id="`,
			},
		},
		{
			name:  "GFM table",
			input: "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{
				"<table>",
				"<thead>",
				"<tbody>",
				"<th>",
				"<td>",
			},
		},
		{
			name:  "GFM strikethrough",
			input: "~~deleted~~",
			wantContains: []string{
				"<del>",
				"deleted",
				"</del>",
			},
		},
		{
			name:  "GFM autolink",
			input: "Visit https://example.com for more",
			wantContains: []string{
				"<a href=\"https://example.com\"",
			},
		},
		{
			name:  "GFM task list",
			input: "- [x] Done\n- [ ] Todo",
			wantContains: []string{
				"<input",
				"checked",
				"type=\"checkbox\"",
			},
		},
		{
			name:  "footnote",
			input: "Text[^1]\n\n[^1]: Footnote content",
			wantContains: []string{
				"<sup",
				"footnote",
			},
		},
		{
			name:  "fenced code block is highlighted",
			input: "```go\nfunc main() {}\n```",
			wantContains: []string{
				"<pre",
				"func",
				"main",
			},
		},
		{
			name:  "inline code",
			input: "Use `fmt.Println` function",
			wantContains: []string{
				"<code>",
				"fmt.Println",
				"</code>",
			},
		},
		{
			name:  "bold and italic",
			input: "**bold** and *italic*",
			wantContains: []string{
				"<strong>",
				"bold",
				"<em>",
				"italic",
			},
		},
		{
			name:  "unordered list",
			input: "- Item 1\n- Item 2",
			wantContains: []string{
				"<ul>",
				"<li>",
				"Item 1",
				"Item 2",
			},
		},
		{
			name:  "horizontal rule",
			input: "---",
			wantContains: []string{
				"<hr",
			},
		},
		{
			name:  "unicode content",
			input: "# 日本語\n\nBonjour le monde",
			wantContains: []string{
				"日本語",
				"Bonjour le monde",
			},
		},
		{
			// Raw HTML inside Markdown is sanitized by Goldmark (no
			// WithUnsafe option). Pass-through mode exists for trusted HTML.
			name:  "raw HTML is sanitized",
			input: "<script>alert('xss')</script>",
			wantContains: []string{
				"<!-- raw HTML omitted -->",
			},
			wantNot: []string{
				"<script>",
			},
		},
	}

	converter, err := newGoldmarkConverter(DefaultCodeStyle)
	if err != nil {
		t.Fatalf("newGoldmarkConverter() unexpected error: %v", err)
	}
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := converter.ToFragment(ctx, tt.input)
			if err != nil {
				t.Fatalf("ToFragment() unexpected error: %v", err)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(result, want) {
					t.Errorf("ToFragment() result should contain %q\nGot:\n%s", want, result)
				}
			}

			for _, notWant := range tt.wantNot {
				if strings.Contains(result, notWant) {
					t.Errorf("ToFragment() result should NOT contain %q\nGot:\n%s", notWant, result)
				}
			}
		})
	}
}

func TestNewGoldmarkConverter_InvalidStyle(t *testing.T) {
	t.Parallel()

	_, err := newGoldmarkConverter("no-such-style")
	if !errors.Is(err, ErrInvalidCodeStyle) {
		t.Fatalf("newGoldmarkConverter() error = %v, want ErrInvalidCodeStyle", err)
	}
}

func TestGoldmarkConverter_ToFragment_ContextCancellation(t *testing.T) {
	t.Parallel()

	converter, err := newGoldmarkConverter(DefaultCodeStyle)
	if err != nil {
		t.Fatalf("newGoldmarkConverter() unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	if _, err := converter.ToFragment(ctx, "# Test"); !errors.Is(err, context.Canceled) {
		t.Fatalf("ToFragment() error = %v, want context.Canceled", err)
	}
}
