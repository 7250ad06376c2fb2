package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrBadOption     = errors.New("invalid option")
	ErrNoInput       = errors.New("no input file given and --stdin not set")
	ErrTooManyInputs = errors.New("only one file may be built at a time")
	ErrReadInput     = errors.New("failed to read input")
	ErrReadCSS       = errors.New("failed to read CSS file")
)

// run parses arguments, reads the source, and writes the generated page to stdout.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %v", ErrBadOption, err)
	}

	if flags.common.help {
		printHelp(env.Stdout)
		return nil
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	content, err := readSource(flags, positional, cfg, env)
	if err != nil {
		return err
	}

	inlineCSS, err := readEmbedCSS(cfg.Page.EmbedCSS)
	if err != nil {
		return err
	}

	svc, err := md2html.New(md2html.WithCodeStyle(cfg.Style.Code))
	if err != nil {
		return err
	}

	start := env.Now()
	page, err := svc.Generate(ctx, md2html.Input{
		Content: content,
		Title:   cfg.Page.Title,
		CSSHref: cfg.Page.CSS,
		CSS:     inlineCSS,
		RawHTML: flags.page.html,
	})
	if err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "generated %d bytes in %v\n", len(page), env.Now().Sub(start))
	}

	if _, err := io.WriteString(env.Stdout, page); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// loadConfig loads an explicit config file, or searches the default
// locations when none is given. A missing default config is not an error.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefaultConfig()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.DefaultSearchPaths()))
		}
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.page.title != "" {
		cfg.Page.Title = flags.page.title
	}
	if flags.page.css != "" {
		cfg.Page.CSS = flags.page.css
	}
	if flags.page.embedCSS != "" {
		cfg.Page.EmbedCSS = flags.page.embedCSS
	}
	if flags.common.codeStyle != "" {
		cfg.Style.Code = flags.common.codeStyle
	}
}

// readSource resolves and reads the body source.
// --stdin wins: a positional path given alongside it is ignored.
func readSource(flags *cliFlags, positional []string, cfg *config.Config, env *Environment) (string, error) {
	if flags.source.stdin {
		content, err := fileutil.ReadAll(env.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return content, nil
	}

	path, err := resolveInputPath(positional, cfg)
	if err != nil {
		return "", err
	}

	if !fileutil.FileExists(path) {
		return "", fmt.Errorf("%w: %q does not exist%s", ErrReadInput, path, hints.ForMissingFile())
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(content), nil
}

// resolveInputPath determines the source path from args or config.
func resolveInputPath(positional []string, cfg *config.Config) (string, error) {
	if len(positional) > 1 {
		return "", fmt.Errorf("%w: got %s", ErrTooManyInputs, strings.Join(positional, ", "))
	}
	if len(positional) == 1 {
		return positional[0], nil
	}
	if cfg.Input.DefaultFile != "" {
		return cfg.Input.DefaultFile, nil
	}
	return "", ErrNoInput
}

// readEmbedCSS reads the CSS file to inline, if one is configured.
func readEmbedCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	// Only local files can be inlined; URLs belong in --css.
	if fileutil.IsURL(path) {
		return "", fmt.Errorf("%w: %q is a URL%s", ErrReadCSS, path, hints.ForMissingCSS())
	}
	if !fileutil.FileExists(path) {
		return "", fmt.Errorf("%w: %q does not exist%s", ErrReadCSS, path, hints.ForMissingCSS())
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return strings.TrimSpace(string(content)), nil
}
