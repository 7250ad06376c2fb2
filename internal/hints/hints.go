// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForMissingFile returns a hint for a source file that could not be found.
func ForMissingFile() string {
	return format("check the path, or use --stdin to read from standard input")
}

// ForMissingCSS returns a hint for an --embed-css file that could not be found.
func ForMissingCSS() string {
	return format("use --css to reference a stylesheet without reading it")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config at a user config path.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/md2html) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/md2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// format renders a single hint line.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
