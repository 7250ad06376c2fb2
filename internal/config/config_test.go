package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
page:
  title: "Release Notes"
  css: "style.css"
style:
  code: "monokai"
input:
  defaultFile: "README.md"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	if cfg.Page.Title != "Release Notes" {
		t.Errorf("Page.Title = %q, want %q", cfg.Page.Title, "Release Notes")
	}
	if cfg.Page.CSS != "style.css" {
		t.Errorf("Page.CSS = %q, want %q", cfg.Page.CSS, "style.css")
	}
	if cfg.Style.Code != "monokai" {
		t.Errorf("Style.Code = %q, want %q", cfg.Style.Code, "monokai")
	}
	if cfg.Input.DefaultFile != "README.md" {
		t.Errorf("Input.DefaultFile = %q, want %q", cfg.Input.DefaultFile, "README.md")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "empty path",
			setup:   func(t *testing.T) string { return "" },
			wantErr: ErrEmptyConfigName,
		},
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
			wantErr: ErrConfigNotFound,
		},
		{
			name: "malformed yaml",
			setup: func(t *testing.T) string {
				return writeConfig(t, "page: [unclosed")
			},
			wantErr: ErrConfigParse,
		},
		{
			name: "unknown field rejected",
			setup: func(t *testing.T) string {
				return writeConfig(t, "bogus: true\n")
			},
			wantErr: ErrConfigParse,
		},
		{
			name: "field too long",
			setup: func(t *testing.T) string {
				return writeConfig(t, "page:\n  title: \""+strings.Repeat("x", MaxTitleLength+1)+"\"\n")
			},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(tt.setup(t))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaultConfig_AbsentIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("LoadDefaultConfig() unexpected error: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadDefaultConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadDefaultConfig_FindsLocalFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := os.WriteFile("md2html.yaml", []byte("page:\n  title: Local\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("LoadDefaultConfig() unexpected error: %v", err)
	}
	if cfg.Page.Title != "Local" {
		t.Errorf("Page.Title = %q, want %q", cfg.Page.Title, "Local")
	}
}

func TestDefaultSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	paths := DefaultSearchPaths()
	if len(paths) == 0 || paths[0] != "md2html.yaml" {
		t.Fatalf("DefaultSearchPaths() = %v, want local md2html.yaml first", paths)
	}

	found := false
	for _, p := range paths {
		if strings.Contains(p, filepath.Join("md2html", "config.yaml")) {
			found = true
		}
	}
	if !found {
		t.Errorf("DefaultSearchPaths() = %v, should include user config path", paths)
	}
}
