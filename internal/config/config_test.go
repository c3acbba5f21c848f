package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-yaml2pdf/internal/dateutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.Page.Size != "" || cfg.Page.Orientation != "" {
		t.Errorf("Page = %+v, want zero", cfg.Page)
	}
	if cfg.Style.FontFamily != "" {
		t.Errorf("Style.FontFamily = %q, want empty", cfg.Style.FontFamily)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name: "lowercases enumerations",
			cfg: Config{
				Page:  PageConfig{Size: "A4", Orientation: "Landscape"},
				Style: StyleConfig{FontFamily: "Times"},
			},
			check: func(t *testing.T, c *Config) {
				if c.Page.Size != "a4" {
					t.Errorf("Page.Size = %q, want %q", c.Page.Size, "a4")
				}
				if c.Page.Orientation != "landscape" {
					t.Errorf("Page.Orientation = %q, want %q", c.Page.Orientation, "landscape")
				}
				if c.Style.FontFamily != "times" {
					t.Errorf("Style.FontFamily = %q, want %q", c.Style.FontFamily, "times")
				}
			},
		},
		{
			name: "all page sizes accepted",
			cfg:  Config{Page: PageConfig{Size: "legal"}},
		},
		{
			name:    "unknown page size",
			cfg:     Config{Page: PageConfig{Size: "a5"}},
			wantErr: true,
		},
		{
			name:    "unknown orientation",
			cfg:     Config{Page: PageConfig{Orientation: "diagonal"}},
			wantErr: true,
		},
		{
			name:    "unknown font family",
			cfg:     Config{Style: StyleConfig{FontFamily: "Comic Sans"}},
			wantErr: true,
		},
		{
			name: "margins within bounds",
			cfg:  Config{Page: PageConfig{Margins: MarginsConfig{Left: 20, Right: 20, Top: 15, Bottom: MaxMargin}}},
		},
		{
			name:    "negative margin",
			cfg:     Config{Page: PageConfig{Margins: MarginsConfig{Left: -1}}},
			wantErr: true,
		},
		{
			name:    "margin too large",
			cfg:     Config{Page: PageConfig{Margins: MarginsConfig{Top: MaxMargin + 1}}},
			wantErr: true,
		},
		{
			name: "valid date format",
			cfg:  Config{Document: DocumentConfig{DateFormat: "%Y/%m/%d"}},
		},
		{
			name: "date preset",
			cfg:  Config{Document: DocumentConfig{DateFormat: "long"}},
		},
		{
			name:    "invalid date format",
			cfg:     Config{Document: DocumentConfig{DateFormat: "%Q"}},
			wantErr: true,
		},
		{
			name:    "date format too long",
			cfg:     Config{Document: DocumentConfig{DateFormat: strings.Repeat("x", 51)}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := tt.cfg
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrConfigInvalid) {
					t.Fatalf("error = %v, want ErrConfigInvalid", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, &cfg)
			}
		})
	}
}

func TestConfigValidate_DateFormatCause(t *testing.T) {
	t.Parallel()

	cfg := Config{Document: DocumentConfig{DateFormat: "%Q"}}
	if err := cfg.Validate(); !errors.Is(err, dateutil.ErrInvalidDateFormat) {
		t.Errorf("Validate() error = %v, want ErrInvalidDateFormat", err)
	}

	cfg = Config{Page: PageConfig{Size: "a5"}}
	if err := cfg.Validate(); errors.Is(err, dateutil.ErrInvalidDateFormat) {
		t.Errorf("page error should not report a date format cause: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := `output:
  defaultDir: "/reports"
page:
  size: Letter
  orientation: landscape
  margins:
    left: 20
    right: 20
style:
  fontFamily: Helvetica
document:
  dateFormat: "%Y-%m-%d"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.DefaultDir != "/reports" {
			t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "/reports")
		}
		if cfg.Page.Size != "letter" {
			t.Errorf("Page.Size = %q, want %q", cfg.Page.Size, "letter")
		}
		if cfg.Page.Orientation != "landscape" {
			t.Errorf("Page.Orientation = %q, want %q", cfg.Page.Orientation, "landscape")
		}
		if cfg.Page.Margins.Left != 20 || cfg.Page.Margins.Right != 20 {
			t.Errorf("Page.Margins = %+v, want left/right 20", cfg.Page.Margins)
		}
		if cfg.Page.Margins.Top != 0 {
			t.Errorf("Page.Margins.Top = %v, want 0 (default)", cfg.Page.Margins.Top)
		}
		if cfg.Style.FontFamily != "helvetica" {
			t.Errorf("Style.FontFamily = %q, want %q", cfg.Style.FontFamily, "helvetica")
		}
		if cfg.Document.DateFormat != "%Y-%m-%d" {
			t.Errorf("Document.DateFormat = %q, want %q", cfg.Document.DateFormat, "%Y-%m-%d")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("page: [unclosed"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "typo.yaml")
		if err := os.WriteFile(configPath, []byte("pgae:\n  size: a4\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value returns ErrConfigInvalid", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(configPath, []byte("page:\n  size: tabloid\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigInvalid) {
			t.Errorf("error = %v, want ErrConfigInvalid", err)
		}
	})

	t.Run("name resolves in user config dir", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		t.Setenv("HOME", home)
		t.Chdir(t.TempDir())

		userDir, err := os.UserConfigDir()
		if err != nil {
			t.Skipf("no user config dir on this platform: %v", err)
		}
		cfgDir := filepath.Join(userDir, "yaml2pdf")
		if err := os.MkdirAll(cfgDir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(cfgDir, "work.yml"), []byte("page:\n  size: legal\n"), 0600); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig("work")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Page.Size != "legal" {
			t.Errorf("Page.Size = %q, want %q", cfg.Page.Size, "legal")
		}
	})

	t.Run("name prefers current directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		t.Setenv("HOME", home)
		cwd := t.TempDir()
		t.Chdir(cwd)

		if err := os.WriteFile(filepath.Join(cwd, "work.yaml"), []byte("page:\n  size: letter\n"), 0600); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig("work")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Page.Size != "letter" {
			t.Errorf("Page.Size = %q, want %q", cfg.Page.Size, "letter")
		}
	})

	t.Run("unknown name lists tried paths", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		t.Setenv("HOME", home)
		t.Chdir(t.TempDir())

		_, err := LoadConfig("missing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "missing.yaml") || !strings.Contains(err.Error(), "missing.yml") {
			t.Errorf("error = %q, want tried paths listed", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)

	paths := SearchPaths("work")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least local paths", paths)
	}
	if paths[0] != "work.yaml" || paths[1] != "work.yml" {
		t.Errorf("local paths = %v, want work.yaml then work.yml", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(filepath.ToSlash(p), "yaml2pdf/work.") {
			t.Errorf("user path %q should be under yaml2pdf/", p)
		}
	}
}
