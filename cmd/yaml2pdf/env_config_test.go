package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-yaml2pdf/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ---------------------------------------------------------------------------
// TestLoadEnvironment - .env merged under the process environment
// ---------------------------------------------------------------------------

func TestLoadEnvironment(t *testing.T) {
	t.Parallel()

	dotenv := filepath.Join(t.TempDir(), ".env")
	content := "YAML2PDF_OUTPUT_DIR=dotenv-dir\nYAML2PDF_PAGE_SIZE=letter\nexport OTHER=\"quoted value\"\n"
	if err := os.WriteFile(dotenv, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	deps := &Dependencies{
		Environ:    func() []string { return []string{"YAML2PDF_OUTPUT_DIR=process-dir", "PATH=/bin", "MALFORMED"} },
		DotEnvPath: dotenv,
	}

	env := loadEnvironment(deps, discardLogger())

	want := map[string]string{
		"YAML2PDF_OUTPUT_DIR": "process-dir",
		"YAML2PDF_PAGE_SIZE":  "letter",
		"OTHER":               "quoted value",
		"PATH":                "/bin",
	}
	for k, v := range want {
		if env[k] != v {
			t.Errorf("env[%s] = %q, want %q", k, env[k], v)
		}
	}
	if _, ok := env["MALFORMED"]; ok {
		t.Error("entries without '=' should be skipped")
	}
}

func TestLoadEnvironment_MissingDotEnv(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	deps := &Dependencies{
		Environ:    func() []string { return nil },
		DotEnvPath: filepath.Join(t.TempDir(), ".env"),
	}

	env := loadEnvironment(deps, slog.New(slog.NewTextHandler(&logs, nil)))

	if len(env) != 0 {
		t.Errorf("env = %v, want empty", env)
	}
	if logs.Len() != 0 {
		t.Errorf("missing .env should be silent, got %q", logs.String())
	}
}

func TestLoadEnvironment_UnreadableDotEnv(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	deps := &Dependencies{DotEnvPath: t.TempDir()} // a directory

	loadEnvironment(deps, slog.New(slog.NewTextHandler(&logs, nil)))

	if !strings.Contains(logs.String(), "ignoring unreadable dotenv file") {
		t.Errorf("logs = %q, want warning", logs.String())
	}
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Recognized variables
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	env := environment{
		"YAML2PDF_CONFIG":      "work",
		"YAML2PDF_OUTPUT_DIR":  "out",
		"YAML2PDF_PAGE_SIZE":   "legal",
		"YAML2PDF_DATE_FORMAT": "iso",
		"HOME":                 "/home/x",
	}

	got := loadEnvConfig(env)
	want := envConfig{ConfigPath: "work", OutputDir: "out", PageSize: "legal", DateFormat: "iso"}
	if *got != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	env := environment{
		"YAML2PDF_OUTPUT_DIR": "out",
		"YAML2PDF_OUTPUTDIR":  "typo",
		"YAML2PDF_AUTHOR":     "x",
		"OTHER_VAR":           "y",
	}

	warnUnknownEnvVars(env, slog.New(slog.NewTextHandler(&logs, nil)))

	out := logs.String()
	if strings.Count(out, "level=WARN") != 2 {
		t.Errorf("logs = %q, want two warnings", out)
	}
	if !strings.Contains(out, "name=YAML2PDF_AUTHOR") || !strings.Contains(out, "name=YAML2PDF_OUTPUTDIR") {
		t.Errorf("logs = %q, want both unknown names", out)
	}
	if strings.Index(out, "YAML2PDF_AUTHOR") > strings.Index(out, "YAML2PDF_OUTPUTDIR") {
		t.Errorf("warnings should be sorted by name: %q", out)
	}
	if strings.Contains(out, "OTHER_VAR") || strings.Contains(out, "name=YAML2PDF_OUTPUT_DIR") {
		t.Errorf("logs = %q, known or foreign variables should not warn", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Environment overrides the config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  envConfig
		cfg  config.Config
		want config.Config
	}{
		{
			name: "empty env keeps config",
			cfg:  config.Config{Output: config.OutputConfig{DefaultDir: "cfg"}},
			want: config.Config{Output: config.OutputConfig{DefaultDir: "cfg"}},
		},
		{
			name: "env overrides config",
			env:  envConfig{OutputDir: "env", PageSize: "letter", DateFormat: "us"},
			cfg: config.Config{
				Output:   config.OutputConfig{DefaultDir: "cfg"},
				Page:     config.PageConfig{Size: "a4", Orientation: "landscape"},
				Document: config.DocumentConfig{DateFormat: "iso"},
			},
			want: config.Config{
				Output:   config.OutputConfig{DefaultDir: "env"},
				Page:     config.PageConfig{Size: "letter", Orientation: "landscape"},
				Document: config.DocumentConfig{DateFormat: "us"},
			},
		},
		{
			name: "env fills defaults",
			env:  envConfig{PageSize: "legal"},
			want: config.Config{Page: config.PageConfig{Size: "legal"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := tt.cfg
			applyEnvConfig(&tt.env, &cfg)
			if cfg != tt.want {
				t.Errorf("config = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}
