package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-yaml2pdf/internal/config"
)

// envPrefix marks variables owned by yaml2pdf.
const envPrefix = "YAML2PDF_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // YAML2PDF_CONFIG: config file name or path
	OutputDir  string // YAML2PDF_OUTPUT_DIR: default output directory
	PageSize   string // YAML2PDF_PAGE_SIZE: a4, letter, legal
	DateFormat string // YAML2PDF_DATE_FORMAT: header date pattern
}

// knownEnvVars lists valid YAML2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"YAML2PDF_CONFIG":      true,
	"YAML2PDF_OUTPUT_DIR":  true,
	"YAML2PDF_PAGE_SIZE":   true,
	"YAML2PDF_DATE_FORMAT": true,
}

// environment is the merged view of the .env file and the process
// environment. Process variables win over .env values.
type environment map[string]string

// loadEnvironment reads deps.DotEnvPath (when set and present) and overlays
// the process environment. The process environment itself is not modified.
func loadEnvironment(deps *Dependencies, logger *slog.Logger) environment {
	env := environment{}

	if deps.DotEnvPath != "" {
		dot, err := godotenv.Read(deps.DotEnvPath)
		switch {
		case err == nil:
			for k, v := range dot {
				env[k] = v
			}
			logger.Debug("loaded dotenv file", "path", deps.DotEnvPath, "vars", len(dot))
		case errors.Is(err, fs.ErrNotExist):
		default:
			logger.Warn("ignoring unreadable dotenv file", "path", deps.DotEnvPath, "error", err)
		}
	}

	if deps.Environ != nil {
		for _, kv := range deps.Environ() {
			if name, value, ok := strings.Cut(kv, "="); ok {
				env[name] = value
			}
		}
	}

	return env
}

// loadEnvConfig extracts the recognized YAML2PDF_* values.
func loadEnvConfig(env environment) *envConfig {
	return &envConfig{
		ConfigPath: env["YAML2PDF_CONFIG"],
		OutputDir:  env["YAML2PDF_OUTPUT_DIR"],
		PageSize:   env["YAML2PDF_PAGE_SIZE"],
		DateFormat: env["YAML2PDF_DATE_FORMAT"],
	}
}

// warnUnknownEnvVars logs a warning for each unrecognized YAML2PDF_* variable.
// Helps catch typos like YAML2PDF_OUTPUTDIR.
func warnUnknownEnvVars(env environment, logger *slog.Logger) {
	var unknown []string
	for name := range env {
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)

	for _, name := range unknown {
		logger.Warn("unknown environment variable (typo?)", "name", name)
	}
}

// applyEnvConfig overrides config file values with environment values.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later in buildOptions and resolveOutputDir).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
	if env.DateFormat != "" {
		cfg.Document.DateFormat = env.DateFormat
	}
}
