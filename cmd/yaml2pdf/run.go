package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	yaml2pdf "github.com/alnah/go-yaml2pdf"
	"github.com/alnah/go-yaml2pdf/internal/config"
	"github.com/alnah/go-yaml2pdf/internal/fileutil"
	"github.com/alnah/go-yaml2pdf/internal/hints"
)

// pdfFilePerm is the mode of generated PDFs; they are meant to be shared.
const pdfFilePerm = 0o644

// runMain runs the CLI and returns the process exit code.
// Errors are reported on deps.Stdout.
func runMain(args []string, deps *Dependencies) int {
	if err := run(args, deps); err != nil {
		reportError(deps.Stdout, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run executes one invocation. args includes the program name.
func run(args []string, deps *Dependencies) error {
	if len(args) > 0 {
		args = args[1:]
	}

	if wantsHelp(args) {
		printUsage(deps.Stdout)
		return nil
	}

	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(deps.Stdout, "yaml2pdf %s\n", Version)
		return nil
	}
	if flags.completion != "" {
		return GenerateCompletion(deps.Stdout, Shell(flags.completion))
	}

	inputPath, err := resolveInputPath(positional)
	if err != nil {
		return err
	}

	logger := newLogger(deps.Stderr, flags.quiet, flags.verbose)

	env := loadEnvironment(deps, logger)
	warnUnknownEnvVars(env, logger)
	envCfg := loadEnvConfig(env)

	cfg, err := loadConfig(flags.config, envCfg, logger)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	doc, err := yaml2pdf.LoadDocument(inputPath)
	if err != nil {
		if errors.Is(err, yaml2pdf.ErrNotFound) {
			return withHint(err, hints.ForInputNotFound(inputPath))
		}
		return err
	}
	logger.Debug("loaded document", "path", inputPath, "title", doc.Metadata.Title, "sections", len(doc.Sections))

	if flags.index {
		logger.Info("index requested; section pages are tracked but no index page is generated")
	}

	start := deps.Now()
	data, res, err := yaml2pdf.Generate(doc, buildOptions(flags, cfg, deps.Now))
	if err != nil {
		return err
	}

	outPath := filepath.Join(resolveOutputDir(flags.output, cfg), yaml2pdf.OutputName(doc, flags.name))
	if err := fileutil.WriteFileAtomic(outPath, data, pdfFilePerm); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePDF, outPath, err)
	}

	logger.Debug("wrote PDF",
		"path", outPath,
		"bytes", len(data),
		"pages", res.Pages,
		"headers", len(res.Entries),
		"elapsed", deps.Now().Sub(start).Round(time.Millisecond),
	)

	if !flags.quiet {
		fmt.Fprintf(deps.Stdout, "Created %s (%d pages)\n", outPath, res.Pages)
	}
	return nil
}

// newLogger returns a text logger on w: warnings only when quiet, debug
// when verbose, info otherwise.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolveInputPath requires exactly one positional argument.
func resolveInputPath(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", fmt.Errorf("%w: missing argument <FILE>", ErrUsage)
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: invalid argument: %s", ErrUsage, args[0])
	}
}

// loadConfig loads the config named by the flag, falling back to
// YAML2PDF_CONFIG. Without either, built-in defaults are used.
func loadConfig(flagConfig string, env *envConfig, logger *slog.Logger) (*config.Config, error) {
	name := flagConfig
	source := "flag"
	if name == "" {
		name, source = env.ConfigPath, "environment"
	}
	if name == "" {
		logger.Debug("no config file, using defaults")
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, withHint(err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, err
	}
	logger.Debug("loaded config", "name", name, "source", source)
	return cfg, nil
}

// resolveOutputDir picks the output directory: flag, then config
// (which already includes YAML2PDF_OUTPUT_DIR), then the working directory.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	if cfg.Output.DefaultDir != "" {
		return cfg.Output.DefaultDir
	}
	return "."
}

// buildOptions maps flags and config onto render options.
func buildOptions(flags *cliFlags, cfg *config.Config, now func() time.Time) yaml2pdf.Options {
	return yaml2pdf.Options{
		Cover:      flags.cover,
		Index:      flags.index,
		DateFormat: cfg.Document.DateFormat,
		Now:        now,
		Page: yaml2pdf.PageSetup{
			Size:        cfg.Page.Size,
			Orientation: cfg.Page.Orientation,
			FontFamily:  cfg.Style.FontFamily,
			Margins: yaml2pdf.Margins{
				Left:   cfg.Page.Margins.Left,
				Right:  cfg.Page.Margins.Right,
				Top:    cfg.Page.Margins.Top,
				Bottom: cfg.Page.Margins.Bottom,
			},
		},
	}
}
