// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-yaml2pdf/internal/fileutil"
)

// yamlExtensions are tried when an input path without extension is missing.
var yamlExtensions = []string{".yaml", ".yml"}

// ForInputNotFound returns hints for a missing input document.
// When the path has no extension and a sibling with a YAML extension
// exists, that file is suggested.
func ForInputNotFound(path string) string {
	if filepath.Ext(path) == "" {
		for _, ext := range yamlExtensions {
			if fileutil.FileExists(path + ext) {
				return format("did you mean " + path + ext + "?")
			}
		}
	}
	return format("check the path; <FILE> must be an existing YAML document")
}

// ForFormat returns hints for unparseable or empty input.
func ForFormat() string {
	return format("the document must be a YAML mapping with \"metadata\" and \"sections\" keys")
}

// ForSchema returns hints for structurally invalid documents.
func ForSchema() string {
	return format("required: metadata.title (string) and sections (list of {header, text, sections})")
}

// ForDateFormat returns hints for invalid date patterns.
func ForDateFormat() string {
	return format("use strftime directives such as %d-%m-%Y, or a preset: iso, european, us, long")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/yaml2pdf/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), ".config/yaml2pdf") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check the output directory exists and is writable")
}

// ForUsage returns hints for command-line usage errors.
func ForUsage() string {
	return format("run 'yaml2pdf --help' for usage")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
