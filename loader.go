package yaml2pdf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alnah/go-yaml2pdf/internal/yamlutil"
)

// requiredKeys are the top-level keys every document must define.
var requiredKeys = []string{"metadata", "sections"}

// LoadDocument reads and validates the document at path.
//
// Errors wrap ErrNotFound when path does not exist or is a directory,
// ErrFormat when the content is empty or not a YAML mapping, and ErrSchema
// when required keys are absent or have the wrong shape.
func LoadDocument(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument decodes and validates a document from raw YAML.
func ParseDocument(data []byte) (*Document, error) {
	top, ok, err := yamlutil.Mapping(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: document is empty or not a mapping", ErrFormat)
	}

	for _, key := range requiredKeys {
		if top[key] == nil {
			return nil, fmt.Errorf("%w: no %s", ErrSchema, key)
		}
	}

	var doc Document
	if err := yamlutil.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}
