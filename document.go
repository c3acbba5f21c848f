package yaml2pdf

import (
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-yaml2pdf/internal/dateutil"
	"github.com/alnah/go-yaml2pdf/internal/validutil"
)

// MaxTitleLength bounds metadata.title; it is drawn on one header line.
const MaxTitleLength = 200

// Document is a report description: metadata plus an ordered section tree.
type Document struct {
	Metadata Metadata  `yaml:"metadata" json:"metadata"`
	Sections []Section `yaml:"sections" json:"sections"`
}

// Metadata holds document-wide settings.
type Metadata struct {
	Title      string `yaml:"title" json:"title"`
	DateFormat string `yaml:"date-format,omitempty" json:"date-format,omitempty"` // strftime pattern or preset
}

// Section is a node of the content tree. All fields are optional; a section
// without any of them is legal and renders nothing.
type Section struct {
	Header   string    `yaml:"header,omitempty" json:"header,omitempty"`
	Text     []string  `yaml:"text,omitempty" json:"text,omitempty"`
	Sections []Section `yaml:"sections,omitempty" json:"sections,omitempty"`
}

// Validate checks the document metadata.
func (d *Document) Validate() error {
	if err := d.Metadata.Validate(); err != nil {
		return fmt.Errorf("%w: metadata: %w", ErrSchema, err)
	}
	return nil
}

// Validate validates the metadata fields. A bad date-format wraps
// dateutil.ErrInvalidDateFormat.
func (m *Metadata) Validate() error {
	return validutil.ValidateStruct(m,
		validation.Field(&m.Title, validation.Required, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&m.DateFormat, validation.By(validDateFormat)),
	)
}

func validDateFormat(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	return dateutil.Validate(dateutil.ResolvePreset(s))
}

// HasHeader reports whether the section defines a non-empty header.
func (s *Section) HasHeader() bool {
	return s.Header != ""
}

// HasText reports whether the section carries at least one paragraph.
func (s *Section) HasText() bool {
	return len(s.Text) > 0
}

// Renderable reports whether the section or any descendant draws something.
func (s *Section) Renderable() bool {
	if s.HasHeader() || s.HasText() {
		return true
	}
	for i := range s.Sections {
		if s.Sections[i].Renderable() {
			return true
		}
	}
	return false
}

// SectionPath locates a section by its 1-based sibling index at each level,
// e.g. [2 1 3] is the third child of the first child of the second
// top-level section.
type SectionPath []int

// String returns the hierarchical section number, e.g. "2.1.3".
func (p SectionPath) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Level is the depth of the section, 1 for top-level sections.
func (p SectionPath) Level() int {
	return len(p)
}

// Child returns a new path for the n-th (1-based) child. p is not modified.
func (p SectionPath) Child(n int) SectionPath {
	c := make(SectionPath, len(p)+1)
	copy(c, p)
	c[len(p)] = n
	return c
}
