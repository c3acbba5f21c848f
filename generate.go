package yaml2pdf

import (
	"bytes"
	"fmt"

	"github.com/alnah/go-yaml2pdf/internal/fileutil"
)

// Generate renders doc to PDF in memory using fpdf with opts.Page.
// Nothing is written to disk; callers persist the returned bytes once the
// whole tree has rendered.
func Generate(doc *Document, opts Options) ([]byte, *Result, error) {
	if doc == nil {
		return nil, nil, fmt.Errorf("%w: nil document", ErrSchema)
	}

	r, err := NewPDFRenderer(opts.Page)
	if err != nil {
		return nil, nil, err
	}
	r.SetDocumentInfo(doc.Metadata.Title, opts.now())

	res, err := Render(doc, r, opts)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := r.Output(&buf); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	// Output adds a page to an otherwise empty document.
	res.Pages = r.PageNo()

	return buf.Bytes(), res, nil
}

// OutputName returns the PDF file name for doc: name when given, the
// document title otherwise, made safe for use as a file name.
func OutputName(doc *Document, name string) string {
	base := name
	if base == "" && doc != nil {
		base = doc.Metadata.Title
	}
	return fileutil.SanitizeFileName(base) + ".pdf"
}
