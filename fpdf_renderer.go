package yaml2pdf

import (
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// creator is recorded in the PDF metadata.
const creator = "yaml2pdf"

// Compile-time interface implementation check.
var _ Renderer = (*PDFRenderer)(nil)

// PDFRenderer implements Renderer on top of fpdf with core fonts.
// Text is translated to cp1252, which covers Western European scripts.
type PDFRenderer struct {
	pdf       *fpdf.Fpdf
	family    string
	translate func(string) string
}

// NewPDFRenderer creates a renderer for the given page setup. Zero fields
// of setup take their defaults.
func NewPDFRenderer(setup PageSetup) (*PDFRenderer, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	setup = setup.withDefaults()

	pdf := fpdf.New(setup.Orientation, "mm", setup.Size, "")
	pdf.SetMargins(setup.Margins.Left, setup.Margins.Top, setup.Margins.Right)
	pdf.SetAutoPageBreak(true, setup.Margins.Bottom)
	pdf.SetCreator(creator, true)

	return &PDFRenderer{
		pdf:       pdf,
		family:    setup.FontFamily,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}, nil
}

// SetDocumentInfo records the title and creation time in the PDF metadata.
func (p *PDFRenderer) SetDocumentInfo(title string, created time.Time) {
	p.pdf.SetTitle(title, true)
	p.pdf.SetCreationDate(created)
	p.pdf.SetModificationDate(created)
}

// AddPage starts a new page, running the footer and header callbacks.
func (p *PDFRenderer) AddPage() { p.pdf.AddPage() }

// PageNo returns the current 1-based page number.
func (p *PDFRenderer) PageNo() int { return p.pdf.PageNo() }

// SetFont selects the configured font family in the given style and size.
func (p *PDFRenderer) SetFont(style FontStyle, size float64) {
	p.pdf.SetFont(p.family, string(style), size)
}

// SetTextColor sets the color for subsequent text.
func (p *PDFRenderer) SetTextColor(c Color) { p.pdf.SetTextColor(c.R, c.G, c.B) }

// SetFillColor sets the color used by Rect.
func (p *PDFRenderer) SetFillColor(c Color) { p.pdf.SetFillColor(c.R, c.G, c.B) }

// MultiCell draws text wrapped to width, breaking pages as needed.
func (p *PDFRenderer) MultiCell(width, lineHeight float64, text string, align Align) {
	p.pdf.MultiCell(width, lineHeight, p.translate(text), "", string(align), false)
}

// Cell draws text on a single line without wrapping.
func (p *PDFRenderer) Cell(width, height float64, text string, align Align) {
	p.pdf.CellFormat(width, height, p.translate(text), "", 0, string(align), false, 0, "")
}

// Rect draws a filled rectangle.
func (p *PDFRenderer) Rect(x, y, width, height float64) {
	p.pdf.Rect(x, y, width, height, "F")
}

// SetXY moves the cursor, in millimeters from the top-left corner.
func (p *PDFRenderer) SetXY(x, y float64) { p.pdf.SetXY(x, y) }

// SetX moves the cursor horizontally.
func (p *PDFRenderer) SetX(x float64) { p.pdf.SetX(x) }

// SetY moves the cursor vertically and back to the left margin.
func (p *PDFRenderer) SetY(y float64) { p.pdf.SetY(y) }

// Ln moves to the start of the next line, height millimeters below.
func (p *PDFRenderer) Ln(height float64) { p.pdf.Ln(height) }

// StringWidth returns the width of s in the current font, in millimeters.
func (p *PDFRenderer) StringWidth(s string) float64 {
	return p.pdf.GetStringWidth(p.translate(s))
}

// PageSize returns the page dimensions in millimeters.
func (p *PDFRenderer) PageSize() (width, height float64) {
	return p.pdf.GetPageSize()
}

// Margins returns the page margins in millimeters.
func (p *PDFRenderer) Margins() Margins {
	left, top, right, bottom := p.pdf.GetMargins()
	return Margins{Left: left, Right: right, Top: top, Bottom: bottom}
}

// SetHeaderFunc registers fn to run at the top of every page.
func (p *PDFRenderer) SetHeaderFunc(fn func()) { p.pdf.SetHeaderFunc(fn) }

// SetFooterFunc registers fn to run at the bottom of every page.
func (p *PDFRenderer) SetFooterFunc(fn func()) { p.pdf.SetFooterFunc(fn) }

// Output closes the document and writes it to w. The renderer cannot be
// used afterwards.
func (p *PDFRenderer) Output(w io.Writer) error {
	return p.pdf.Output(w)
}

// Err returns the first error recorded by fpdf, if any.
func (p *PDFRenderer) Err() error { return p.pdf.Error() }
