package yaml2pdf

import (
	"fmt"
	"io"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// DefaultFontFamily is a core PDF font, so no font files are needed.
const DefaultFontFamily = "arial"

// MaxMargin bounds each margin in millimeters.
const MaxMargin = 100.0

// Align is a horizontal text alignment.
type Align string

// Alignment values.
const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// FontStyle selects a font weight or slant.
type FontStyle string

// Font style values.
const (
	FontRegular FontStyle = ""
	FontBold    FontStyle = "B"
	FontItalic  FontStyle = "I"
)

// Color is an RGB color with 0-255 components.
type Color struct {
	R, G, B int
}

// Renderer is a page-based layout engine. Coordinates and sizes are in
// millimeters, font sizes in points. Implementations keep a sticky error
// that Err reports; calls made after a failure are no-ops.
type Renderer interface {
	// AddPage starts a new page, invoking the footer callback for the
	// previous page (if any) and the header callback for the new one.
	AddPage()
	// PageNo returns the current 1-based page number, 0 before the first page.
	PageNo() int

	SetFont(style FontStyle, size float64)
	SetTextColor(c Color)
	SetFillColor(c Color)

	// MultiCell draws wrapped text at the cursor and moves the cursor below
	// it, breaking pages automatically when the text overflows.
	MultiCell(width, lineHeight float64, text string, align Align)
	// Cell draws a single line of text and moves the cursor to its right.
	Cell(width, height float64, text string, align Align)
	// Rect draws a filled rectangle at absolute coordinates.
	Rect(x, y, width, height float64)

	SetXY(x, y float64)
	SetX(x float64)
	// SetY moves the cursor vertically and resets x to the left margin.
	SetY(y float64)
	// Ln moves the cursor to the start of the next line; a negative height
	// reuses the height of the last drawn cell.
	Ln(height float64)

	StringWidth(s string) float64
	PageSize() (width, height float64)
	Margins() Margins

	SetHeaderFunc(fn func())
	SetFooterFunc(fn func())

	// Output finalizes the document and writes it to w.
	Output(w io.Writer) error
	Err() error
}

// Margins are page margins in millimeters.
type Margins struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// PageSetup configures the page geometry and base font of a PDF renderer.
// Zero fields take the defaults from DefaultPageSetup.
type PageSetup struct {
	Size        string // "a4", "letter", "legal"
	Orientation string // "portrait", "landscape"
	Margins     Margins
	FontFamily  string // "arial", "helvetica", "times", "courier"
}

// DefaultPageSetup returns A4 portrait with 30mm side margins and 25mm
// top and bottom margins.
func DefaultPageSetup() PageSetup {
	return PageSetup{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margins:     Margins{Left: 30, Right: 30, Top: 25, Bottom: 25},
		FontFamily:  DefaultFontFamily,
	}
}

// withDefaults fills zero fields from DefaultPageSetup and lowercases
// enumerated values.
func (p PageSetup) withDefaults() PageSetup {
	d := DefaultPageSetup()

	p.Size = strings.ToLower(p.Size)
	p.Orientation = strings.ToLower(p.Orientation)
	p.FontFamily = strings.ToLower(p.FontFamily)

	if p.Size == "" {
		p.Size = d.Size
	}
	if p.Orientation == "" {
		p.Orientation = d.Orientation
	}
	if p.FontFamily == "" {
		p.FontFamily = d.FontFamily
	}
	if p.Margins.Left == 0 {
		p.Margins.Left = d.Margins.Left
	}
	if p.Margins.Right == 0 {
		p.Margins.Right = d.Margins.Right
	}
	if p.Margins.Top == 0 {
		p.Margins.Top = d.Margins.Top
	}
	if p.Margins.Bottom == 0 {
		p.Margins.Bottom = d.Margins.Bottom
	}
	return p
}

// Validate checks a setup after defaults are applied.
func (p PageSetup) Validate() error {
	p = p.withDefaults()

	err := validation.ValidateStruct(&p,
		validation.Field(&p.Size, validation.In(PageSizeA4, PageSizeLetter, PageSizeLegal)),
		validation.Field(&p.Orientation, validation.In(OrientationPortrait, OrientationLandscape)),
		validation.Field(&p.FontFamily, validation.In("arial", "helvetica", "times", "courier")),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPageSetup, err)
	}

	m := p.Margins
	err = validation.ValidateStruct(&m,
		validation.Field(&m.Left, validation.Min(0.0), validation.Max(MaxMargin)),
		validation.Field(&m.Right, validation.Min(0.0), validation.Max(MaxMargin)),
		validation.Field(&m.Top, validation.Min(0.0), validation.Max(MaxMargin)),
		validation.Field(&m.Bottom, validation.Min(0.0), validation.Max(MaxMargin)),
	)
	if err != nil {
		return fmt.Errorf("%w: margins: %v", ErrInvalidPageSetup, err)
	}
	return nil
}
