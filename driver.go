package yaml2pdf

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alnah/go-yaml2pdf/internal/dateutil"
)

// Heading sizes in points. Each nesting level is two points smaller than
// its parent until minHeadingSize is reached.
const (
	baseHeadingSize = 18.0
	minHeadingSize  = 10.0
)

// Body and page decoration typography.
const (
	headingLineHeight   = 10.0
	paragraphSize       = 11.0
	paragraphLineHeight = 5.0
	decorationSize      = 10.0
	footerCellWidth     = 20.0

	// lastLineHeight makes Ln reuse the height of the last drawn cell.
	lastLineHeight = -1.0
)

// Cover page geometry in millimeters.
const (
	coverBarX       = 33.0
	coverBarY       = 27.0
	coverBarWidth   = 6.0
	coverBarHeight  = 195.0
	coverTitleX     = 54.7
	coverTitleY     = 76.8
	coverTitleWidth = 125.0
	coverTitleLine  = 15.0
	coverTitleSize  = 30.0
)

var (
	headingColor    = Color{R: 47, G: 84, B: 150}
	paragraphColor  = Color{R: 0, G: 0, B: 0}
	decorationColor = Color{R: 100, G: 100, B: 100}
	coverAccent     = Color{R: 255, G: 175, B: 0}
)

// HeadingSize returns the heading font size for a nesting level (1 = top).
// It never increases with depth.
func HeadingSize(level int) float64 {
	if level < 1 {
		level = 1
	}
	size := baseHeadingSize - 2*float64(level)
	if size < minHeadingSize {
		return minHeadingSize
	}
	return size
}

// Options control a single render.
type Options struct {
	Cover bool // Draw a cover page before any section content
	Index bool // Index requested; recorded only, Result.Entries carries the data

	// DateFormat is used for the running header when the document
	// metadata has no date-format. Empty means dateutil.DefaultDateFormat.
	DateFormat string

	Page PageSetup       // Used by Generate; Render draws on whatever it is given
	Now  func() time.Time // nil means time.Now
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// Entry records where a section header was drawn.
type Entry struct {
	Path   SectionPath
	Level  int
	Header string
	Page   int
}

// Result is the side output of a render. The input Document is never
// modified; page numbers for headed sections are reported here instead.
type Result struct {
	Pages     int     // Pages in the document
	CoverPage bool    // Page 1 is a cover page
	Date      string  // Date shown in the running header
	Entries   []Entry // One per drawn header, in document order
}

// PageOf returns the page on which the header of the section at path
// was drawn. ok is false when that section has no header.
func (r *Result) PageOf(path SectionPath) (page int, ok bool) {
	key := path.String()
	for _, e := range r.Entries {
		if e.Path.String() == key {
			return e.Page, true
		}
	}
	return 0, false
}

// Render walks doc depth-first and emits draw calls to r.
//
// Top-level sections with renderable content start on a new page; nested
// sections flow on. Within a section the header comes first, then the
// paragraphs, then the children. Running header and footer callbacks are
// installed on r before the first page; both are skipped on the cover.
func Render(doc *Document, r Renderer, opts Options) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrSchema)
	}

	date, err := headerDate(doc.Metadata.DateFormat, opts)
	if err != nil {
		return nil, fmt.Errorf("resolving header date: %w", err)
	}

	d := &driver{
		r:     r,
		title: doc.Metadata.Title,
		date:  date,
		res:   &Result{Date: date, CoverPage: opts.Cover},
	}

	r.SetHeaderFunc(d.drawRunningHeader)
	r.SetFooterFunc(d.drawFooter)

	if opts.Cover {
		d.drawCover()
	}
	d.fillSections(doc.Sections, nil)

	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	d.res.Pages = r.PageNo()
	return d.res, nil
}

// headerDate formats now with the document pattern, falling back to the
// options pattern and then the default.
func headerDate(docFormat string, opts Options) (string, error) {
	pattern := docFormat
	if pattern == "" {
		pattern = opts.DateFormat
	}
	if pattern == "" {
		pattern = dateutil.DefaultDateFormat
	}
	return dateutil.Format(dateutil.ResolvePreset(pattern), opts.now())
}

// driver holds the state of one render.
type driver struct {
	r         Renderer
	title     string
	date      string
	coverPage int // page number of the cover, 0 when there is none
	res       *Result
}

func (d *driver) fillSections(sections []Section, parent SectionPath) {
	for i := range sections {
		d.fillSection(&sections[i], parent.Child(i+1))
	}
}

func (d *driver) fillSection(s *Section, path SectionPath) {
	level := path.Level()

	if level == 1 {
		if !s.Renderable() {
			return
		}
		d.r.AddPage()
	}

	if s.HasHeader() {
		d.drawHeading(s.Header, level)
		d.res.Entries = append(d.res.Entries, Entry{
			Path:   path,
			Level:  level,
			Header: s.Header,
			Page:   d.r.PageNo(),
		})
	}

	if s.HasText() {
		for _, p := range s.Text {
			d.drawParagraph(p)
		}
		d.r.Ln(lastLineHeight)
	}

	d.fillSections(s.Sections, path)
}

func (d *driver) drawHeading(text string, level int) {
	d.r.SetFont(FontBold, HeadingSize(level))
	d.r.SetTextColor(headingColor)
	d.r.MultiCell(d.effectiveWidth(), headingLineHeight, text, AlignLeft)
}

func (d *driver) drawParagraph(text string) {
	d.r.SetFont(FontRegular, paragraphSize)
	d.r.SetTextColor(paragraphColor)
	d.r.MultiCell(d.effectiveWidth(), paragraphLineHeight, text, AlignLeft)
}

func (d *driver) drawCover() {
	d.r.AddPage()
	d.coverPage = d.r.PageNo()

	d.r.SetFillColor(coverAccent)
	d.r.Rect(coverBarX, coverBarY, coverBarWidth, coverBarHeight)
	d.r.SetXY(coverTitleX, coverTitleY)
	d.r.SetFont(FontRegular, coverTitleSize)
	d.r.SetTextColor(paragraphColor)
	d.r.MultiCell(coverTitleWidth, coverTitleLine, d.title, AlignLeft)
}

// onCover reports whether the renderer is on the cover page.
func (d *driver) onCover() bool {
	return d.coverPage != 0 && d.r.PageNo() == d.coverPage
}

// drawRunningHeader puts the title on the left and the date on the right,
// halfway into the top margin.
func (d *driver) drawRunningHeader() {
	if d.onCover() {
		return
	}

	m := d.r.Margins()
	pageWidth, _ := d.r.PageSize()

	d.r.SetY(m.Top / 2)
	d.r.SetFont(FontItalic, decorationSize)
	d.r.SetTextColor(decorationColor)

	d.r.Cell(d.r.StringWidth(d.title), 0, d.title, AlignLeft)

	dateWidth := d.r.StringWidth(d.date)
	d.r.SetX(pageWidth - m.Right - dateWidth)
	d.r.Cell(dateWidth, 0, d.date, AlignRight)

	d.r.SetY(m.Top)
}

// drawFooter puts the page number halfway into the bottom margin.
func (d *driver) drawFooter() {
	if d.onCover() {
		return
	}

	m := d.r.Margins()
	_, pageHeight := d.r.PageSize()

	d.r.SetY(pageHeight - m.Bottom/2)
	d.r.SetFont(FontRegular, decorationSize)
	d.r.SetTextColor(decorationColor)
	d.r.Cell(footerCellWidth, 0, strconv.Itoa(d.r.PageNo()), AlignLeft)
}

// effectiveWidth is the page width between the side margins.
func (d *driver) effectiveWidth() float64 {
	w, _ := d.r.PageSize()
	m := d.r.Margins()
	return w - m.Left - m.Right
}
