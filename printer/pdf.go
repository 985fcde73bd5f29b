package printer

import (
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/lvillar/screenreport/pageops"
	"github.com/lvillar/screenreport/textdoc"
)

// Inch is one inch in points, the unit used by PDFTarget.
const Inch = 72.0

// lineSpacing is the baseline distance as a multiple of the font size.
const lineSpacing = 1.2

// Margins are page margins in points.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// PageSetup configures the paper and document information of a PDFTarget.
type PageSetup struct {
	Size         string // A3, A4, A5, Letter, Legal
	Margins      Margins
	Title        string
	Author       string
	Subject      string
	Creator      string
	Producer     string
	CreationDate time.Time
}

// DefaultPageSetup is A4 with 0.2in side and 0.1in top/bottom margins.
func DefaultPageSetup() PageSetup {
	return PageSetup{
		Size:    "A4",
		Margins: Margins{Left: 0.2 * Inch, Top: 0.1 * Inch, Right: 0.2 * Inch, Bottom: 0.1 * Inch},
	}
}

// PDFOption configures a PDFTarget.
type PDFOption func(*PDFTarget)

// WithDecorations adds per-page decorations.
func WithDecorations(d ...pageops.Decoration) PDFOption {
	return func(t *PDFTarget) {
		t.decorations = append(t.decorations, d...)
	}
}

// PDFTarget is a Target that renders to a PDF document.
type PDFTarget struct {
	pdf         *fpdf.Fpdf
	tr          func(string) string
	setup       PageSetup
	decorations []pageops.Decoration
	pages       int
}

// NewPDFTarget creates an empty PDF with the given page setup. Sizes and
// coordinates are in points.
func NewPDFTarget(setup PageSetup, opts ...PDFOption) *PDFTarget {
	if setup.Size == "" {
		setup.Size = "A4"
	}
	pdf := fpdf.New("P", "pt", setup.Size, "")
	m := setup.Margins
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(false, m.Bottom)

	// Set metadata
	if setup.Title != "" {
		pdf.SetTitle(setup.Title, true)
	}
	if setup.Author != "" {
		pdf.SetAuthor(setup.Author, true)
	}
	if setup.Subject != "" {
		pdf.SetSubject(setup.Subject, true)
	}
	if setup.Creator != "" {
		pdf.SetCreator(setup.Creator, true)
	}
	if setup.Producer != "" {
		pdf.SetProducer(setup.Producer, true)
	}
	if !setup.CreationDate.IsZero() {
		pdf.SetCreationDate(setup.CreationDate)
	}

	t := &PDFTarget{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		setup: setup,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Setup returns the page setup the target was created with.
func (t *PDFTarget) Setup() PageSetup { return t.setup }

// Pages returns the number of pages begun so far.
func (t *PDFTarget) Pages() int { return t.pages }

// Fpdf exposes the underlying document.
func (t *PDFTarget) Fpdf() *fpdf.Fpdf { return t.pdf }

// PageRect implements Target.
func (t *PDFTarget) PageRect() textdoc.Rect {
	w, h := t.pdf.GetPageSize()
	l, top, r, b := t.pdf.GetMargins()
	return textdoc.Rect{X: l, Y: top, W: w - l - r, H: h - top - b}
}

// StringWidth implements textdoc.Measurer.
func (t *PDFTarget) StringWidth(f textdoc.Font, s string) float64 {
	t.setFont(f)
	return t.pdf.GetStringWidth(t.tr(s))
}

// LineHeight implements textdoc.Measurer.
func (t *PDFTarget) LineHeight(f textdoc.Font) float64 {
	return fontOrDefault(f).Size * lineSpacing
}

// BeginPage implements Target.
func (t *PDFTarget) BeginPage() error {
	t.pdf.AddPage()
	t.pages++
	return t.decorate(pageops.Background)
}

// EndPage implements Target.
func (t *PDFTarget) EndPage() error {
	return t.decorate(pageops.Overlay)
}

// BeginBody implements Target.
func (t *PDFTarget) BeginBody(clip textdoc.Rect, dx, dy float64) error {
	t.pdf.ClipRect(clip.X, clip.Y, clip.W, clip.H, false)
	t.pdf.TransformBegin()
	t.pdf.TransformTranslate(dx, dy)
	return t.pdf.Error()
}

// EndBody implements Target.
func (t *PDFTarget) EndBody() error {
	t.pdf.TransformEnd()
	t.pdf.ClipEnd()
	return t.pdf.Error()
}

// DrawBox implements Target.
func (t *PDFTarget) DrawBox(b textdoc.Box) error {
	r := b.Rect
	switch b.Kind {
	case textdoc.BoxText:
		t.setFont(b.Font)
		t.pdf.SetTextColor(b.Color.R, b.Color.G, b.Color.B)
		t.pdf.SetXY(r.X, r.Y)
		align := string(b.Align)
		if align == "" {
			align = string(textdoc.AlignLeft)
		}
		t.pdf.CellFormat(r.W, r.H, t.tr(b.Text), "", 0, align+"M", false, 0, "")
	case textdoc.BoxFill:
		t.pdf.SetFillColor(b.Color.R, b.Color.G, b.Color.B)
		t.pdf.Rect(r.X, r.Y, r.W, r.H, "F")
	case textdoc.BoxBorder:
		t.pdf.SetDrawColor(b.Color.R, b.Color.G, b.Color.B)
		t.pdf.SetLineWidth(lineWidthOrDefault(b.LineWidth))
		t.pdf.Rect(r.X, r.Y, r.W, r.H, "D")
	case textdoc.BoxRule:
		t.pdf.SetDrawColor(b.Color.R, b.Color.G, b.Color.B)
		t.pdf.SetLineWidth(lineWidthOrDefault(b.LineWidth))
		t.pdf.Line(r.X, r.Y, r.Right(), r.Y)
	}
	return t.pdf.Error()
}

// Output writes the finished PDF to w.
func (t *PDFTarget) Output(w io.Writer) error {
	return t.pdf.Output(w)
}

func (t *PDFTarget) decorate(layer pageops.Layer) error {
	w, h := t.pdf.GetPageSize()
	page := pageops.Page{Number: t.pages, Width: w, Height: h}
	for _, d := range t.decorations {
		if d.Layer() != layer {
			continue
		}
		if err := d.Decorate(t.pdf, page); err != nil {
			return err
		}
	}
	return t.pdf.Error()
}

func (t *PDFTarget) setFont(f textdoc.Font) {
	f = fontOrDefault(f)
	t.pdf.SetFont(f.Family, f.Style, f.Size)
}

func fontOrDefault(f textdoc.Font) textdoc.Font {
	if f.Family == "" {
		f.Family = textdoc.DefaultFont.Family
	}
	if f.Size <= 0 {
		f.Size = textdoc.DefaultFont.Size
	}
	return f
}

func lineWidthOrDefault(w float64) float64 {
	if w <= 0 {
		return 0.5
	}
	return w
}
