// Package printer prints a textdoc.Document onto a paginated target,
// reserving a header and footer band on every page.
//
// Each band has three slots (left, center, right) holding a Field such as
// the document title or "page N of M". The body area left between the bands
// receives the document, laid out once against the body width and then
// painted one page-high slice at a time.
package printer

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/lvillar/screenreport/textdoc"
)

// State is the progress of a print pass.
type State int

// Print states.
const (
	NotStarted State = iota
	PrintingPage
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case PrintingPage:
		return "printing"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "not started"
	}
}

// Option configures a Printer.
type Option func(*Printer)

// WithHeader sets the header slots.
func WithHeader(left, center, right Field) Option {
	return func(p *Printer) {
		p.header.SetFields(left, center, right)
	}
}

// WithFooter sets the footer slots.
func WithFooter(left, center, right Field) Option {
	return func(p *Printer) {
		p.footer.SetFields(left, center, right)
	}
}

// WithApplication sets the values of the AppName and AppVersion fields.
func WithApplication(name, version string) Option {
	return func(p *Printer) {
		p.appName = name
		p.appVersion = version
	}
}

// WithClock sets the time source used for the date and time fields.
func WithClock(now func() time.Time) Option {
	return func(p *Printer) {
		p.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Printer) {
		if l != nil {
			p.logger = l
		}
	}
}

// Printer paginates documents. A Printer is not safe for concurrent use.
type Printer struct {
	header     *HeaderFooter
	footer     *HeaderFooter
	appName    string
	appVersion string
	now        func() time.Time
	logger     *zap.Logger

	state State
	page  int
}

// New returns a printer with empty header and footer bands.
func New(opts ...Option) *Printer {
	p := &Printer{
		header: NewHeaderFooter(Header),
		footer: NewHeaderFooter(Footer),
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Header returns the header band. Changes take effect on the next Print.
func (p *Printer) Header() *HeaderFooter { return p.header }

// Footer returns the footer band. Changes take effect on the next Print.
func (p *Printer) Footer() *HeaderFooter { return p.footer }

// State returns the state of the current or last print pass.
func (p *Printer) State() State { return p.state }

// Page returns the page being printed, or the last page attempted.
func (p *Printer) Page() int { return p.page }

// Result describes a print pass.
type Result struct {
	Pages         int
	HeaderRect    textdoc.Rect
	BodyRect      textdoc.Rect
	FooterRect    textdoc.Rect
	ContentHeight float64
}

// PageCount returns how many body-high pages content of the given height
// occupies. It is never less than 1.
func PageCount(contentHeight, bodyHeight float64) int {
	if contentHeight <= 0 || bodyHeight <= 0 {
		return 1
	}
	n := int(math.Ceil(contentHeight/bodyHeight - 1e-9))
	if n < 1 {
		return 1
	}
	return n
}

// Print paints doc onto t. On a paint failure it stops at the failing page
// and returns a *PageError; pages already emitted are left on the target.
// A nil t, including a nil or zero *PDFTarget, yields ErrNoTarget.
func (p *Printer) Print(doc *textdoc.Document, t Target) (Result, error) {
	p.state = NotStarted
	p.page = 0

	if doc == nil {
		return Result{}, ErrNoDocument
	}
	if t == nil {
		return Result{}, ErrNoTarget
	}
	if pt, ok := t.(*PDFTarget); ok && (pt == nil || pt.pdf == nil) {
		return Result{}, ErrNoTarget
	}

	// Bands are copied so the pass sees a consistent configuration.
	header, footer := *p.header, *p.footer

	page := t.PageRect()
	headerH := header.Height(t)
	footerH := footer.Height(t)

	res := Result{
		HeaderRect: textdoc.Rect{X: page.X, Y: page.Y, W: page.W, H: headerH},
		BodyRect:   textdoc.Rect{X: page.X, Y: page.Y + headerH, W: page.W, H: page.H - headerH - footerH},
		FooterRect: textdoc.Rect{X: page.X, Y: page.Bottom() - footerH, W: page.W, H: footerH},
	}
	body := res.BodyRect
	if body.W <= 0 || body.H <= 0 {
		return res, ErrNoBody
	}

	layout := doc.Layout(t, body.W, body.H)
	res.ContentHeight = layout.Height
	res.Pages = PageCount(layout.Height, body.H)

	p.logger.Debug("printing document",
		zap.Int("pages", res.Pages),
		zap.Float64("body_width", body.W),
		zap.Float64("body_height", body.H),
		zap.Float64("content_height", layout.Height),
	)

	ctx := FieldContext{
		Document:   doc,
		AppName:    p.appName,
		AppVersion: p.appVersion,
		Now:        p.now(),
		PageCount:  res.Pages,
	}

	for i := 1; i <= res.Pages; i++ {
		p.state = PrintingPage
		p.page = i
		ctx.Page = i
		if err := p.printPage(t, layout, &header, &footer, res, ctx); err != nil {
			p.state = Failed
			p.logger.Warn("printing failed", zap.Int("page", i), zap.Error(err))
			return res, &PageError{Page: i, Err: err}
		}
	}

	p.state = Done
	return res, nil
}

func (p *Printer) printPage(t Target, layout *textdoc.Layout, header, footer *HeaderFooter, res Result, ctx FieldContext) error {
	if err := t.BeginPage(); err != nil {
		return err
	}

	if res.HeaderRect.H > 0 {
		if err := header.paint(t, header.Columns(res.HeaderRect, ctx)); err != nil {
			return err
		}
	}

	body := res.BodyRect
	top := float64(ctx.Page-1) * body.H
	if err := t.BeginBody(body, body.X, body.Y-top); err != nil {
		return err
	}
	for _, b := range layout.Slice(top, top+body.H) {
		if err := t.DrawBox(b); err != nil {
			return err
		}
	}
	if err := t.EndBody(); err != nil {
		return err
	}

	if res.FooterRect.H > 0 {
		if err := footer.paint(t, footer.Columns(res.FooterRect, ctx)); err != nil {
			return err
		}
	}

	return t.EndPage()
}
