package printer

import "github.com/lvillar/screenreport/textdoc"

// Target is a paginated paint surface.
//
// The printer calls BeginPage, paints the header, paints body boxes between
// BeginBody and EndBody, paints the footer and calls EndPage, once per page.
type Target interface {
	textdoc.Measurer

	// PageRect returns the printable area of a page.
	PageRect() textdoc.Rect
	// BeginPage starts a new page.
	BeginPage() error
	// BeginBody clips painting to clip and translates the origin by (dx, dy)
	// until EndBody.
	BeginBody(clip textdoc.Rect, dx, dy float64) error
	// DrawBox paints one box.
	DrawBox(b textdoc.Box) error
	EndBody() error
	EndPage() error
}
