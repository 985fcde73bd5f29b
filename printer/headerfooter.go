package printer

import (
	"github.com/lvillar/screenreport/textdoc"
)

// bandPadding is added above and below the band's line of text.
const bandPadding = 4.0

// Band identifies whether a HeaderFooter is printed above or below the body.
type Band int

// Bands.
const (
	Header Band = iota
	Footer
)

func (b Band) String() string {
	if b == Footer {
		return "footer"
	}
	return "header"
}

// HeaderFooter describes one band: three field slots and the font they are
// set in. A band whose slots are all Nothing takes no space on the page.
type HeaderFooter struct {
	band Band

	Left   Field
	Center Field
	Right  Field
	Font   textdoc.Font
	Color  textdoc.Color
}

// DefaultBandFont is the font new bands start with.
var DefaultBandFont = textdoc.Font{Family: "Helvetica", Size: 9}

// NewHeaderFooter returns an empty band.
func NewHeaderFooter(band Band) *HeaderFooter {
	return &HeaderFooter{band: band, Font: DefaultBandFont}
}

// Band reports whether h is a header or a footer.
func (h *HeaderFooter) Band() Band { return h.band }

// SetFields sets all three slots.
func (h *HeaderFooter) SetFields(left, center, right Field) *HeaderFooter {
	h.Left, h.Center, h.Right = left, center, right
	return h
}

// IsEmpty reports whether every slot is Nothing.
func (h *HeaderFooter) IsEmpty() bool {
	return h.Left == Nothing && h.Center == Nothing && h.Right == Nothing
}

// Fields returns the left, center and right slots.
func (h *HeaderFooter) Fields() [3]Field {
	return [3]Field{h.Left, h.Center, h.Right}
}

// Height returns the vertical space reserved for the band.
func (h *HeaderFooter) Height(m textdoc.Measurer) float64 {
	if h.IsEmpty() {
		return 0
	}
	return m.LineHeight(h.Font) + 2*bandPadding
}

// ColumnContent is one resolved slot of a band on one page.
type ColumnContent struct {
	Rect    textdoc.Rect
	Content string
	Align   textdoc.Align
}

var slotAlign = [3]textdoc.Align{textdoc.AlignLeft, textdoc.AlignCenter, textdoc.AlignRight}

// Columns lays out the band's non-empty slots inside rect. Each slot owns a
// third of the width; text is vertically centered by the target.
func (h *HeaderFooter) Columns(rect textdoc.Rect, c FieldContext) []ColumnContent {
	var cols []ColumnContent
	w := rect.W / 3
	for i, f := range h.Fields() {
		if f == Nothing {
			continue
		}
		cols = append(cols, ColumnContent{
			Rect:    textdoc.Rect{X: rect.X + float64(i)*w, Y: rect.Y, W: w, H: rect.H},
			Content: Resolve(f, c),
			Align:   slotAlign[i],
		})
	}
	return cols
}

func (h *HeaderFooter) paint(t Target, cols []ColumnContent) error {
	for _, col := range cols {
		err := t.DrawBox(textdoc.Box{
			Kind:  textdoc.BoxText,
			Rect:  col.Rect,
			Text:  col.Content,
			Font:  h.Font,
			Align: col.Align,
			Color: h.Color,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
