package textdoc

import (
	"math"
	"strconv"
	"strings"
)

const epsilon = 1e-6

// BoxKind identifies how a laid-out box is painted.
type BoxKind int

// Box kinds.
const (
	BoxText   BoxKind = iota // single line of text, vertically centered in Rect
	BoxFill                  // filled rectangle
	BoxBorder                // stroked rectangle
	BoxRule                  // horizontal line along the top edge of Rect
)

// Box is one positioned paint operation. Coordinates are relative to the
// top-left corner of the body area of the first page; a box on page n has
// a Y between (n-1)*PageHeight and n*PageHeight.
type Box struct {
	Kind      BoxKind
	Rect      Rect
	Text      string
	Font      Font
	Align     Align
	Color     Color
	LineWidth float64
}

// Layout is a document laid out against a fixed width.
type Layout struct {
	Width      float64
	PageHeight float64 // 0 when laid out without page breaks
	Height     float64 // bottom of the lowest box
	Boxes      []Box
}

// Slice returns the boxes that intersect the band [top, bottom).
func (l *Layout) Slice(top, bottom float64) []Box {
	var out []Box
	for _, b := range l.Boxes {
		if b.Rect.H == 0 {
			if b.Rect.Y >= top && b.Rect.Y < bottom {
				out = append(out, b)
			}
			continue
		}
		if b.Rect.Y < bottom && b.Rect.Bottom() > top {
			out = append(out, b)
		}
	}
	return out
}

// Layout positions the document's blocks within width. When pageHeight is
// positive, a line or table row that would straddle a multiple of
// pageHeight is moved to the start of the next page.
func (d *Document) Layout(m Measurer, width, pageHeight float64) *Layout {
	l := &layouter{
		m:          m,
		width:      width,
		pageHeight: pageHeight,
		font:       DefaultFont.merge(d.Font),
	}
	for _, b := range d.Blocks {
		l.block(b)
	}
	return &Layout{
		Width:      width,
		PageHeight: pageHeight,
		Height:     l.bottom,
		Boxes:      l.boxes,
	}
}

type layouter struct {
	m          Measurer
	width      float64
	pageHeight float64
	font       Font
	y          float64
	bottom     float64
	boxes      []Box
}

func (l *layouter) block(b Block) {
	switch b.Type {
	case BlockHeading:
		l.heading(b)
	case BlockParagraph:
		l.paragraph(b)
	case BlockList:
		l.list(b)
	case BlockTable:
		l.table(b)
	case BlockRule:
		l.rule(b)
	case BlockSpacer:
		h := b.Height
		if h == 0 {
			h = 10
		}
		l.y += h
	case BlockPageBreak:
		if l.pageHeight > 0 && !l.atPageTop() {
			l.y = l.pageEnd(l.y)
		}
	}
}

// reserve allocates h points of vertical space and returns its top.
func (l *layouter) reserve(h float64) float64 {
	if l.pageHeight > 0 && h <= l.pageHeight {
		if end := l.pageEnd(l.y); l.y+h > end+epsilon {
			l.y = end
		}
	}
	y := l.y
	l.y += h
	return y
}

// gap adds spacing between blocks. Spacing is dropped at the top of a page.
func (l *layouter) gap(h float64) {
	if l.atPageTop() {
		return
	}
	l.y += h
}

func (l *layouter) atPageTop() bool {
	if l.y < epsilon {
		return true
	}
	if l.pageHeight <= 0 {
		return false
	}
	rem := math.Mod(l.y, l.pageHeight)
	return rem < epsilon || l.pageHeight-rem < epsilon
}

func (l *layouter) pageEnd(y float64) float64 {
	page := math.Floor((y + epsilon) / l.pageHeight)
	return (page + 1) * l.pageHeight
}

func (l *layouter) add(b Box) {
	l.boxes = append(l.boxes, b)
	if bottom := b.Rect.Bottom(); bottom > l.bottom {
		l.bottom = bottom
	}
}

func (l *layouter) textLines(text string, f Font, x, width float64, align Align, color Color) {
	lh := l.m.LineHeight(f)
	for _, line := range SplitLines(l.m, f, text, width) {
		y := l.reserve(lh)
		l.add(Box{
			Kind:  BoxText,
			Rect:  Rect{X: x, Y: y, W: width, H: lh},
			Text:  line,
			Font:  f,
			Align: align,
			Color: color,
		})
	}
}

func (l *layouter) heading(b Block) {
	level := b.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}

	// Heading sizes: h1=24, h2=20, h3=16, h4=14, h5=12, h6=11
	sizes := []float64{24, 20, 16, 14, 12, 11}
	f := Font{Family: l.font.Family, Style: "B", Size: sizes[level-1]}.merge(b.Font)

	if level <= 2 {
		l.gap(f.Size * 0.4)
	} else {
		l.gap(f.Size * 0.3)
	}
	l.textLines(b.Text, f, 0, l.width, alignOf(b.Align), colorOf(b.Color))
	l.gap(f.Size * 0.2)
}

func (l *layouter) paragraph(b Block) {
	f := l.font.merge(b.Font)
	l.textLines(b.Text, f, 0, l.width, alignOf(b.Align), colorOf(b.Color))
	l.gap(f.Size * 0.3)
}

func (l *layouter) list(b Block) {
	f := l.font.merge(b.Font)
	indent := f.Size * 1.3

	bullet := "• "
	if b.Bullet != "" {
		bullet = b.Bullet + " "
	}

	for i, item := range b.Items {
		prefix := bullet
		if b.Ordered {
			prefix = strconv.Itoa(i+1) + ". "
		}
		l.textLines(prefix+item, f, indent, l.width-indent, AlignLeft, colorOf(b.Color))
		l.gap(f.Size * 0.15)
	}
	l.gap(f.Size * 0.3)
}

func (l *layouter) rule(b Block) {
	lw := b.LineWidth
	if lw == 0 {
		lw = 0.75
	}
	color := Color{R: 180, G: 180, B: 180}
	if b.Color != nil {
		color = *b.Color
	}

	l.gap(6)
	y := l.reserve(lw)
	l.add(Box{Kind: BoxRule, Rect: Rect{X: 0, Y: y, W: l.width}, Color: color, LineWidth: lw})
	l.gap(6)
}

func alignOf(a Align) Align {
	switch Align(strings.ToUpper(string(a))) {
	case AlignCenter:
		return AlignCenter
	case AlignRight:
		return AlignRight
	default:
		return AlignLeft
	}
}

func colorOf(c *Color) Color {
	if c == nil {
		return Color{}
	}
	return *c
}
