package textdoc

const cellPadding = 3.0

var (
	headerFill  = Color{R: 63, G: 81, B: 181}
	headerText  = Color{R: 255, G: 255, B: 255}
	evenRowFill = Color{R: 245, G: 245, B: 245}
	borderColor = Color{R: 200, G: 200, B: 200}
)

type cellStyle struct {
	font  Font
	fill  *Color
	color Color
}

// table lays out a table block. Header rows are repeated at the top of
// every page the table continues on.
func (l *layouter) table(b Block) {
	cols := b.Columns
	if len(cols) == 0 {
		// Auto-detect from the widest row
		n := 0
		for _, r := range b.Rows {
			if len(r) > n {
				n = len(r)
			}
		}
		if n == 0 {
			return
		}
		cols = make([]Column, n)
	}

	widths := columnWidths(cols, l.width)
	f := l.font.merge(b.Font)

	header := make([]string, len(cols))
	hasHeader := false
	for i, c := range cols {
		header[i] = c.Header
		if c.Header != "" {
			hasHeader = true
		}
	}
	hs := headerCellStyle(f, b.HeaderStyle)

	l.gap(f.Size * 0.2)

	headerH := 0.0
	if hasHeader {
		headerH = l.rowHeight(header, widths, hs.font)
		// Keep the header on the same page as the first row.
		if len(b.Rows) > 0 && l.wouldBreak(headerH+l.rowHeight(b.Rows[0], widths, f)) {
			l.y = l.pageEnd(l.y)
		}
		l.row(header, cols, widths, l.reserve(headerH), headerH, hs)
	}

	for i, cells := range b.Rows {
		h := l.rowHeight(cells, widths, f)
		if l.wouldBreak(h) {
			l.y = l.pageEnd(l.y)
			if hasHeader && headerH+h <= l.pageHeight {
				l.row(header, cols, widths, l.reserve(headerH), headerH, hs)
			}
		}

		style := cellStyle{font: f, color: colorOf(b.Color)}
		if i%2 == 0 {
			fill := evenRowFill
			style.fill = &fill
		}
		l.row(cells, cols, widths, l.reserve(h), h, style)
	}

	l.gap(f.Size * 0.5)
}

func (l *layouter) wouldBreak(h float64) bool {
	if l.pageHeight <= 0 || h > l.pageHeight {
		return false
	}
	return l.y+h > l.pageEnd(l.y)+epsilon
}

func (l *layouter) row(cells []string, cols []Column, widths []float64, y, h float64, style cellStyle) {
	lh := l.m.LineHeight(style.font)
	x := 0.0
	for i, w := range widths {
		cell := Rect{X: x, Y: y, W: w, H: h}
		if style.fill != nil {
			l.add(Box{Kind: BoxFill, Rect: cell, Color: *style.fill})
		}
		l.add(Box{Kind: BoxBorder, Rect: cell, Color: borderColor, LineWidth: 0.5})

		if i < len(cells) {
			contentW := w - 2*cellPadding
			for k, line := range SplitLines(l.m, style.font, cells[i], contentW) {
				l.add(Box{
					Kind:  BoxText,
					Rect:  Rect{X: x + cellPadding, Y: y + cellPadding + float64(k)*lh, W: contentW, H: lh},
					Text:  line,
					Font:  style.font,
					Align: alignOf(cols[i].Align),
					Color: style.color,
				})
			}
		}
		x += w
	}
}

// rowHeight computes the height needed for a row based on cell content.
func (l *layouter) rowHeight(cells []string, widths []float64, f Font) float64 {
	lh := l.m.LineHeight(f)
	maxH := lh + 2*cellPadding
	for i, w := range widths {
		if i >= len(cells) {
			break
		}
		contentW := w - 2*cellPadding
		if contentW < 1 {
			contentW = 1
		}
		lines := SplitLines(l.m, f, cells[i], contentW)
		if h := float64(len(lines))*lh + 2*cellPadding; h > maxH {
			maxH = h
		}
	}
	return maxH
}

// columnWidths computes final column widths based on definitions and
// available space. Fixed columns keep their width; the remainder is shared
// by auto columns within their min/max bounds.
func columnWidths(cols []Column, total float64) []float64 {
	widths := make([]float64, len(cols))
	fixed := 0.0
	auto := 0
	for i, c := range cols {
		if c.Width > 0 {
			widths[i] = c.Width
			fixed += c.Width
		} else {
			auto++
		}
	}
	if auto == 0 {
		return widths
	}

	remaining := total - fixed
	if remaining < 0 {
		remaining = 0
	}
	each := remaining / float64(auto)
	for i, c := range cols {
		if c.Width > 0 {
			continue
		}
		w := each
		if c.MinWidth > 0 && w < c.MinWidth {
			w = c.MinWidth
		}
		if c.MaxWidth > 0 && w > c.MaxWidth {
			w = c.MaxWidth
		}
		widths[i] = w
	}
	return widths
}

func headerCellStyle(base Font, s *CellStyle) cellStyle {
	fill := headerFill
	style := cellStyle{
		font:  Font{Family: base.Family, Style: "B", Size: base.Size},
		fill:  &fill,
		color: headerText,
	}
	if s == nil {
		return style
	}
	if s.FillColor != nil {
		c := *s.FillColor
		style.fill = &c
	}
	if s.TextColor != nil {
		style.color = *s.TextColor
	}
	style.font = style.font.merge(s.Font)
	return style
}
