// Package pageops provides decorations painted on every page of a PDF as it
// is generated: a stationery background imported from an existing PDF, a
// diagonal text watermark and a QR or PDF417 stamp.
//
// Background decorations are painted right after a page is added, before
// any content; overlay decorations are painted after the page content.
package pageops

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Layer selects when a decoration is painted.
type Layer int

const (
	Background Layer = iota
	Overlay
)

// Page describes the page being decorated. Width and Height are the full
// paper size in points.
type Page struct {
	Number int
	Width  float64
	Height float64
}

// Decoration paints onto a page of pdf.
type Decoration interface {
	Layer() Layer
	Decorate(pdf *fpdf.Fpdf, page Page) error
}

// Position specifies where to place an element on a page.
type Position int

const (
	BottomRight Position = iota
	Center
	TopLeft
	TopCenter
	TopRight
	BottomLeft
	BottomCenter
)

var positionNames = map[string]Position{
	"":              BottomRight,
	"bottom-right":  BottomRight,
	"center":        Center,
	"top-left":      TopLeft,
	"top-center":    TopCenter,
	"top-right":     TopRight,
	"bottom-left":   BottomLeft,
	"bottom-center": BottomCenter,
}

// ParsePosition maps names such as "top-right" to a Position. The empty
// name is BottomRight.
func ParsePosition(name string) (Position, error) {
	if p, ok := positionNames[name]; ok {
		return p, nil
	}
	return BottomRight, fmt.Errorf("pageops: unknown position %q", name)
}

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

// place returns the top-left corner of a w×h box at pos, margin points in
// from the paper edge.
func place(pos Position, pageW, pageH, w, h, margin float64) (x, y float64) {
	switch pos {
	case TopLeft:
		return margin, margin
	case TopCenter:
		return (pageW - w) / 2, margin
	case TopRight:
		return pageW - w - margin, margin
	case BottomLeft:
		return margin, pageH - h - margin
	case BottomCenter:
		return (pageW - w) / 2, pageH - h - margin
	case Center:
		return (pageW - w) / 2, (pageH - h) / 2
	default: // BottomRight
		return pageW - w - margin, pageH - h - margin
	}
}
