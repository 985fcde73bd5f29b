package pageops

import (
	"fmt"

	"github.com/boombuler/barcode/qr"
	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/barcode"
)

// StampKind selects the barcode symbology of a Stamp.
type StampKind int

const (
	StampQR StampKind = iota
	StampPDF417
)

func (k StampKind) String() string {
	if k == StampPDF417 {
		return "pdf417"
	}
	return "qr"
}

// ParseStampKind maps "qr" and "pdf417" to a StampKind.
func ParseStampKind(name string) (StampKind, error) {
	switch name {
	case "", "qr":
		return StampQR, nil
	case "pdf417":
		return StampPDF417, nil
	}
	return StampQR, fmt.Errorf("pageops: unknown stamp kind %q", name)
}

// Stamp paints a barcode encoding Payload, for example a link back to the
// project the report was generated from.
type Stamp struct {
	Payload   string
	Kind      StampKind
	Size      float64  // width in points (default: 48)
	Position  Position // default: BottomRight
	Margin    float64  // distance from the paper edge in points (default: 8)
	EveryPage bool     // stamp every page instead of only the first

	key   string
	owner *fpdf.Fpdf
}

// Layer implements Decoration.
func (s *Stamp) Layer() Layer { return Overlay }

// Decorate implements Decoration.
func (s *Stamp) Decorate(pdf *fpdf.Fpdf, page Page) error {
	if s.Payload == "" || (!s.EveryPage && page.Number != 1) {
		return nil
	}

	if s.owner != pdf {
		switch s.Kind {
		case StampPDF417:
			s.key = barcode.RegisterPdf417(pdf, s.Payload, 5, 2)
		default:
			s.key = barcode.RegisterQR(pdf, s.Payload, qr.M, qr.Auto)
		}
		s.owner = pdf
		if pdf.Err() {
			return pdf.Error()
		}
	}

	w := s.Size
	if w == 0 {
		w = 48
	}
	h := w
	if s.Kind == StampPDF417 {
		h = w / 3
	}
	margin := s.Margin
	if margin == 0 {
		margin = 8
	}

	x, y := place(s.Position, page.Width, page.Height, w, h, margin)
	barcode.Barcode(pdf, s.key, x, y, w, h, false)
	return pdf.Error()
}
