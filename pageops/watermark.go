package pageops

import (
	"github.com/go-pdf/fpdf"
)

// TextWatermark is a large, translucent, rotated label such as "DRAFT"
// stamped across the middle of every page.
type TextWatermark struct {
	Text     string
	FontSize float64  // points (default: 60)
	Color    RGBColor // default: light gray
	Opacity  float64  // 0 to 1 (default: 0.3)
	Angle    float64  // degrees counter-clockwise (default: 45)
}

// Layer implements Decoration. The watermark sits above the page content.
func (wm TextWatermark) Layer() Layer { return Overlay }

// Decorate implements Decoration. Text color and opacity are restored
// afterwards so later painting is unaffected.
func (wm TextWatermark) Decorate(pdf *fpdf.Fpdf, page Page) error {
	if wm.Text == "" {
		return nil
	}
	wm = wm.withDefaults()

	label := pdf.UnicodeTranslatorFromDescriptor("")(wm.Text)
	r, g, b := pdf.GetTextColor()
	alpha, blend := pdf.GetAlpha()

	pdf.SetFont("Helvetica", "B", wm.FontSize)
	midX, midY := page.Width/2, page.Height/2
	// Baseline a third of the font size below the middle centers the caps.
	x := midX - pdf.GetStringWidth(label)/2
	y := midY + wm.FontSize/3

	pdf.SetTextColor(wm.Color.R, wm.Color.G, wm.Color.B)
	pdf.SetAlpha(wm.Opacity, "Normal")
	pdf.TransformBegin()
	pdf.TransformRotate(wm.Angle, midX, midY)
	pdf.Text(x, y, label)
	pdf.TransformEnd()

	pdf.SetAlpha(alpha, blend)
	pdf.SetTextColor(r, g, b)
	return pdf.Error()
}

func (wm TextWatermark) withDefaults() TextWatermark {
	if wm.FontSize <= 0 {
		wm.FontSize = 60
	}
	if wm.Opacity <= 0 {
		wm.Opacity = 0.3
	}
	if wm.Angle == 0 {
		wm.Angle = 45
	}
	if wm.Color == (RGBColor{}) {
		wm.Color = RGBColor{R: 200, G: 200, B: 200}
	}
	return wm
}
