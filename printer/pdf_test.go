package printer

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvillar/screenreport/pageops"
	"github.com/lvillar/screenreport/textdoc"
)

var pageObject = regexp.MustCompile(`/Type /Page\b[^s]`)

func countPages(pdf []byte) int {
	return len(pageObject.FindAll(pdf, -1))
}

func longDocument(paragraphs int) *textdoc.Document {
	doc := textdoc.New()
	doc.SetProperty(textdoc.MetaTitle, "Long Document")
	doc.Append(textdoc.Heading(1, "Chapter One"))
	for i := 0; i < paragraphs; i++ {
		doc.Append(textdoc.Paragraph(strings.Repeat("All work and no play makes a dull report. ", 6)))
	}
	doc.Append(textdoc.Table(
		[]textdoc.Column{{Header: "Scene", Width: 60}, {Header: "Heading"}},
		[][]string{{"1", "INT. KITCHEN - DAY"}, {"2", "EXT. GARDEN – NIGHT"}},
	))
	return doc
}

func TestPDFTargetPageRect(t *testing.T) {
	target := NewPDFTarget(DefaultPageSetup())

	r := target.PageRect()

	assert.InDelta(t, 0.2*Inch, r.X, 1e-6)
	assert.InDelta(t, 0.1*Inch, r.Y, 1e-6)
	assert.InDelta(t, 595.28-0.4*Inch, r.W, 0.01)
	assert.InDelta(t, 841.89-0.2*Inch, r.H, 0.01)
}

func TestPDFTargetMeasures(t *testing.T) {
	target := NewPDFTarget(DefaultPageSetup())
	f := textdoc.Font{Family: "Courier", Size: 10}

	// Courier glyphs are 600/1000 em wide.
	assert.InDelta(t, 30, target.StringWidth(f, "abcde"), 1e-6)
	assert.InDelta(t, 12, target.LineHeight(f), 1e-6)
	assert.InDelta(t, textdoc.DefaultFont.Size*lineSpacing, target.LineHeight(textdoc.Font{}), 1e-6)
}

func TestPrintToPDF(t *testing.T) {
	setup := DefaultPageSetup()
	setup.Title = "Long Document"
	setup.Creator = "screenreport test"
	target := NewPDFTarget(setup, WithDecorations(pageops.TextWatermark{Text: "DRAFT"}))

	p := New(
		WithClock(fixedClock),
		WithHeader(Title, Nothing, PageNumberOfCount),
		WithFooter(AppName, Nothing, DateTime),
		WithApplication("screenreport", "test"),
	)
	res, err := p.Print(longDocument(60), target)
	require.NoError(t, err)
	require.Greater(t, res.Pages, 1)
	assert.Equal(t, res.Pages, target.Pages())

	var buf bytes.Buffer
	require.NoError(t, target.Output(&buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output does not start with %PDF header")
	assert.Equal(t, res.Pages, countPages(buf.Bytes()))
}

func TestPrintEmptyDocumentToPDF(t *testing.T) {
	target := NewPDFTarget(DefaultPageSetup())

	res, err := New().Print(textdoc.New(), target)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)

	var buf bytes.Buffer
	require.NoError(t, target.Output(&buf))
	assert.Equal(t, 1, countPages(buf.Bytes()))
}

func TestPrintNilPDFTarget(t *testing.T) {
	p := New()

	var pt *PDFTarget
	_, err := p.Print(textdoc.New(), pt)
	assert.ErrorIs(t, err, ErrNoTarget)

	_, err = p.Print(textdoc.New(), &PDFTarget{})
	assert.ErrorIs(t, err, ErrNoTarget)
	assert.Equal(t, NotStarted, p.State())
}
