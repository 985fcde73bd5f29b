package printer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvillar/screenreport/textdoc"
)

var errPaint = errors.New("paint device failure")

type bodyPass struct {
	clip   textdoc.Rect
	dx, dy float64
	boxes  []textdoc.Box
}

type pageRecord struct {
	bands []textdoc.Box // text painted outside BeginBody/EndBody
	body  bodyPass
	ended bool
}

// recordingTarget records paint calls per page and can fail on a page.
type recordingTarget struct {
	rect       textdoc.Rect
	pages      []*pageRecord
	inBody     bool
	failOnPage int
}

func newRecordingTarget(w, h float64) *recordingTarget {
	return &recordingTarget{rect: textdoc.Rect{X: 10, Y: 5, W: w, H: h}}
}

func (t *recordingTarget) StringWidth(_ textdoc.Font, s string) float64 {
	return float64(len([]rune(s))) * 5
}

func (t *recordingTarget) LineHeight(textdoc.Font) float64 { return 10 }

func (t *recordingTarget) PageRect() textdoc.Rect { return t.rect }

func (t *recordingTarget) BeginPage() error {
	t.pages = append(t.pages, &pageRecord{})
	return nil
}

func (t *recordingTarget) current() *pageRecord { return t.pages[len(t.pages)-1] }

func (t *recordingTarget) BeginBody(clip textdoc.Rect, dx, dy float64) error {
	t.inBody = true
	t.current().body = bodyPass{clip: clip, dx: dx, dy: dy}
	return nil
}

func (t *recordingTarget) DrawBox(b textdoc.Box) error {
	if len(t.pages) == t.failOnPage {
		return errPaint
	}
	p := t.current()
	if t.inBody {
		p.body.boxes = append(p.body.boxes, b)
	} else {
		p.bands = append(p.bands, b)
	}
	return nil
}

func (t *recordingTarget) EndBody() error {
	t.inBody = false
	return nil
}

func (t *recordingTarget) EndPage() error {
	t.current().ended = true
	return nil
}

var fixedNow = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// threePageDocument lays out to exactly three 100pt pages on a recordingTarget.
func threePageDocument() *textdoc.Document {
	doc := textdoc.New()
	doc.SetProperty(textdoc.MetaTitle, "Locations")
	doc.Append(
		textdoc.Paragraph("one"),
		textdoc.PageBreak(),
		textdoc.Paragraph("two"),
		textdoc.PageBreak(),
		textdoc.Paragraph("three"),
	)
	return doc
}

func TestPrintThreePagesWithHeader(t *testing.T) {
	p := New(WithClock(fixedClock), WithHeader(Title, Nothing, PageNumberOfCount))
	target := newRecordingTarget(300, 118)

	res, err := p.Print(threePageDocument(), target)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Pages)
	assert.Equal(t, Done, p.State())
	require.Len(t, target.pages, 3)

	assert.Equal(t, textdoc.Rect{X: 10, Y: 5, W: 300, H: 18}, res.HeaderRect)
	assert.Equal(t, textdoc.Rect{X: 10, Y: 23, W: 300, H: 100}, res.BodyRect)
	assert.Zero(t, res.FooterRect.H)

	for i, page := range target.pages {
		assert.True(t, page.ended)
		require.Len(t, page.bands, 2, "page %d", i+1)

		left, right := page.bands[0], page.bands[1]
		assert.Equal(t, "Locations", left.Text)
		assert.Equal(t, textdoc.AlignLeft, left.Align)
		assert.Equal(t, textdoc.Rect{X: 10, Y: 5, W: 100, H: 18}, left.Rect)
		assert.Equal(t, textdoc.AlignRight, right.Align)
		assert.Equal(t, textdoc.Rect{X: 210, Y: 5, W: 100, H: 18}, right.Rect)

		assert.Equal(t, res.BodyRect, page.body.clip)
		assert.Equal(t, 10.0, page.body.dx)
		assert.InDelta(t, 23-float64(i)*100, page.body.dy, 1e-9)
		require.Len(t, page.body.boxes, 1)
	}
	assert.Equal(t, "2 of 3", target.pages[1].bands[1].Text)
	assert.Equal(t, "two", target.pages[1].body.boxes[0].Text)
}

func TestPrintFooterBand(t *testing.T) {
	p := New(WithClock(fixedClock), WithFooter(Date, Nothing, PageNumber))
	target := newRecordingTarget(300, 118)

	res, err := p.Print(threePageDocument(), target)
	require.NoError(t, err)

	assert.Zero(t, res.HeaderRect.H)
	assert.Equal(t, textdoc.Rect{X: 10, Y: 105, W: 300, H: 18}, res.FooterRect)
	assert.Equal(t, textdoc.Rect{X: 10, Y: 5, W: 300, H: 100}, res.BodyRect)

	last := target.pages[len(target.pages)-1]
	require.Len(t, last.bands, 2)
	assert.Equal(t, "Mar 5, 2024", last.bands[0].Text)
	assert.Equal(t, "3", last.bands[1].Text)
}

func TestPrintEmptyBandsReserveNothing(t *testing.T) {
	target := newRecordingTarget(300, 400)

	res, err := New().Print(textdoc.New().Append(textdoc.Paragraph("x")), target)
	require.NoError(t, err)

	assert.Equal(t, target.PageRect(), res.BodyRect)
	assert.Empty(t, target.pages[0].bands)
}

func TestPrintEmptyDocumentProducesOnePage(t *testing.T) {
	target := newRecordingTarget(300, 400)

	res, err := New(WithHeader(PageNumberOfCount, Nothing, Nothing)).Print(textdoc.New(), target)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Pages)
	require.Len(t, target.pages, 1)
	assert.Equal(t, "1 of 1", target.pages[0].bands[0].Text)
	assert.Empty(t, target.pages[0].body.boxes)
}

func TestPrintFailureStopsAtFailingPage(t *testing.T) {
	p := New(WithHeader(Title, Nothing, PageNumberOfCount))
	target := newRecordingTarget(300, 118)
	target.failOnPage = 2

	res, err := p.Print(threePageDocument(), target)

	var pageErr *PageError
	require.ErrorAs(t, err, &pageErr)
	assert.Equal(t, 2, pageErr.Page)
	assert.ErrorIs(t, err, errPaint)
	assert.Equal(t, Failed, p.State())
	assert.Equal(t, 3, res.Pages)

	require.Len(t, target.pages, 2)
	assert.True(t, target.pages[0].ended)
	assert.False(t, target.pages[1].ended)
}

func TestPrintValidation(t *testing.T) {
	p := New()

	_, err := p.Print(nil, newRecordingTarget(100, 100))
	assert.ErrorIs(t, err, ErrNoDocument)

	_, err = p.Print(textdoc.New(), nil)
	assert.ErrorIs(t, err, ErrNoTarget)

	p = New(WithHeader(Title, Nothing, Nothing), WithFooter(Title, Nothing, Nothing))
	_, err = p.Print(textdoc.New(), newRecordingTarget(100, 30))
	assert.ErrorIs(t, err, ErrNoBody)
	assert.Equal(t, NotStarted, p.State())
}

func TestPrintVisitsComputedPageCount(t *testing.T) {
	for n := 0; n < 60; n += 7 {
		doc := textdoc.New()
		for i := 0; i < n; i++ {
			doc.Append(textdoc.Paragraph("line"))
		}
		target := newRecordingTarget(300, 100)

		res, err := New().Print(doc, target)
		require.NoError(t, err)

		assert.Equal(t, PageCount(res.ContentHeight, res.BodyRect.H), res.Pages)
		assert.Len(t, target.pages, res.Pages)

		lastOffset := float64(res.Pages-1) * res.BodyRect.H
		if res.ContentHeight > 0 {
			assert.Less(t, lastOffset, res.ContentHeight)
		} else {
			assert.Zero(t, lastOffset)
		}
	}
}

func TestPrintIsRepeatable(t *testing.T) {
	p := New(WithClock(fixedClock), WithHeader(Title, DateTime, PageNumberOfCount))
	doc := threePageDocument()

	a, b := newRecordingTarget(300, 118), newRecordingTarget(300, 118)
	resA, err := p.Print(doc, a)
	require.NoError(t, err)
	resB, err := p.Print(doc, b)
	require.NoError(t, err)

	assert.Equal(t, resA, resB)
	require.Len(t, b.pages, len(a.pages))
	for i := range a.pages {
		assert.Equal(t, a.pages[i].bands, b.pages[i].bands)
	}
}

func TestBandChangesApplyToNextPrint(t *testing.T) {
	p := New()
	p.Header().SetFields(Nothing, Title, Nothing)

	target := newRecordingTarget(300, 200)
	_, err := p.Print(threePageDocument(), target)
	require.NoError(t, err)

	require.Len(t, target.pages[0].bands, 1)
	assert.Equal(t, textdoc.AlignCenter, target.pages[0].bands[0].Align)
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		content, body float64
		want          int
	}{
		{0, 100, 1},
		{1, 100, 1},
		{100, 100, 1},
		{100.0000000001, 100, 1},
		{101, 100, 2},
		{300, 100, 3},
		{50, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PageCount(tt.content, tt.body), "PageCount(%v, %v)", tt.content, tt.body)
	}
}
