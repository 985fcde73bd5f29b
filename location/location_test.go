package location

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvillar/screenreport"
	"github.com/lvillar/screenreport/printer"
	"github.com/lvillar/screenreport/screenplay"
	"github.com/lvillar/screenreport/textdoc"
)

const heistJSON = `{
	"title": "The Heist",
	"author": "R. Writer",
	"scenes": [
		{"heading": "INT. KITCHEN - NIGHT", "characters": ["ANA", "BEN"], "synopsis": "Ana hides the **key** in the sugar jar."},
		{"heading": "EXT. GARDEN - DAY", "characters": ["BEN"]},
		{"number": "3A", "heading": "INT. Kitchen - DAY", "characters": ["ANA"], "synopsis": "- Ben searches\n- Ana watches"},
		{"heading": "EXT. ROOFTOP - NIGHT"}
	]
}`

func heist(t *testing.T) *screenplay.Screenplay {
	t.Helper()
	sp, err := screenplay.Load(strings.NewReader(heistJSON))
	require.NoError(t, err)
	return sp
}

func blocksOfType(doc *textdoc.Document, typ string) []textdoc.Block {
	var out []textdoc.Block
	for _, b := range doc.Blocks {
		if b.Type == typ {
			out = append(out, b)
		}
	}
	return out
}

func headings(doc *textdoc.Document, level int) []string {
	var out []string
	for _, b := range blocksOfType(doc, textdoc.BlockHeading) {
		if b.Level == level {
			out = append(out, b.Text)
		}
	}
	return out
}

func TestRenderGroupsByLocation(t *testing.T) {
	doc, err := New().Render(heist(t))
	require.NoError(t, err)

	assert.Equal(t, "The Heist", doc.Property(textdoc.MetaTitle))
	assert.Equal(t, "R. Writer", doc.Property(textdoc.MetaAuthor))
	assert.Equal(t, []string{"Location Report"}, headings(doc, 1))
	assert.Equal(t, []string{"GARDEN (1 scene)", "KITCHEN (2 scenes)", "ROOFTOP (1 scene)"}, headings(doc, 2))
	assert.Empty(t, headings(doc, 4), "synopsis is off by default")

	tables := blocksOfType(doc, textdoc.BlockTable)
	require.Len(t, tables, 3)
	assert.Equal(t, []string{"Scene", "Type", "Moment", "Characters"}, []string{
		tables[1].Columns[0].Header, tables[1].Columns[1].Header, tables[1].Columns[2].Header, tables[1].Columns[3].Header,
	})
	assert.Equal(t, [][]string{
		{"1", "INT", "NIGHT", "ANA, BEN"},
		{"3A", "INT", "DAY", "ANA"},
	}, tables[1].Rows)

	assert.Contains(t, doc.Blocks[2].Text, "4 scenes in 3 locations")
}

func TestRenderWithSynopsis(t *testing.T) {
	r := New()
	r.IncludeSynopsis = true

	doc, err := r.Render(heist(t))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Scene 1: INT. KITCHEN - NIGHT",
		"Scene 3A: INT. KITCHEN - DAY",
	}, headings(doc, 4))

	var texts []string
	for _, b := range blocksOfType(doc, textdoc.BlockParagraph) {
		texts = append(texts, b.Text)
	}
	assert.Contains(t, texts, "Ana hides the key in the sugar jar.")

	lists := blocksOfType(doc, textdoc.BlockList)
	require.Len(t, lists, 1)
	assert.Equal(t, []string{"Ben searches", "Ana watches"}, lists[0].Items)
}

func TestRenderFilter(t *testing.T) {
	r := New()
	r.Locations = []string{" kitchen", "Rooftop"}

	doc, err := r.Render(heist(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"KITCHEN (2 scenes)", "ROOFTOP (1 scene)"}, headings(doc, 2))
}

func TestRenderNoMatch(t *testing.T) {
	r := New()
	r.Locations = []string{"Moon"}

	doc, err := r.Render(heist(t))
	require.NoError(t, err)

	assert.Empty(t, headings(doc, 2))
	assert.Empty(t, blocksOfType(doc, textdoc.BlockTable))
	last := doc.Blocks[len(doc.Blocks)-1]
	assert.Equal(t, "No locations matched the selection.", last.Text)
}

func TestRenderUntitled(t *testing.T) {
	doc, err := New().Render(&screenplay.Screenplay{})
	require.NoError(t, err)
	assert.Equal(t, screenreport.UntitledTitle, doc.Property(textdoc.MetaTitle))

	_, err = New().Render(nil)
	assert.ErrorIs(t, err, screenreport.ErrNoScreenplay)
}

func TestSetField(t *testing.T) {
	r := New()

	require.NoError(t, r.SetField("locations", []any{"KITCHEN", "GARDEN"}))
	assert.Equal(t, []string{"KITCHEN", "GARDEN"}, r.Locations)

	require.NoError(t, r.SetField("Locations", "kitchen, , roof"))
	assert.Equal(t, []string{"kitchen", "roof"}, r.Locations)

	require.NoError(t, r.SetField("includesynopsis", true))
	assert.True(t, r.IncludeSynopsis)

	require.NoError(t, r.SetField("includeSynopsis", "false"))
	assert.False(t, r.IncludeSynopsis)

	assert.ErrorIs(t, r.SetField("budget", 1), screenreport.ErrUnknownField)
	assert.Error(t, r.SetField("locations", 12))
	assert.Error(t, r.SetField("locations", []any{"A", 2}))
	assert.Error(t, r.SetField("includeSynopsis", "maybe"))
}

func TestRegistered(t *testing.T) {
	assert.Contains(t, screenreport.Reports(), Name)

	r, err := screenreport.NewReport(Name)
	require.NoError(t, err)
	assert.True(t, r.RequiresConfiguration())

	require.NoError(t, screenreport.Configure(r, map[string]any{"includesynopsis": true}))
	assert.True(t, r.(*Report).IncludeSynopsis)
}

func TestFormInfo(t *testing.T) {
	out, err := json.Marshal(screenreport.FormInfo(New()))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"title": "Location Report",
		"fields": [
			{"name": "locations", "label": "Locations to include in the report", "editor": "MultipleLocationSelector"},
			{"name": "includeSynopsis", "label": "Include scene synopsis", "editor": "CheckBox"}
		]
	}`, string(out))
}

func TestGenerateLocationReport(t *testing.T) {
	r := New()
	r.IncludeSynopsis = true
	p := printer.New(
		printer.WithHeader(printer.Title, printer.Nothing, printer.PageNumberOfCount),
		printer.WithFooter(printer.AppName, printer.Nothing, printer.Date),
	)

	g := screenreport.NewGenerator(r, screenreport.WithPrinter(p))
	g.SetScreenplay(heist(t))
	g.SetFileName(filepath.Join(t.TempDir(), "locations"))

	require.NoError(t, g.Generate(), g.ErrorMessage())
	assert.Equal(t, 1, g.Result().Pages)

	out, err := os.ReadFile(g.FileName())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateNoMatchStillPrintsOnePage(t *testing.T) {
	r := New()
	r.Locations = []string{"Moon"}

	g := screenreport.NewGenerator(r)
	g.SetScreenplay(heist(t))
	g.SetFileName(filepath.Join(t.TempDir(), "empty.pdf"))

	require.NoError(t, g.Generate())
	assert.Equal(t, 1, g.Result().Pages)
}

func ExampleReport_Render() {
	sp := &screenplay.Screenplay{
		Title: "The Heist",
		Scenes: []screenplay.Scene{
			{Heading: screenplay.ParseHeading("INT. KITCHEN - NIGHT")},
			{Heading: screenplay.ParseHeading("EXT. GARDEN - DAY")},
			{Heading: screenplay.ParseHeading("INT. KITCHEN - DAY")},
		},
	}

	doc, _ := New().Render(sp)
	for _, b := range doc.Blocks {
		if b.Type == textdoc.BlockHeading && b.Level == 2 {
			fmt.Println(b.Text)
		}
	}
	// Output:
	// GARDEN (1 scene)
	// KITCHEN (2 scenes)
}
