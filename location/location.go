// Package location implements the Location Report: the scenes of a
// screenplay grouped by where they take place.
//
// Importing the package registers the report under the name "location":
//
//	import _ "github.com/lvillar/screenreport/location"
//
//	r, err := screenreport.NewReport("location")
package location

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lvillar/screenreport"
	"github.com/lvillar/screenreport/screenplay"
	"github.com/lvillar/screenreport/textdoc"
)

// Name is the registry name of the report.
const Name = "location"

// Field names accepted by SetField.
const (
	FieldLocations       = "locations"
	FieldIncludeSynopsis = "includeSynopsis"
)

func init() {
	screenreport.Register(Name, func() screenreport.Report { return New() })
}

// Report lists scenes per location.
type Report struct {
	// Locations restricts the report to these locations. Names are
	// compared after normalization; empty means every location.
	Locations []string
	// IncludeSynopsis adds each scene's synopsis below its location table.
	IncludeSynopsis bool
}

// New returns a report covering every location without synopses.
func New() *Report { return &Report{} }

// Title implements screenreport.Report.
func (r *Report) Title() string { return "Location Report" }

// RequiresConfiguration implements screenreport.Report.
func (r *Report) RequiresConfiguration() bool { return true }

// Fields implements screenreport.Report.
func (r *Report) Fields() []screenreport.FieldDescriptor {
	return []screenreport.FieldDescriptor{
		{Name: FieldLocations, Label: "Locations to include in the report", Editor: "MultipleLocationSelector"},
		{Name: FieldIncludeSynopsis, Label: "Include scene synopsis", Editor: "CheckBox"},
	}
}

// SetField implements screenreport.Configurable. Names match
// case-insensitively. Locations accepts a list of strings or a
// comma-separated string; includeSynopsis accepts a bool or a string
// strconv.ParseBool understands.
func (r *Report) SetField(name string, value any) error {
	switch {
	case strings.EqualFold(name, FieldLocations):
		locs, err := stringList(value)
		if err != nil {
			return fmt.Errorf("location: %s: %w", FieldLocations, err)
		}
		r.Locations = locs
	case strings.EqualFold(name, FieldIncludeSynopsis):
		b, err := boolValue(value)
		if err != nil {
			return fmt.Errorf("location: %s: %w", FieldIncludeSynopsis, err)
		}
		r.IncludeSynopsis = b
	default:
		return fmt.Errorf("location: %w %q", screenreport.ErrUnknownField, name)
	}
	return nil
}

func stringList(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case string:
		var out []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected strings, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected a list of strings, got %T", value)
}

func boolValue(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	}
	return false, fmt.Errorf("expected a bool, got %T", value)
}

// group is the scenes shot at one location, in screenplay order.
type group struct {
	location string
	scenes   []int // indexes into Screenplay.Scenes
}

// groups returns the selected locations in alphabetical order. Scenes
// without a location are left out.
func (r *Report) groups(sp *screenplay.Screenplay) []group {
	var filter map[string]bool
	if len(r.Locations) > 0 {
		filter = make(map[string]bool, len(r.Locations))
		for _, loc := range r.Locations {
			filter[screenplay.NormalizeLocation(loc)] = true
		}
	}

	index := make(map[string]int)
	var out []group
	for i, sc := range sp.Scenes {
		loc := screenplay.NormalizeLocation(sc.Heading.Location)
		if loc == "" || (filter != nil && !filter[loc]) {
			continue
		}
		k, ok := index[loc]
		if !ok {
			k = len(out)
			index[loc] = k
			out = append(out, group{location: loc})
		}
		out[k].scenes = append(out[k].scenes, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].location < out[j].location })
	return out
}

var sceneColumns = []textdoc.Column{
	{Header: "Scene", Width: 45, Align: textdoc.AlignRight},
	{Header: "Type", Width: 60},
	{Header: "Moment", Width: 90},
	{Header: "Characters"},
}

// Render implements screenreport.Report.
func (r *Report) Render(sp *screenplay.Screenplay) (*textdoc.Document, error) {
	if sp == nil {
		return nil, screenreport.ErrNoScreenplay
	}

	doc := textdoc.New()
	title := sp.Title
	if strings.TrimSpace(title) == "" {
		title = screenreport.UntitledTitle
	}
	doc.SetProperty(textdoc.MetaTitle, title)
	doc.SetProperty(textdoc.MetaSubtitle, sp.Subtitle)
	doc.SetProperty(textdoc.MetaAuthor, sp.Author)
	doc.SetProperty(textdoc.MetaContact, sp.Contact)
	doc.SetProperty(textdoc.MetaVersion, sp.Version)

	doc.Append(
		textdoc.Block{Type: textdoc.BlockHeading, Level: 1, Text: r.Title(), Align: textdoc.AlignCenter},
		textdoc.Block{Type: textdoc.BlockParagraph, Text: title, Align: textdoc.AlignCenter},
	)

	groups := r.groups(sp)
	if len(groups) == 0 {
		doc.Append(textdoc.Rule(), textdoc.Paragraph("No locations matched the selection."))
		return doc, nil
	}

	scenes := 0
	for _, g := range groups {
		scenes += len(g.scenes)
	}
	doc.Append(
		textdoc.Paragraph(fmt.Sprintf("%s in %s.", plural(scenes, "scene"), plural(len(groups), "location"))),
		textdoc.Rule(),
	)

	for _, g := range groups {
		doc.Append(textdoc.Heading(2, fmt.Sprintf("%s (%s)", g.location, plural(len(g.scenes), "scene"))))

		rows := make([][]string, 0, len(g.scenes))
		for _, i := range g.scenes {
			h := sp.Scenes[i].Heading
			rows = append(rows, []string{
				sp.SceneNumber(i),
				h.LocationType,
				h.Moment,
				strings.Join(sp.Scenes[i].Characters, ", "),
			})
		}
		doc.Append(textdoc.Table(sceneColumns, rows))

		if r.IncludeSynopsis {
			r.appendSynopses(doc, sp, g)
		}
	}
	return doc, nil
}

func (r *Report) appendSynopses(doc *textdoc.Document, sp *screenplay.Screenplay, g group) {
	for _, i := range g.scenes {
		sc := sp.Scenes[i]
		if strings.TrimSpace(sc.Synopsis) == "" {
			continue
		}
		doc.Append(textdoc.Heading(4, fmt.Sprintf("Scene %s: %s", sp.SceneNumber(i), sc.Heading)))
		doc.AppendMarkdown(sc.Synopsis)
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
