// Package screenplay holds the subset of a screenplay that reports read:
// the title page fields and the scenes with their headings.
package screenplay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Screenplay is a screenplay document.
type Screenplay struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	Author   string  `json:"author,omitempty"`
	Contact  string  `json:"contact,omitempty"`
	Version  string  `json:"version,omitempty"`
	Scenes   []Scene `json:"scenes"`
}

// Scene is one scene of a screenplay.
type Scene struct {
	Number     string   `json:"number,omitempty"`
	Heading    Heading  `json:"heading"`
	Characters []string `json:"characters,omitempty"`
	Synopsis   string   `json:"synopsis,omitempty"` // Markdown
}

// Heading is a scene heading such as "INT. KITCHEN - NIGHT".
type Heading struct {
	LocationType string `json:"locationType"` // INT, EXT, I/E
	Location     string `json:"location"`
	Moment       string `json:"moment,omitempty"` // DAY, NIGHT, ...
}

var upper = cases.Upper(language.Und)

// String formats the heading the way it appears in a screenplay.
func (h Heading) String() string {
	var sb strings.Builder
	if h.LocationType != "" {
		sb.WriteString(upper.String(h.LocationType))
		sb.WriteString(". ")
	}
	sb.WriteString(NormalizeLocation(h.Location))
	if h.Moment != "" {
		sb.WriteString(" - ")
		sb.WriteString(upper.String(h.Moment))
	}
	return sb.String()
}

// UnmarshalJSON accepts either a heading object or a heading string.
func (h *Heading) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*h = ParseHeading(s)
		return nil
	}
	type plain Heading
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*h = Heading(p)
	return nil
}

var locationTypes = []string{"INT./EXT.", "INT/EXT", "I/E", "INT", "EXT"}

// ParseHeading splits a heading string into location type, location and
// moment. Missing parts are left empty.
func ParseHeading(s string) Heading {
	s = strings.TrimSpace(s)
	var h Heading

	for _, t := range locationTypes {
		if len(s) < len(t) || !strings.EqualFold(s[:len(t)], t) {
			continue
		}
		if rest := s[len(t):]; rest == "" || rest[0] == '.' || rest[0] == ' ' {
			h.LocationType = strings.TrimSuffix(upper.String(t), ".")
			s = strings.TrimLeft(s[len(t):], ". ")
			break
		}
	}

	if i := strings.LastIndex(s, " - "); i >= 0 {
		h.Moment = upper.String(strings.TrimSpace(s[i+3:]))
		s = s[:i]
	}
	h.Location = NormalizeLocation(s)
	return h
}

// NormalizeLocation upper-cases a location name and collapses whitespace so
// that different spellings of the same place group together.
func NormalizeLocation(s string) string {
	return upper.String(strings.Join(strings.Fields(s), " "))
}

// Load decodes a JSON screenplay from r.
func Load(r io.Reader) (*Screenplay, error) {
	var sp Screenplay
	if err := json.NewDecoder(r).Decode(&sp); err != nil {
		return nil, fmt.Errorf("screenplay: decoding: %w", err)
	}
	return &sp, nil
}

// LoadFile decodes the JSON screenplay stored at path.
func LoadFile(path string) (*Screenplay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("screenplay: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// SceneNumber returns the scene's number, or its 1-based position when the
// scene is unnumbered.
func (sp *Screenplay) SceneNumber(i int) string {
	if n := sp.Scenes[i].Number; n != "" {
		return n
	}
	return fmt.Sprint(i + 1)
}

// Locations returns the distinct normalized locations of all scenes, sorted.
func (sp *Screenplay) Locations() []string {
	seen := make(map[string]bool)
	var out []string
	for _, sc := range sp.Scenes {
		loc := NormalizeLocation(sc.Heading.Location)
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		out = append(out, loc)
	}
	sort.Strings(out)
	return out
}
