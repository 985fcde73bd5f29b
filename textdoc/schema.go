// Package textdoc provides the rich-text document model printed by the
// printer package.
//
// A Document is a flat sequence of blocks (headings, paragraphs, lists,
// tables, rules, spacers and page breaks) plus named metadata properties such
// as the title and author. Documents can be built in code, decoded from JSON
// or imported from Markdown, and are laid out against a body width with
// Layout.
//
// Example JSON:
//
//	{
//	  "meta": {"title": "Location Report", "author": "Jane Doe"},
//	  "blocks": [
//	    {"type": "heading", "text": "INT. HOUSE", "level": 2},
//	    {"type": "paragraph", "text": "Three scenes."}
//	  ]
//	}
package textdoc

// Metadata keys consulted when resolving header and footer fields.
const (
	MetaTitle    = "title"
	MetaAuthor   = "author"
	MetaContact  = "contact"
	MetaVersion  = "version"
	MetaSubtitle = "subtitle"
)

// Block types.
const (
	BlockHeading   = "heading"
	BlockParagraph = "paragraph"
	BlockList      = "list"
	BlockTable     = "table"
	BlockRule      = "hr"
	BlockSpacer    = "spacer"
	BlockPageBreak = "pagebreak"
)

// Align is a horizontal text alignment.
type Align string

// Alignments.
const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Document is the content handed to the printer. It is read-only while
// being printed.
type Document struct {
	Meta   map[string]string `json:"meta,omitempty"`
	Font   *Font             `json:"font,omitempty"` // default font for the document
	Blocks []Block           `json:"blocks"`
}

// New returns an empty document with initialized metadata.
func New() *Document {
	return &Document{Meta: make(map[string]string)}
}

// Property returns the named metadata property, or "" if it is absent.
func (d *Document) Property(key string) string {
	if d == nil || d.Meta == nil {
		return ""
	}
	return d.Meta[key]
}

// SetProperty sets a metadata property.
func (d *Document) SetProperty(key, value string) {
	if d.Meta == nil {
		d.Meta = make(map[string]string)
	}
	d.Meta[key] = value
}

// Append adds blocks to the end of the document.
func (d *Document) Append(blocks ...Block) *Document {
	d.Blocks = append(d.Blocks, blocks...)
	return d
}

// Font specifies a font face.
type Font struct {
	Family string  `json:"family"` // Helvetica, Courier, Times
	Style  string  `json:"style"`  // "" (regular), "B" (bold), "I" (italic), "BI"
	Size   float64 `json:"size"`   // points
}

// DefaultFont is used when a document does not set one.
var DefaultFont = Font{Family: "Helvetica", Size: 11}

// merge returns f with the non-zero fields of o applied on top.
func (f Font) merge(o *Font) Font {
	if o == nil {
		return f
	}
	if o.Family != "" {
		f.Family = o.Family
	}
	if o.Style != "" {
		f.Style = o.Style
	}
	if o.Size > 0 {
		f.Size = o.Size
	}
	return f
}

// Color is an RGB color.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Rect is an axis-aligned rectangle. Y grows downwards.
type Rect struct {
	X, Y, W, H float64
}

// Bottom returns the y coordinate of the lower edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Block is a single element of a document.
// The Type field determines which other fields are relevant.
type Block struct {
	Type string `json:"type"` // heading, paragraph, list, table, hr, spacer, pagebreak

	// Text content (heading, paragraph)
	Text  string `json:"text,omitempty"`
	Level int    `json:"level,omitempty"` // heading level 1-6
	Align Align  `json:"align,omitempty"` // L, C, R (default: L)

	Font  *Font  `json:"font,omitempty"`
	Color *Color `json:"color,omitempty"`

	// List
	Items   []string `json:"items,omitempty"`
	Ordered bool     `json:"ordered,omitempty"`
	Bullet  string   `json:"bullet,omitempty"`

	// Table
	Columns     []Column   `json:"columns,omitempty"`
	Rows        [][]string `json:"rows,omitempty"`
	HeaderStyle *CellStyle `json:"headerStyle,omitempty"`

	// Spacer / HR
	Height    float64 `json:"height,omitempty"`
	LineWidth float64 `json:"lineWidth,omitempty"`
}

// Column defines a column in a table block.
type Column struct {
	Header   string  `json:"header"`
	Width    float64 `json:"width,omitempty"` // 0 = auto
	MinWidth float64 `json:"minWidth,omitempty"`
	MaxWidth float64 `json:"maxWidth,omitempty"` // 0 = unlimited
	Align    Align   `json:"align,omitempty"`
}

// CellStyle defines styling for table header cells.
type CellStyle struct {
	FillColor *Color `json:"fillColor,omitempty"`
	TextColor *Color `json:"textColor,omitempty"`
	Font      *Font  `json:"font,omitempty"`
}

// Heading returns a heading block.
func Heading(level int, text string) Block {
	return Block{Type: BlockHeading, Level: level, Text: text}
}

// Paragraph returns a left-aligned paragraph block.
func Paragraph(text string) Block {
	return Block{Type: BlockParagraph, Text: text}
}

// List returns a bulleted list block, or a numbered one if ordered is set.
func List(ordered bool, items ...string) Block {
	return Block{Type: BlockList, Items: items, Ordered: ordered}
}

// Table returns a table block.
func Table(columns []Column, rows [][]string) Block {
	return Block{Type: BlockTable, Columns: columns, Rows: rows}
}

// Rule returns a horizontal rule block.
func Rule() Block {
	return Block{Type: BlockRule}
}

// Spacer returns a block of vertical space.
func Spacer(height float64) Block {
	return Block{Type: BlockSpacer, Height: height}
}

// PageBreak returns a block that moves the following content to the next page.
func PageBreak() Block {
	return Block{Type: BlockPageBreak}
}
