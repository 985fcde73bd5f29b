package textdoc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Parse decodes a JSON document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("textdoc: parsing document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if doc.Meta == nil {
		doc.Meta = make(map[string]string)
	}
	return &doc, nil
}

// Read decodes a JSON document from r.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("textdoc: reading document: %w", err)
	}
	return Parse(data)
}

// ParseFile decodes the JSON document stored at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textdoc: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Validate reports the first block with an unknown type or inconsistent table shape.
func (d *Document) Validate() error {
	for i, b := range d.Blocks {
		switch b.Type {
		case BlockHeading, BlockParagraph, BlockList, BlockRule, BlockSpacer, BlockPageBreak:
		case BlockTable:
			if len(b.Columns) == 0 {
				continue
			}
			for r, row := range b.Rows {
				if len(row) > len(b.Columns) {
					return fmt.Errorf("textdoc: block %d: row %d has %d cells, table has %d columns",
						i+1, r+1, len(row), len(b.Columns))
				}
			}
		default:
			return fmt.Errorf("textdoc: block %d: unknown block type %q", i+1, b.Type)
		}
	}
	return nil
}
