package pageops

import (
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
)

// Stationery paints a page of an existing PDF, such as a letterhead, as the
// background of every generated page.
type Stationery struct {
	path   string
	pageNo int

	imp   *gofpdi.Importer
	tplID int
	owner *fpdf.Fpdf
}

// NewStationery returns a background taken from page pageNo (1-based) of
// the PDF at path.
func NewStationery(path string, pageNo int) (*Stationery, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("pageops: stationery: %w", err)
	}
	if pageNo < 1 {
		pageNo = 1
	}
	return &Stationery{path: path, pageNo: pageNo}, nil
}

// Path returns the source PDF.
func (s *Stationery) Path() string { return s.path }

// Layer implements Decoration.
func (s *Stationery) Layer() Layer { return Background }

// Decorate stretches the imported page over the whole paper.
func (s *Stationery) Decorate(pdf *fpdf.Fpdf, page Page) (err error) {
	// gofpdi reports unreadable sources by panicking.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pageops: importing %s: %v", s.path, r)
		}
	}()

	if s.owner != pdf {
		s.imp = gofpdi.NewImporter()
		s.tplID = s.imp.ImportPage(pdf, s.path, s.pageNo, "/MediaBox")
		s.owner = pdf
	}
	s.imp.UseImportedTemplate(pdf, s.tplID, 0, 0, page.Width, page.Height)
	return pdf.Error()
}
