// Package screenreport generates PDF reports from screenplays.
//
// A Generator validates its inputs, opens the output file, sets up an A4
// PDF, asks a Report to render its content into a textdoc.Document and
// hands that document to a printer.Printer, which paginates it between the
// configured header and footer bands.
//
//	r, _ := screenreport.NewReport("location")
//	g := screenreport.NewGenerator(r, screenreport.WithPrinter(p))
//	g.SetScreenplay(sp)
//	g.SetFileName("locations")
//	if err := g.Generate(); err != nil {
//		log.Println(g.ErrorMessage())
//	}
//
// Reports register themselves by name with Register, usually from an init
// function, the way database drivers do.
package screenreport

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lvillar/screenreport/fileinfo"
	"github.com/lvillar/screenreport/hourglass"
	"github.com/lvillar/screenreport/printer"
	"github.com/lvillar/screenreport/screenplay"
	"github.com/lvillar/screenreport/textdoc"
)

// Suffix is the file suffix of generated reports.
const Suffix = "pdf"

// Version is the default application version written to generated files.
const Version = "1.0.0"

// UntitledTitle is the PDF title used when the screenplay has none.
const UntitledTitle = "Untitled"

// Generator produces one report file per Generate call.
type Generator struct {
	report     Report
	fileName   string
	screenplay *screenplay.Screenplay

	errorMessage string
	result       printer.Result

	logger     *zap.Logger
	progress   Progress
	cursor     hourglass.Overrider
	printer    *printer.Printer
	appName    string
	appVersion string
	now        func() time.Time
	pdfOptions []printer.PDFOption
}

// NewGenerator creates a generator for report.
func NewGenerator(report Report, opts ...Option) *Generator {
	g := &Generator{
		report:     report,
		logger:     zap.NewNop(),
		progress:   ProgressFuncs{},
		appName:    "screenreport",
		appVersion: Version,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.printer == nil {
		g.printer = printer.New(
			printer.WithApplication(g.appName, g.appVersion),
			printer.WithClock(g.now),
			printer.WithLogger(g.logger),
		)
	}
	return g
}

// Report returns the report being generated.
func (g *Generator) Report() Report { return g.report }

// Printer returns the printer, whose bands may be changed before Generate.
func (g *Generator) Printer() *printer.Printer { return g.printer }

// FileName returns the output file.
func (g *Generator) FileName() string { return g.fileName }

// SetFileName sets the output file, adding the ".pdf" suffix when missing.
func (g *Generator) SetFileName(name string) { g.fileName = PolishFileName(name) }

// Screenplay returns the screenplay to report on.
func (g *Generator) Screenplay() *screenplay.Screenplay { return g.screenplay }

// SetScreenplay sets the screenplay to report on.
func (g *Generator) SetScreenplay(sp *screenplay.Screenplay) { g.screenplay = sp }

// ErrorMessage returns the message of the last failed Generate, or "" if
// the last call succeeded.
func (g *Generator) ErrorMessage() string { return g.errorMessage }

// Result returns the pagination of the last Generate.
func (g *Generator) Result() printer.Result { return g.result }

// Generate writes the report to FileName. It returns nil on success; on
// failure the error is a *ReportError and its message is also kept in
// ErrorMessage. Validation failures touch no files. After a failure past
// validation, the output file is incomplete and should be discarded.
func (g *Generator) Generate() (err error) {
	g.errorMessage = ""
	g.result = printer.Result{}
	defer hourglass.Hold(g.cursor, hourglass.Wait)()

	log := g.logger.With(zap.String("run", uuid.NewString()), zap.String("file", g.fileName))
	defer func() {
		if err != nil {
			g.errorMessage = err.Error()
			log.Warn("report generation failed", zap.Error(err), zap.Stringer("kind", KindOf(err)))
		}
	}()

	if err := g.validate(); err != nil {
		return err
	}

	f, err := os.Create(g.fileName)
	if err != nil {
		return ioError("open", g.fileName, fmt.Errorf("could not open file '%s' for writing: %w", g.fileName, err))
	}
	defer f.Close()

	target := printer.NewPDFTarget(g.pageSetup(), g.pdfOptions...)

	start := g.now()
	g.progress.Start()
	defer g.progress.Finish()
	log.Info("generating report", zap.String("report", g.report.Title()))

	doc, err := g.report.Render(g.screenplay)
	if err != nil {
		return renderError(err)
	}
	fillMetadata(doc, g.screenplay)

	res, err := g.printer.Print(doc, target)
	g.result = res
	if err != nil {
		var pageErr *printer.PageError
		if errors.As(err, &pageErr) {
			return ioError("print", g.fileName, err)
		}
		return validationError("print", err)
	}

	if err := target.Output(f); err != nil {
		return ioError("write", g.fileName, fmt.Errorf("writing '%s': %w", g.fileName, err))
	}
	if err := f.Close(); err != nil {
		return ioError("write", g.fileName, fmt.Errorf("closing '%s': %w", g.fileName, err))
	}

	log.Info("report generated",
		zap.String("report", g.report.Title()),
		zap.Int("pages", res.Pages),
		zap.Duration("duration", g.now().Sub(start)),
	)
	return nil
}

func (g *Generator) validate() error {
	switch {
	case g.fileName == "":
		return validationError("validate", ErrEmptyFileName)
	case g.screenplay == nil:
		return validationError("validate", ErrNoScreenplay)
	case g.report == nil:
		return validationError("validate", ErrNoReport)
	}
	return nil
}

// pageSetup is A4 with the default margins, titled after the screenplay.
func (g *Generator) pageSetup() printer.PageSetup {
	setup := printer.DefaultPageSetup()
	setup.Title = g.screenplay.Title
	if strings.TrimSpace(setup.Title) == "" {
		setup.Title = UntitledTitle
	}
	setup.Author = g.screenplay.Author
	setup.Subject = g.report.Title()
	setup.Creator = strings.TrimSpace(g.appName + " " + g.appVersion)
	setup.Producer = setup.Creator
	setup.CreationDate = g.now()
	return setup
}

// fillMetadata copies the screenplay's title page fields into doc where the
// report left them unset, so band fields resolve for every report.
func fillMetadata(doc *textdoc.Document, sp *screenplay.Screenplay) {
	if doc == nil {
		return
	}
	for key, value := range map[string]string{
		textdoc.MetaTitle:    sp.Title,
		textdoc.MetaSubtitle: sp.Subtitle,
		textdoc.MetaAuthor:   sp.Author,
		textdoc.MetaContact:  sp.Contact,
		textdoc.MetaVersion:  sp.Version,
	} {
		if value != "" && doc.Property(key) == "" {
			doc.SetProperty(key, value)
		}
	}
}

// PolishFileName appends ".pdf" to name unless its suffix already is "pdf".
// The comparison is case-sensitive: "report.PDF" becomes "report.PDF.pdf".
func PolishFileName(name string) string {
	if name == "" {
		return ""
	}
	if fileinfo.New(name).Suffix() != Suffix {
		return name + "." + Suffix
	}
	return name
}
