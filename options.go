package screenreport

import (
	"time"

	"go.uber.org/zap"

	"github.com/lvillar/screenreport/hourglass"
	"github.com/lvillar/screenreport/printer"
)

// Option is a functional option for configuring a Generator via NewGenerator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithProgress sets the observer told when rendering starts and finishes.
func WithProgress(p Progress) Option {
	return func(g *Generator) {
		if p != nil {
			g.progress = p
		}
	}
}

// WithCursor sets the busy indicator held while Generate runs.
func WithCursor(o hourglass.Overrider) Option {
	return func(g *Generator) {
		g.cursor = o
	}
}

// WithPrinter sets the printer, and with it the header and footer bands.
// Without it the generator creates a printer with empty bands.
func WithPrinter(p *printer.Printer) Option {
	return func(g *Generator) {
		g.printer = p
	}
}

// WithApplication sets the application name and version written to the PDF
// creator and, when the generator creates its own printer, to the app-name
// and app-version fields.
func WithApplication(name, version string) Option {
	return func(g *Generator) {
		g.appName = name
		g.appVersion = version
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithPDFOptions passes options, such as decorations, to the PDF target.
func WithPDFOptions(opts ...printer.PDFOption) Option {
	return func(g *Generator) {
		g.pdfOptions = append(g.pdfOptions, opts...)
	}
}
