package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lvillar/screenreport"
	"github.com/lvillar/screenreport/internal/config"
	"github.com/lvillar/screenreport/internal/logger"
	"github.com/lvillar/screenreport/printer"
	"github.com/lvillar/screenreport/textdoc"
)

func newPrintCmd(configPath *string) *cobra.Command {
	var input, output, title string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print a JSON or Markdown document with the configured header and footer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output = screenreport.PolishFileName(output)
			if output == "" {
				return screenreport.ErrEmptyFileName
			}
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			log, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
			if err != nil {
				return err
			}
			defer log.Sync()

			doc, err := loadDocument(input)
			if err != nil {
				return err
			}
			if title != "" {
				doc.SetProperty(textdoc.MetaTitle, title)
			}

			p, err := newPrinter(cfg, log)
			if err != nil {
				return err
			}
			decorations, err := newDecorations(cfg)
			if err != nil {
				return err
			}

			setup := printer.DefaultPageSetup()
			setup.Title = doc.Property(textdoc.MetaTitle)
			if setup.Title == "" {
				setup.Title = screenreport.UntitledTitle
			}
			setup.Author = doc.Property(textdoc.MetaAuthor)
			setup.Creator = strings.TrimSpace(cfg.App.Name + " " + cfg.App.Version)
			target := printer.NewPDFTarget(setup, printer.WithDecorations(decorations...))

			res, err := p.Print(doc, target)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("could not open file '%s' for writing: %w", output, err)
			}
			defer f.Close()
			if err := target.Output(f); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d page(s) written to %s\n", res.Pages, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Document file (.json or .md)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PDF file (.pdf is added when missing)")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Document title used by the title field")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// loadDocument reads a textdoc JSON file, or a Markdown file when the
// extension is .md or .markdown.
func loadDocument(path string) (*textdoc.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return textdoc.New().AppendMarkdown(string(src)), nil
	default:
		return textdoc.ParseFile(path)
	}
}
