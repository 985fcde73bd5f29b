package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lvillar/screenreport"
	"github.com/lvillar/screenreport/internal/config"
	"github.com/lvillar/screenreport/internal/logger"
	"github.com/lvillar/screenreport/pageops"
	"github.com/lvillar/screenreport/printer"
	"github.com/lvillar/screenreport/screenplay"
	"github.com/lvillar/screenreport/textdoc"
)

func newReportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "List the available reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range screenreport.Reports() {
				r, err := screenreport.NewReport(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\n", name, r.Title())
			}
			return tw.Flush()
		},
	}
}

func newFormCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "form <report>",
		Short: "Print the configuration form of a report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := screenreport.NewReport(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(screenreport.FormInfo(r))
		},
	}
}

type generateOptions struct {
	report string
	input  string
	output string
	set    []string
	quiet  bool
}

func newGenerateCmd(configPath *string) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, *configPath, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.report, "report", "r", "location", "Report to generate")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Screenplay JSON file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output PDF file (.pdf is added when missing)")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Report field as name=value (repeatable)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Do not show the busy indicator")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runGenerate(cmd *cobra.Command, configPath string, opts generateOptions) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return err
	}
	defer log.Sync()

	report, err := screenreport.NewReport(opts.report)
	if err != nil {
		return err
	}
	values, err := reportValues(cfg.Report, opts.set)
	if err != nil {
		return err
	}
	if err := screenreport.Configure(report, values); err != nil {
		return err
	}

	sp, err := screenplay.LoadFile(opts.input)
	if err != nil {
		return err
	}

	p, err := newPrinter(cfg, log)
	if err != nil {
		return err
	}
	decorations, err := newDecorations(cfg)
	if err != nil {
		return err
	}

	genOpts := []screenreport.Option{
		screenreport.WithLogger(log),
		screenreport.WithApplication(cfg.App.Name, cfg.App.Version),
		screenreport.WithPrinter(p),
		screenreport.WithPDFOptions(printer.WithDecorations(decorations...)),
	}
	if !opts.quiet {
		genOpts = append(genOpts, screenreport.WithCursor(newBusyIndicator(cmd.ErrOrStderr())))
	}

	g := screenreport.NewGenerator(report, genOpts...)
	g.SetScreenplay(sp)
	g.SetFileName(opts.output)
	if err := g.Generate(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d page(s) written to %s\n", report.Title(), g.Result().Pages, g.FileName())
	return nil
}

// reportValues merges --set flags over the [report] config section.
func reportValues(fromConfig map[string]any, set []string) (map[string]any, error) {
	values := make(map[string]any, len(fromConfig)+len(set))
	for k, v := range fromConfig {
		values[k] = v
	}
	for _, kv := range set {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q, expected name=value", kv)
		}
		values[strings.ToLower(name)] = value
	}
	return values, nil
}

func newPrinter(cfg *config.Config, log *zap.Logger) (*printer.Printer, error) {
	header, err := cfg.Header.Fields()
	if err != nil {
		return nil, err
	}
	footer, err := cfg.Footer.Fields()
	if err != nil {
		return nil, err
	}

	p := printer.New(
		printer.WithHeader(header[0], header[1], header[2]),
		printer.WithFooter(footer[0], footer[1], footer[2]),
		printer.WithApplication(cfg.App.Name, cfg.App.Version),
		printer.WithLogger(log),
	)
	p.Header().Font = bandFont(cfg.Header.Font)
	p.Footer().Font = bandFont(cfg.Footer.Font)
	return p, nil
}

func bandFont(f config.FontConfig) textdoc.Font {
	return textdoc.Font{Family: f.Family, Style: f.Style, Size: f.Size}
}

func newDecorations(cfg *config.Config) ([]pageops.Decoration, error) {
	var out []pageops.Decoration

	if cfg.Stationery != "" {
		s, err := pageops.NewStationery(cfg.Stationery, 1)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	if cfg.Watermark.Text != "" {
		out = append(out, pageops.TextWatermark{
			Text:     cfg.Watermark.Text,
			FontSize: cfg.Watermark.FontSize,
			Opacity:  cfg.Watermark.Opacity,
			Angle:    cfg.Watermark.Angle,
		})
	}

	if cfg.Stamp.Payload != "" {
		kind, err := pageops.ParseStampKind(cfg.Stamp.Kind)
		if err != nil {
			return nil, err
		}
		pos, err := pageops.ParsePosition(cfg.Stamp.Position)
		if err != nil {
			return nil, err
		}
		out = append(out, &pageops.Stamp{
			Payload:   cfg.Stamp.Payload,
			Kind:      kind,
			Size:      cfg.Stamp.Size,
			Position:  pos,
			EveryPage: cfg.Stamp.EveryPage,
		})
	}
	return out, nil
}
