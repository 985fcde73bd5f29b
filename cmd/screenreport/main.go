// Command screenreport generates PDF reports from screenplays.
//
// # Usage
//
//	screenreport reports
//	screenreport form location
//	screenreport generate --report location --input heist.json --output locations.pdf
//	screenreport generate -i heist.json -o locations --set includeSynopsis=true --set locations=KITCHEN,GARDEN
//	screenreport print -i notes.md -o notes --title "Production Notes"
//
// # Configuration
//
// Settings are read from screenreport.toml (or .yaml, .json) in the working
// directory, or from the file named by --config, and may be overridden by
// SCREENREPORT_* environment variables:
//
//	[header]
//	left = "title"
//	right = "page-number-of-count"
//
//	[footer]
//	left = "app-name"
//	right = "date-time"
//
//	[watermark]
//	text = "DRAFT"
//
//	[stamp]
//	payload = "https://example.com/heist"
//	kind = "qr"
//
//	[report]
//	includeSynopsis = true
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/lvillar/screenreport/location"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "screenreport: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "screenreport",
		Short:         "Generate PDF reports from screenplays",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./screenreport.{toml,yaml,json})")

	rootCmd.AddCommand(
		newGenerateCmd(&configPath),
		newReportsCmd(),
		newFormCmd(),
		newPrintCmd(&configPath),
	)
	return rootCmd
}
