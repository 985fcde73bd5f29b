// Package config loads the screenreport command configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lvillar/screenreport/pageops"
	"github.com/lvillar/screenreport/printer"
)

// Config holds all command configuration
type Config struct {
	Log        LogConfig
	App        AppConfig
	Header     BandConfig
	Footer     BandConfig
	Watermark  WatermarkConfig
	Stationery string // PDF whose first page is drawn behind every page
	Stamp      StampConfig
	Report     map[string]any // report.<field> values passed to the report
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// AppConfig names the application in headers, footers and PDF metadata.
type AppConfig struct {
	Name    string
	Version string
}

// BandConfig holds the field names of one header or footer band.
type BandConfig struct {
	Left, Center, Right string
	Font                FontConfig
}

// FontConfig selects a core PDF font.
type FontConfig struct {
	Family string
	Style  string
	Size   float64
}

// WatermarkConfig configures the diagonal text watermark. An empty Text
// disables it.
type WatermarkConfig struct {
	Text     string
	FontSize float64
	Opacity  float64
	Angle    float64
}

// StampConfig configures the barcode stamp. An empty Payload disables it.
type StampConfig struct {
	Payload   string
	Kind      string // qr, pdf417
	Position  string // top-left ... bottom-right
	Size      float64
	EveryPage bool
}

// Load loads configuration from a file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with SCREENREPORT_ prefix (e.g., SCREENREPORT_LOG_LEVEL)
// 2. path, or screenreport.{toml,yaml,json} in the working directory when path is empty
// 3. Built-in defaults
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("screenreport")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("SCREENREPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		App: AppConfig{
			Name:    v.GetString("app.name"),
			Version: v.GetString("app.version"),
		},
		Header: band(v, "header"),
		Footer: band(v, "footer"),
		Watermark: WatermarkConfig{
			Text:     v.GetString("watermark.text"),
			FontSize: v.GetFloat64("watermark.font_size"),
			Opacity:  v.GetFloat64("watermark.opacity"),
			Angle:    v.GetFloat64("watermark.angle"),
		},
		Stationery: v.GetString("stationery"),
		Stamp: StampConfig{
			Payload:   v.GetString("stamp.payload"),
			Kind:      v.GetString("stamp.kind"),
			Position:  v.GetString("stamp.position"),
			Size:      v.GetFloat64("stamp.size"),
			EveryPage: v.GetBool("stamp.every_page"),
		},
		Report: v.GetStringMap("report"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func band(v *viper.Viper, key string) BandConfig {
	return BandConfig{
		Left:   v.GetString(key + ".left"),
		Center: v.GetString(key + ".center"),
		Right:  v.GetString(key + ".right"),
		Font: FontConfig{
			Family: v.GetString(key + ".font.family"),
			Style:  v.GetString(key + ".font.style"),
			Size:   v.GetFloat64(key + ".font.size"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")

	v.SetDefault("app.name", "screenreport")
	v.SetDefault("app.version", "dev")

	v.SetDefault("header.left", printer.Title.String())
	v.SetDefault("header.center", printer.Nothing.String())
	v.SetDefault("header.right", printer.PageNumberOfCount.String())
	v.SetDefault("footer.left", printer.AppName.String())
	v.SetDefault("footer.center", printer.Nothing.String())
	v.SetDefault("footer.right", printer.DateTime.String())
	for _, b := range []string{"header", "footer"} {
		v.SetDefault(b+".font.family", printer.DefaultBandFont.Family)
		v.SetDefault(b+".font.style", printer.DefaultBandFont.Style)
		v.SetDefault(b+".font.size", printer.DefaultBandFont.Size)
	}

	v.SetDefault("watermark.font_size", 60)
	v.SetDefault("watermark.opacity", 0.3)
	v.SetDefault("watermark.angle", 45)

	v.SetDefault("stamp.kind", "qr")
	v.SetDefault("stamp.position", "bottom-right")
	v.SetDefault("stamp.size", 48)
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	for name, b := range map[string]BandConfig{"header": c.Header, "footer": c.Footer} {
		if _, err := b.Fields(); err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
		if b.Font.Size <= 0 {
			return fmt.Errorf("config: %s.font.size must be positive", name)
		}
	}
	if c.Watermark.Opacity < 0 || c.Watermark.Opacity > 1 {
		return fmt.Errorf("config: watermark.opacity must be between 0 and 1, got %v", c.Watermark.Opacity)
	}
	if _, err := pageops.ParseStampKind(c.Stamp.Kind); err != nil {
		return fmt.Errorf("config: stamp.kind: %w", err)
	}
	if _, err := pageops.ParsePosition(c.Stamp.Position); err != nil {
		return fmt.Errorf("config: stamp.position: %w", err)
	}
	return nil
}

// Fields parses the left, center and right field names.
func (b BandConfig) Fields() ([3]printer.Field, error) {
	var out [3]printer.Field
	for i, name := range []string{b.Left, b.Center, b.Right} {
		f, err := printer.ParseField(name)
		if err != nil {
			return out, err
		}
		out[i] = f
	}
	return out, nil
}
