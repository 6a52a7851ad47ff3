// Package config loads the optional YAML configuration file. CLI flags are
// merged over it afterwards, with flags winning.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mawillcockson/text2png"
	"github.com/mawillcockson/text2png/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds all configuration for image generation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Font   FontConfig   `yaml:"font"`
	Colors ColorsConfig `yaml:"colors"`
	Layout LayoutConfig `yaml:"layout"`
	Lines  LinesConfig  `yaml:"lines"`
}

// InputConfig defines the input source.
type InputConfig struct {
	Path string `yaml:"path"` // Input text file (flag -f overrides)
}

// OutputConfig defines the output destination and naming.
type OutputConfig struct {
	Dir        string `yaml:"dir"`        // Output directory (default ".")
	Clobber    bool   `yaml:"clobber"`    // Overwrite existing files
	IndexNames bool   `yaml:"indexNames"` // Name by line number, not content
}

// FontConfig defines the font and its size.
type FontConfig struct {
	Path      string  `yaml:"path"`      // TTF/OTF file (empty = embedded Go Regular)
	PointSize float64 `yaml:"pointSize"` // Font size in points
}

// ColorsConfig defines text and background colors, as names or hex.
type ColorsConfig struct {
	Text       string `yaml:"text"`
	Background string `yaml:"background"`
}

// LayoutConfig defines canvas geometry.
type LayoutConfig struct {
	Padding        int     `yaml:"padding"`        // Pixels per side (auto-size mode)
	LineSpacing    int     `yaml:"lineSpacing"`    // Extra pixels between stacked lines
	SingleImage    bool    `yaml:"singleImage"`    // Stack all lines into one image
	CanvasSize     string  `yaml:"canvasSize"`     // "WxH" = fixed-canvas mode (empty = auto)
	CanvasFraction float64 `yaml:"canvasFraction"` // Blank border fraction in fixed mode
}

// LinesConfig defines input filtering.
type LinesConfig struct {
	SkipComments bool `yaml:"skipComments"` // Drop '#'/'＃' and blank lines
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Dir: "."},
		Font:   FontConfig{PointSize: text2png.DefaultPointSize},
		Colors: ColorsConfig{Text: "black", Background: "white"},
		Layout: LayoutConfig{
			Padding:        text2png.DefaultPadding,
			CanvasFraction: text2png.DefaultCanvasFraction,
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. Unknown fields are
// rejected so typos surface instead of being ignored.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Color strings are validated later, when they
// are parsed into colors.
func (c *Config) Validate() error {
	if c.Font.PointSize <= 0 {
		return fmt.Errorf("%w: %g (must be positive)", text2png.ErrInvalidPointSize, c.Font.PointSize)
	}
	if c.Layout.Padding < 0 {
		return fmt.Errorf("%w: %d (must not be negative)", text2png.ErrInvalidPadding, c.Layout.Padding)
	}
	if c.Layout.LineSpacing < 0 {
		return fmt.Errorf("%w: %d (must not be negative)", text2png.ErrInvalidLineSpacing, c.Layout.LineSpacing)
	}
	if c.Layout.CanvasFraction < 0 || c.Layout.CanvasFraction >= 1 {
		return fmt.Errorf("%w: canvas fraction %g (must be in [0, 1))", text2png.ErrInvalidPadding, c.Layout.CanvasFraction)
	}
	if c.Layout.CanvasSize != "" {
		if _, err := text2png.ParseCanvasSize(c.Layout.CanvasSize); err != nil {
			return err
		}
	}
	return nil
}
