package text2png

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
)

// Default rendering configuration.
const (
	DefaultPointSize      = 16.0
	DefaultPadding        = 4
	DefaultCanvasFraction = 0.10
)

// fontDPI is the resolution glyphs are rasterized at. Point sizes map 1:1 to
// pixels at 72 DPI, which is what every measurement in this package assumes.
const fontDPI = 72

// tabWidth is the number of spaces a tab character expands to.
const tabWidth = 4

// canvasSizeRe matches fixed canvas dimensions like "1024x768".
var canvasSizeRe = regexp.MustCompile(`^(\d+)x(\d+)$`)

// CanvasSize is a fixed canvas dimension in pixels.
type CanvasSize struct {
	Width  int
	Height int
}

// ParseCanvasSize parses a "WIDTHxHEIGHT" specification like "1024x1024".
func ParseCanvasSize(s string) (CanvasSize, error) {
	m := canvasSizeRe.FindStringSubmatch(s)
	if m == nil {
		return CanvasSize{}, fmt.Errorf("%w: %q (want WIDTHxHEIGHT, e.g. 1024x1024)", ErrInvalidCanvasSize, s)
	}
	width, err := strconv.Atoi(m[1])
	if err != nil {
		return CanvasSize{}, fmt.Errorf("%w: width in %q: %v", ErrInvalidCanvasSize, s, err)
	}
	height, err := strconv.Atoi(m[2])
	if err != nil {
		return CanvasSize{}, fmt.Errorf("%w: height in %q: %v", ErrInvalidCanvasSize, s, err)
	}
	size := CanvasSize{Width: width, Height: height}
	return size, size.Validate()
}

// Validate checks that both dimensions are positive.
func (c CanvasSize) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %s (dimensions must be positive)", ErrInvalidCanvasSize, c)
	}
	return nil
}

// String returns the "WIDTHxHEIGHT" form.
func (c CanvasSize) String() string {
	return fmt.Sprintf("%dx%d", c.Width, c.Height)
}

// Rendered is one finished image.
type Rendered struct {
	PNG    []byte // encoded image bytes
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	fontPath    string
	pointSize   float64
	foreground  color.Color
	background  color.Color
	padding     int
	lineSpacing int
	canvas      *CanvasSize
	fraction    float64
}

// WithFontFile sets the TTF/OTF font file to render with.
// An empty path selects the embedded Go Regular font.
func WithFontFile(path string) Option {
	return func(s *Service) {
		s.cfg.fontPath = path
	}
}

// WithPointSize sets the font point size.
func WithPointSize(pt float64) Option {
	return func(s *Service) {
		s.cfg.pointSize = pt
	}
}

// WithColors sets the text and background colors.
func WithColors(foreground, background color.Color) Option {
	return func(s *Service) {
		s.cfg.foreground = foreground
		s.cfg.background = background
	}
}

// WithPadding sets the blank border, in pixels, added on every side of the
// measured text.
func WithPadding(px int) Option {
	return func(s *Service) {
		s.cfg.padding = px
	}
}

// WithLineSpacing sets the extra vertical pixels between lines when several
// lines are stacked into one image.
func WithLineSpacing(px int) Option {
	return func(s *Service) {
		s.cfg.lineSpacing = px
	}
}

// WithFixedCanvas switches to fixed-canvas mode: every image has the given
// dimensions, text is centered, and fraction (0 <= fraction < 1) of each
// dimension is kept as a blank border. WithPadding is ignored in this mode.
func WithFixedCanvas(size CanvasSize, fraction float64) Option {
	return func(s *Service) {
		c := size
		s.cfg.canvas = &c
		s.cfg.fraction = fraction
	}
}

// validate checks the assembled configuration before any font work happens.
func (c *serviceConfig) validate() error {
	if c.pointSize <= 0 {
		return fmt.Errorf("%w: %g (must be positive)", ErrInvalidPointSize, c.pointSize)
	}
	if c.padding < 0 {
		return fmt.Errorf("%w: %d (must not be negative)", ErrInvalidPadding, c.padding)
	}
	if c.lineSpacing < 0 {
		return fmt.Errorf("%w: %d (must not be negative)", ErrInvalidLineSpacing, c.lineSpacing)
	}
	if c.canvas != nil {
		if err := c.canvas.Validate(); err != nil {
			return err
		}
		if c.fraction < 0 || c.fraction >= 1 {
			return fmt.Errorf("%w: canvas fraction %g (must be in [0, 1))", ErrInvalidPadding, c.fraction)
		}
	}
	return nil
}
