package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mawillcockson/text2png"
	"github.com/mawillcockson/text2png/internal/colorutil"
	"github.com/mawillcockson/text2png/internal/config"
	"github.com/mawillcockson/text2png/internal/fileutil"
	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput    = errors.New("no input file specified")
	ErrWriteImage = errors.New("failed to write image file")
)

// filePermissions is the mode for written images (rw-r--r--).
const filePermissions = 0o644

// generator tracks one invocation's output state.
type generator struct {
	cfg     *config.Config
	flags   *generateFlags
	namer   *fileutil.Namer
	stderr  io.Writer
	written int
	skipped int
}

// runGenerate orchestrates the whole invocation: config, colors, line
// reading, rendering, and file writing.
func runGenerate(ctx context.Context, flags *generateFlags, fs *flag.FlagSet, stderr io.Writer) error {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags win over config values.
	mergeFlags(flags, fs, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Input.Path == "" {
		return fmt.Errorf("%w (use -f <file>)", ErrNoInput)
	}

	foreground, err := colorutil.Parse(cfg.Colors.Text)
	if err != nil {
		return fmt.Errorf("text color: %w", err)
	}
	background, err := colorutil.Parse(cfg.Colors.Background)
	if err != nil {
		return fmt.Errorf("background color: %w", err)
	}

	if err := fileutil.EnsureDir(cfg.Output.Dir); err != nil {
		return err
	}

	src, err := text2png.OpenLines(cfg.Input.Path, text2png.LineOptions{
		SkipComments: cfg.Lines.SkipComments,
	})
	if err != nil {
		return err
	}
	defer src.Close()

	gen := &generator{
		cfg:    cfg,
		flags:  flags,
		namer:  fileutil.NewNamer(cfg.Output.Dir, cfg.Output.IndexNames),
		stderr: stderr,
	}

	opts := []text2png.Option{
		text2png.WithFontFile(cfg.Font.Path),
		text2png.WithColors(foreground, background),
		text2png.WithPadding(cfg.Layout.Padding),
		text2png.WithLineSpacing(cfg.Layout.LineSpacing),
	}

	// The default mode streams: each line is read, rendered, and written
	// before the next one is looked at. Fixed-canvas and single-image
	// modes need every line up front instead.
	if cfg.Layout.CanvasSize == "" && !cfg.Layout.SingleImage {
		opts = append(opts, text2png.WithPointSize(cfg.Font.PointSize))
		svc, err := text2png.New(opts...)
		if err != nil {
			return err
		}
		for src.Scan() {
			if err := gen.renderAndWrite(ctx, svc, src.Line()); err != nil {
				return err
			}
		}
		if err := src.Err(); err != nil {
			return err
		}
		return gen.summarize()
	}

	var lines []text2png.Line
	for src.Scan() {
		lines = append(lines, src.Line())
	}
	if err := src.Err(); err != nil {
		return err
	}
	if len(lines) == 0 {
		return gen.summarize()
	}
	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
	}

	pointSize := cfg.Font.PointSize
	if cfg.Layout.CanvasSize != "" {
		size, err := text2png.ParseCanvasSize(cfg.Layout.CanvasSize)
		if err != nil {
			return err
		}
		if cfg.Layout.SingleImage {
			pointSize, err = text2png.FitPointSizeStacked(cfg.Font.Path, texts, size,
				cfg.Layout.CanvasFraction, cfg.Layout.LineSpacing)
		} else {
			pointSize, err = text2png.FitPointSize(cfg.Font.Path, texts, size,
				cfg.Layout.CanvasFraction)
		}
		if err != nil {
			return err
		}
		if flags.common.verbose {
			fmt.Fprintf(stderr, "Fitted point size: %g\n", pointSize)
		}
		opts = append(opts, text2png.WithFixedCanvas(size, cfg.Layout.CanvasFraction))
	}
	opts = append(opts, text2png.WithPointSize(pointSize))

	svc, err := text2png.New(opts...)
	if err != nil {
		return err
	}

	if cfg.Layout.SingleImage {
		start := time.Now()
		out, err := svc.RenderLines(ctx, texts)
		if err != nil {
			return err
		}
		path := filepath.Join(cfg.Output.Dir, inputStem(cfg.Input.Path)+".png")
		wrote, err := gen.write(path, out.PNG)
		if err != nil {
			return err
		}
		if wrote {
			gen.report(path, out, start)
		}
		return gen.summarize()
	}

	for _, line := range lines {
		if err := gen.renderAndWrite(ctx, svc, line); err != nil {
			return err
		}
	}
	return gen.summarize()
}

// renderAndWrite produces and stores the image for a single line.
func (g *generator) renderAndWrite(ctx context.Context, svc *text2png.Service, line text2png.Line) error {
	start := time.Now()
	out, err := svc.RenderLine(ctx, line.Text)
	if err != nil {
		return fmt.Errorf("line %d: %w", line.Index, err)
	}
	path := g.namer.Path(line.Index, line.Text)
	wrote, err := g.write(path, out.PNG)
	if err != nil {
		return err
	}
	if wrote {
		g.report(path, out, start)
	}
	return nil
}

// write stores data at path, honoring the clobber policy. Returns whether a
// file was written.
func (g *generator) write(path string, data []byte) (bool, error) {
	if err := fileutil.CheckConflict(path); err != nil {
		return false, err
	}
	if !g.cfg.Output.Clobber && fileutil.FileExists(path) {
		if !g.flags.common.quiet {
			fmt.Fprintf(g.stderr, "Not clobbering %s\n", path)
		}
		g.skipped++
		return false, nil
	}
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrWriteImage, path, err)
	}
	g.written++
	return true, nil
}

// report prints per-image progress when verbose is on.
func (g *generator) report(path string, out *text2png.Rendered, start time.Time) {
	if g.flags.common.verbose {
		fmt.Fprintf(g.stderr, "%s (%dx%d) in %s\n", path, out.Width, out.Height, time.Since(start).Round(time.Millisecond))
	}
}

// summarize prints the closing notice.
func (g *generator) summarize() error {
	if g.written == 0 && g.skipped == 0 && !g.flags.common.quiet {
		fmt.Fprintln(g.stderr, "No pictures will be generated")
	}
	return nil
}

// mergeFlags overlays explicitly-set CLI flags onto the config.
func mergeFlags(f *generateFlags, fs *flag.FlagSet, cfg *config.Config) {
	if fs.Changed("file") {
		cfg.Input.Path = f.io.file
	}
	if fs.Changed("output-dir") {
		cfg.Output.Dir = f.io.outputDir
	}
	if fs.Changed("clobber") {
		cfg.Output.Clobber = f.io.clobber
	}
	if fs.Changed("index-names") {
		cfg.Output.IndexNames = f.io.indexNames
	}
	if fs.Changed("font") {
		cfg.Font.Path = f.font.font
	}
	if fs.Changed("point-size") {
		cfg.Font.PointSize = f.font.pointSize
	}
	if fs.Changed("text-color") {
		cfg.Colors.Text = f.colors.textColor
	}
	if fs.Changed("background") {
		cfg.Colors.Background = f.colors.background
	}
	if fs.Changed("size") {
		cfg.Layout.CanvasSize = f.layout.size
	}
	if fs.Changed("padding") {
		cfg.Layout.Padding = f.layout.padding
	}
	if fs.Changed("canvas-padding") {
		cfg.Layout.CanvasFraction = f.layout.canvasPadding
	}
	if fs.Changed("line-spacing") {
		cfg.Layout.LineSpacing = f.layout.lineSpacing
	}
	if fs.Changed("single-image") {
		cfg.Layout.SingleImage = f.layout.singleImage
	}
	if fs.Changed("skip-comments") {
		cfg.Lines.SkipComments = f.layout.skipComments
	}
}

// inputStem returns the input file's base name without extension, used to
// name the single-image output.
func inputStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
