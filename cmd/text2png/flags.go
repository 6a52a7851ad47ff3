package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by every run.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// ioFlags holds input/output flags.
type ioFlags struct {
	file       string
	outputDir  string
	clobber    bool
	indexNames bool
}

// fontFlags holds font selection flags.
type fontFlags struct {
	font      string
	pointSize float64
}

// colorFlags holds color flags.
type colorFlags struct {
	textColor  string
	background string
}

// layoutFlags holds canvas geometry flags.
type layoutFlags struct {
	size          string
	padding       int
	canvasPadding float64
	lineSpacing   int
	singleImage   bool
	skipComments  bool
}

// generateFlags holds all flags for an invocation.
type generateFlags struct {
	common  commonFlags
	io      ioFlags
	font    fontFlags
	colors  colorFlags
	layout  layoutFlags
	help    bool
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-image timing")
}

// addIOFlags adds input/output flags to a FlagSet.
func addIOFlags(fs *flag.FlagSet, f *ioFlags) {
	fs.StringVarP(&f.file, "file", "f", "", "file containing lines of text to make pictures of")
	fs.StringVarP(&f.outputDir, "output-dir", "d", ".", "directory in which to output pictures")
	fs.BoolVar(&f.clobber, "clobber", false, "overwrite existing files")
	fs.BoolVar(&f.indexNames, "index-names", false, "name outputs by line number instead of content")
}

// addFontFlags adds font flags to a FlagSet.
func addFontFlags(fs *flag.FlagSet, f *fontFlags) {
	fs.StringVar(&f.font, "font", "", "TTF/OTF font file (default: embedded Go Regular)")
	fs.Float64VarP(&f.pointSize, "point-size", "s", 16, "font size in points")
}

// addColorFlags adds color flags to a FlagSet.
func addColorFlags(fs *flag.FlagSet, f *colorFlags) {
	fs.StringVar(&f.textColor, "text-color", "black", "color to use for the text")
	fs.StringVar(&f.background, "background", "white", "color for the background")
}

// addLayoutFlags adds canvas geometry flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.StringVar(&f.size, "size", "", "fixed canvas size in pixels, e.g. 1024x1024 (default: sized to text)")
	fs.IntVar(&f.padding, "padding", 4, "blank border in pixels per side")
	fs.Float64Var(&f.canvasPadding, "canvas-padding", 0.10, "blank border as a canvas fraction (with --size)")
	fs.IntVar(&f.lineSpacing, "line-spacing", 0, "extra pixels between lines (with --single-image)")
	fs.BoolVar(&f.singleImage, "single-image", false, "stack all lines into one image")
	fs.BoolVar(&f.skipComments, "skip-comments", false, "drop '#' comment lines and blank lines")
}

// parseFlags parses the command line.
func parseFlags(args []string) (*generateFlags, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("text2png", flag.ContinueOnError)
	f := &generateFlags{}

	addCommonFlags(fs, &f.common)
	addIOFlags(fs, &f.io)
	addFontFlags(fs, &f.font)
	addColorFlags(fs, &f.colors)
	addLayoutFlags(fs, &f.layout)
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
	fs.BoolVar(&f.version, "version", false, "show version")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs, nil
}
