package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: text2png -f <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a PNG image for each line of a text file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -f, --file <path>         File containing lines of text (required)")
	fmt.Fprintln(w, "  -d, --output-dir <dir>    Directory for output pictures (default: .)")
	fmt.Fprintln(w, "  -c, --config <path>       YAML config file; flags override it")
	fmt.Fprintln(w, "      --clobber             Overwrite existing files (default: skip them)")
	fmt.Fprintln(w, "      --index-names         Name outputs line-0001.png style instead of by content")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Font:")
	fmt.Fprintln(w, "      --font <path>         TTF/OTF font file (default: embedded Go Regular)")
	fmt.Fprintln(w, "  -s, --point-size <f>      Font size in points (default: 16)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Colors:")
	fmt.Fprintln(w, "      --text-color <s>      Text color, name or hex (default: black)")
	fmt.Fprintln(w, "      --background <s>      Background color, name or hex (default: white)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "      --padding <n>         Blank border in pixels per side (default: 4)")
	fmt.Fprintln(w, "      --size <WxH>          Fixed canvas size, e.g. 1024x1024; the point size")
	fmt.Fprintln(w, "                            is then auto-fitted and text centered")
	fmt.Fprintln(w, "      --canvas-padding <f>  Border as canvas fraction with --size (default: 0.10)")
	fmt.Fprintln(w, "      --single-image        Stack all lines into one image")
	fmt.Fprintln(w, "      --line-spacing <n>    Extra pixels between stacked lines")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Lines:")
	fmt.Fprintln(w, "      --skip-comments       Drop '#'/'＃' comment lines and blank lines")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-image timing")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
