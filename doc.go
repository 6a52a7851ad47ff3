// Package text2png renders lines of plain text as PNG images.
//
// # Quick Start
//
// Create a service and render a line:
//
//	svc, err := text2png.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := svc.RenderLine(ctx, "Hello")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.png", out.PNG, 0644)
//
// The result contains the encoded PNG bytes (out.PNG) and the pixel
// dimensions of the canvas (out.Width, out.Height). Use RenderLines to stack
// several lines into a single image.
//
// # Rendering Pipeline
//
// Each render follows three stages:
//
//  1. Layout: measure the text with the font face and compute the canvas
//     geometry (width, height, baselines), including padding.
//  2. Draw: allocate an RGBA canvas, fill the background, draw each line's
//     glyphs at its baseline.
//  3. Encode: serialize the canvas as PNG.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := text2png.New(
//	    text2png.WithFontFile("/path/to/font.ttf"),
//	    text2png.WithPointSize(32),
//	    text2png.WithColors(color.Black, color.White),
//	    text2png.WithPadding(8),
//	)
//
// Without WithFontFile the embedded Go Regular font is used, so the package
// works out of the box with no font files installed.
//
// # Fixed-Canvas Mode
//
// By default each canvas is sized to fit its text at the configured point
// size. WithFixedCanvas switches to the inverse: every canvas has the same
// dimensions, the point size is chosen so the largest line still fits inside
// the padded border, and text is centered. Pick the fitted size with
// FitPointSize before constructing the service:
//
//	size := text2png.CanvasSize{Width: 1024, Height: 1024}
//	pt, err := text2png.FitPointSize("", lines, size, 0.10)
//	svc, err := text2png.New(
//	    text2png.WithPointSize(pt),
//	    text2png.WithFixedCanvas(size, 0.10),
//	)
//
// # Character Policy
//
// Tab characters are expanded to four spaces before measuring. Any other
// control character, and any rune the font has no glyph for, is rejected
// with ErrUnsupportedCharacter rather than silently drawn as a replacement
// box.
package text2png
