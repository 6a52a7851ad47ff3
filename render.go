package text2png

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
)

// rasterRenderer draws planned layouts onto RGBA canvases.
type rasterRenderer struct {
	face       font.Face
	foreground color.Color
	background color.Color
}

// Render allocates a canvas of the planned dimensions, fills the background,
// and draws each line's glyphs at its baseline.
func (r *rasterRenderer) Render(spec *layoutSpec) (*image.RGBA, error) {
	if spec.width <= 0 || spec.height <= 0 {
		return nil, fmt.Errorf("%w: invalid canvas dimensions %dx%d", ErrRender, spec.width, spec.height)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, spec.width, spec.height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)

	src := image.NewUniform(r.foreground)
	for _, line := range spec.lines {
		d := &font.Drawer{
			Dst:  canvas,
			Src:  src,
			Face: r.face,
			Dot:  line.dot,
		}
		d.DrawString(line.text)
	}

	return canvas, nil
}

// pngEncoder serializes canvases with the standard PNG encoder.
type pngEncoder struct{}

func (pngEncoder) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}
