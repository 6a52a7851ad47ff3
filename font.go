package text2png

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// loadFont reads and parses a TTF/OTF font file. An empty path selects the
// embedded Go Regular font so the pipeline needs no fonts installed.
func loadFont(path string) (*sfnt.Font, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrFontNotFound, path)
			}
			return nil, fmt.Errorf("reading font file %s: %w", path, err)
		}
		data = b
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontParse, fontName(path), err)
	}
	return fnt, nil
}

// newFace builds a face for the font at the given point size.
func newFace(fnt *sfnt.Font, pointSize float64) (font.Face, error) {
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    pointSize,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: creating %gpt face: %v", ErrFontParse, pointSize, err)
	}
	return face, nil
}

func fontName(path string) string {
	if path == "" {
		return "embedded Go Regular"
	}
	return path
}
