package text2png

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

// fitReferenceSize is the point size text is measured at before scaling down
// to the canvas. Measuring large and dividing keeps the integer rounding of
// glyph advances from dominating the result.
const fitReferenceSize = 1000

// FitPointSize returns the largest point size at which every line of texts,
// rendered one per image, fits inside the usable area of a fixed canvas.
// fraction (0 <= fraction < 1) of each dimension is reserved as a blank
// border. An empty fontPath selects the embedded Go Regular font.
//
// Lines with no drawable extent (all empty) yield a point size of 1.
func FitPointSize(fontPath string, texts []string, size CanvasSize, fraction float64) (float64, error) {
	return fitPointSize(fontPath, texts, size, fraction, 1, 0)
}

// FitPointSizeStacked is FitPointSize for single-image mode: all lines are
// stacked on one canvas with lineSpacing extra pixels between them, so the
// fitted size must leave room for the whole block.
func FitPointSizeStacked(fontPath string, texts []string, size CanvasSize, fraction float64, lineSpacing int) (float64, error) {
	stacked := len(texts)
	if stacked < 1 {
		stacked = 1
	}
	return fitPointSize(fontPath, texts, size, fraction, stacked, lineSpacing)
}

func fitPointSize(fontPath string, texts []string, size CanvasSize, fraction float64, stacked, lineSpacing int) (float64, error) {
	if err := size.Validate(); err != nil {
		return 0, err
	}
	if fraction < 0 || fraction >= 1 {
		return 0, fmt.Errorf("%w: canvas fraction %g (must be in [0, 1))", ErrInvalidPadding, fraction)
	}

	fnt, err := loadFont(fontPath)
	if err != nil {
		return 0, err
	}
	face, err := newFace(fnt, fitReferenceSize)
	if err != nil {
		return 0, err
	}
	planner := &facePlanner{font: fnt, face: face}

	var widest fixed.Int26_6
	for _, text := range texts {
		norm, err := normalizeText(text)
		if err != nil {
			return 0, err
		}
		adv, err := planner.measure(norm)
		if err != nil {
			return 0, err
		}
		if adv > widest {
			widest = adv
		}
	}
	if widest == 0 {
		return 1, nil
	}

	// Pixels per point, derived from the reference measurement. The whole
	// stacked block has to fit vertically, not just one line.
	widthPerPt := float64(widest.Ceil()) / fitReferenceSize
	heightPerPt := float64(stacked*planner.lineHeight()) / fitReferenceSize

	usableW := (1 - fraction) * float64(size.Width)
	usableH := (1-fraction)*float64(size.Height) - float64((stacked-1)*lineSpacing)
	if usableW <= 0 || usableH <= 0 {
		return 1, nil
	}

	// The -1 guards against advances rounding up at the fitted size.
	pt := math.Floor(math.Min(usableW/widthPerPt, usableH/heightPerPt)) - 1
	if pt < 1 {
		pt = 1
	}
	return pt, nil
}
