package text2png

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// layoutSpec is the computed pixel geometry for one canvas: the dimensions
// to allocate and the drawing position of every line. The planner guarantees
// the dimensions are large enough that no glyph is clipped.
type layoutSpec struct {
	width  int
	height int
	lines  []placedLine
}

// placedLine is one line of normalized text and the baseline dot to start
// drawing it at.
type placedLine struct {
	text string
	dot  fixed.Point26_6
}

// facePlanner computes layout specs by measuring text against a font face.
// Output is a pure function of the input text and the fields below.
type facePlanner struct {
	font        *sfnt.Font
	face        font.Face
	padding     int
	lineSpacing int

	// canvas selects fixed-canvas mode: dimensions are constant, text is
	// centered, and fraction of each dimension stays blank.
	canvas   *CanvasSize
	fraction float64

	buf sfnt.Buffer
}

// PlanLine computes the spec for a single line on its own canvas.
func (p *facePlanner) PlanLine(text string) (*layoutSpec, error) {
	return p.plan([]string{text})
}

// PlanLines computes the spec for several lines stacked on one canvas.
func (p *facePlanner) PlanLines(texts []string) (*layoutSpec, error) {
	return p.plan(texts)
}

func (p *facePlanner) plan(texts []string) (*layoutSpec, error) {
	normalized := make([]string, len(texts))
	advances := make([]fixed.Int26_6, len(texts))
	widest := 0
	for i, text := range texts {
		norm, err := normalizeText(text)
		if err != nil {
			return nil, err
		}
		adv, err := p.measure(norm)
		if err != nil {
			return nil, err
		}
		normalized[i] = norm
		advances[i] = adv
		if w := adv.Ceil(); w > widest {
			widest = w
		}
	}

	lineHeight := p.lineHeight()
	blockHeight := 0
	if n := len(texts); n > 0 {
		blockHeight = n*lineHeight + (n-1)*p.lineSpacing
	}

	if p.canvas != nil {
		return p.planFixed(normalized, advances, widest, blockHeight, lineHeight)
	}

	width := widest + 2*p.padding
	if width < 1 {
		width = 1
	}
	height := blockHeight + 2*p.padding
	if height < 1 {
		height = 1
	}

	ascent := p.face.Metrics().Ascent.Ceil()
	lines := make([]placedLine, len(normalized))
	for i, norm := range normalized {
		y := p.padding + i*(lineHeight+p.lineSpacing) + ascent
		lines[i] = placedLine{text: norm, dot: fixed.P(p.padding, y)}
	}

	return &layoutSpec{width: width, height: height, lines: lines}, nil
}

// planFixed centers the text block on a constant-size canvas, keeping
// fraction of each dimension as a blank border.
func (p *facePlanner) planFixed(normalized []string, advances []fixed.Int26_6, widest, blockHeight, lineHeight int) (*layoutSpec, error) {
	width, height := p.canvas.Width, p.canvas.Height
	borderW := int(p.fraction * float64(width) / 2)
	borderH := int(p.fraction * float64(height) / 2)

	if widest > width-2*borderW || blockHeight > height-2*borderH {
		return nil, fmt.Errorf("%w: text block %dx%d exceeds usable canvas area of %s",
			ErrRender, widest, blockHeight, p.canvas)
	}

	ascent := p.face.Metrics().Ascent.Ceil()
	top := (height - blockHeight) / 2
	lines := make([]placedLine, len(normalized))
	for i, norm := range normalized {
		x := (width - advances[i].Ceil()) / 2
		y := top + i*(lineHeight+p.lineSpacing) + ascent
		lines[i] = placedLine{text: norm, dot: fixed.P(x, y)}
	}

	return &layoutSpec{width: width, height: height, lines: lines}, nil
}

// lineHeight is the vertical extent reserved for one line. The face's
// recommended line advance is used, widened to ascent+descent when a face
// reports an advance too small to hold its own glyphs.
func (p *facePlanner) lineHeight() int {
	m := p.face.Metrics()
	h := m.Height.Ceil()
	if ad := (m.Ascent + m.Descent).Ceil(); ad > h {
		h = ad
	}
	return h
}

// measure returns the horizontal advance of the normalized text, verifying
// first that the font has a glyph for every rune. Missing coverage is
// reported rather than drawn as a replacement box.
func (p *facePlanner) measure(norm string) (fixed.Int26_6, error) {
	for _, r := range norm {
		idx, err := p.font.GlyphIndex(&p.buf, r)
		if err != nil {
			return 0, fmt.Errorf("%w: looking up %q: %v", ErrRender, r, err)
		}
		if idx == 0 {
			return 0, fmt.Errorf("%w: font has no glyph for %q", ErrUnsupportedCharacter, r)
		}
	}
	return font.MeasureString(p.face, norm), nil
}

// normalizeText expands tabs to a fixed-width run of spaces and rejects any
// other control character.
func normalizeText(text string) (string, error) {
	if !strings.ContainsFunc(text, unicode.IsControl) {
		return text, nil
	}
	var b strings.Builder
	for _, r := range text {
		switch {
		case r == '\t':
			b.WriteString(strings.Repeat(" ", tabWidth))
		case unicode.IsControl(r):
			return "", fmt.Errorf("%w: control character %q", ErrUnsupportedCharacter, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}
