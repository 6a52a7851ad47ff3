package text2png

import (
	"errors"
	"reflect"
	"testing"

	"golang.org/x/image/font"
)

// newTestPlanner builds a planner on the embedded font at 16pt.
func newTestPlanner(t *testing.T, padding, lineSpacing int) *facePlanner {
	t.Helper()
	fnt, err := loadFont("")
	if err != nil {
		t.Fatalf("loadFont: %v", err)
	}
	face, err := newFace(fnt, 16)
	if err != nil {
		t.Fatalf("newFace: %v", err)
	}
	return &facePlanner{font: fnt, face: face, padding: padding, lineSpacing: lineSpacing}
}

func TestPlanLineNonEmptyHasNoClipping(t *testing.T) {
	p := newTestPlanner(t, 4, 0)

	spec, err := p.PlanLine("Hello")
	if err != nil {
		t.Fatalf("PlanLine: %v", err)
	}

	if spec.width <= 2*p.padding {
		t.Errorf("width = %d, want > %d", spec.width, 2*p.padding)
	}
	advance := font.MeasureString(p.face, "Hello").Ceil()
	if spec.width < advance {
		t.Errorf("width = %d clips measured advance %d", spec.width, advance)
	}
	if spec.height <= 0 {
		t.Errorf("height = %d, want positive", spec.height)
	}
	if len(spec.lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(spec.lines))
	}
}

func TestPlanLineEmptyStillHasLineHeight(t *testing.T) {
	p := newTestPlanner(t, 4, 0)

	spec, err := p.PlanLine("")
	if err != nil {
		t.Fatalf("PlanLine: %v", err)
	}

	if want := 2 * p.padding; spec.width != want {
		t.Errorf("width = %d, want %d (padding only)", spec.width, want)
	}
	if want := p.lineHeight() + 2*p.padding; spec.height != want {
		t.Errorf("height = %d, want %d (line height plus padding)", spec.height, want)
	}
}

func TestPlanLineIsDeterministic(t *testing.T) {
	p := newTestPlanner(t, 4, 0)

	first, err := p.PlanLine("determinism")
	if err != nil {
		t.Fatalf("PlanLine: %v", err)
	}
	second, err := p.PlanLine("determinism")
	if err != nil {
		t.Fatalf("PlanLine: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical input produced different specs:\n%+v\n%+v", first, second)
	}
}

func TestPlanLineExpandsTabs(t *testing.T) {
	p := newTestPlanner(t, 0, 0)

	tabbed, err := p.PlanLine("a\tb")
	if err != nil {
		t.Fatalf("PlanLine with tab: %v", err)
	}
	spaced, err := p.PlanLine("a    b")
	if err != nil {
		t.Fatalf("PlanLine with spaces: %v", err)
	}

	if tabbed.width != spaced.width {
		t.Errorf("tab width = %d, four-space width = %d, want equal", tabbed.width, spaced.width)
	}
}

func TestPlanLineRejectsControlCharacters(t *testing.T) {
	p := newTestPlanner(t, 4, 0)

	for _, text := range []string{"bell\x07", "\x1b[31mred", "nul\x00"} {
		if _, err := p.PlanLine(text); !errors.Is(err, ErrUnsupportedCharacter) {
			t.Errorf("PlanLine(%q) error = %v, want ErrUnsupportedCharacter", text, err)
		}
	}
}

func TestPlanLineRejectsMissingGlyphs(t *testing.T) {
	p := newTestPlanner(t, 4, 0)

	// Go Regular has no CJK coverage.
	if _, err := p.PlanLine("漢字"); !errors.Is(err, ErrUnsupportedCharacter) {
		t.Errorf("PlanLine error = %v, want ErrUnsupportedCharacter", err)
	}
}

func TestPlanLinesStacksVertically(t *testing.T) {
	p := newTestPlanner(t, 4, 6)
	texts := []string{"short", "a much longer line", "mid"}

	spec, err := p.PlanLines(texts)
	if err != nil {
		t.Fatalf("PlanLines: %v", err)
	}

	lineHeight := p.lineHeight()
	wantHeight := 3*lineHeight + 2*p.lineSpacing + 2*p.padding
	if spec.height != wantHeight {
		t.Errorf("height = %d, want %d", spec.height, wantHeight)
	}

	widest := font.MeasureString(p.face, "a much longer line").Ceil()
	if want := widest + 2*p.padding; spec.width != want {
		t.Errorf("width = %d, want %d (widest line plus padding)", spec.width, want)
	}

	if len(spec.lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(spec.lines))
	}
	for i := 1; i < len(spec.lines); i++ {
		gap := (spec.lines[i].dot.Y - spec.lines[i-1].dot.Y).Ceil()
		if want := lineHeight + p.lineSpacing; gap != want {
			t.Errorf("baseline gap %d->%d = %d, want %d", i-1, i, gap, want)
		}
	}
}

func TestPlanFixedCanvas(t *testing.T) {
	p := newTestPlanner(t, 0, 0)
	p.canvas = &CanvasSize{Width: 400, Height: 200}
	p.fraction = 0.1

	spec, err := p.PlanLine("centered")
	if err != nil {
		t.Fatalf("PlanLine: %v", err)
	}

	if spec.width != 400 || spec.height != 200 {
		t.Errorf("canvas = %dx%d, want 400x200", spec.width, spec.height)
	}

	// Text should start inside the blank border.
	advance := font.MeasureString(p.face, "centered").Ceil()
	x := spec.lines[0].dot.X.Ceil()
	if x <= 0 || x+advance >= 400 {
		t.Errorf("dot x = %d with advance %d not centered on 400px canvas", x, advance)
	}
}

func TestPlanFixedCanvasRejectsOversizedText(t *testing.T) {
	p := newTestPlanner(t, 0, 0)
	p.canvas = &CanvasSize{Width: 20, Height: 20}
	p.fraction = 0.1

	_, err := p.PlanLine("far too wide for twenty pixels")
	if !errors.Is(err, ErrRender) {
		t.Errorf("PlanLine error = %v, want ErrRender", err)
	}
}
