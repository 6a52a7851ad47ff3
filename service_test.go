package text2png

import (
	"context"
	"errors"
	"fmt"
	"image"
	"testing"
)

// fakeEncoder lets tests fail the encode stage.
type fakeEncoder struct {
	err   error
	calls int
}

func (f *fakeEncoder) Encode(img image.Image) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte("fake"), nil
}

// fakePlanner returns a canned spec.
type fakePlanner struct {
	spec *layoutSpec
	err  error
}

func (f *fakePlanner) PlanLine(text string) (*layoutSpec, error)     { return f.spec, f.err }
func (f *fakePlanner) PlanLines(texts []string) (*layoutSpec, error) { return f.spec, f.err }

func TestServiceEncodeFailurePropagates(t *testing.T) {
	svc := newTestService(t)
	svc.encoder = &fakeEncoder{err: fmt.Errorf("%w: disk full", ErrEncode)}

	_, err := svc.RenderLine(context.Background(), "Hello")
	if !errors.Is(err, ErrEncode) {
		t.Errorf("RenderLine error = %v, want ErrEncode", err)
	}
}

func TestServicePlannerFailurePropagates(t *testing.T) {
	svc := newTestService(t)
	enc := &fakeEncoder{}
	svc.encoder = enc
	svc.planner = &fakePlanner{err: fmt.Errorf("%w: boom", ErrRender)}

	_, err := svc.RenderLine(context.Background(), "Hello")
	if !errors.Is(err, ErrRender) {
		t.Errorf("RenderLine error = %v, want ErrRender", err)
	}
	if enc.calls != 0 {
		t.Errorf("encoder ran %d times after planning failed, want 0", enc.calls)
	}
}

func TestServiceHonorsContextCancellation(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.RenderLine(ctx, "Hello")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RenderLine error = %v, want context.Canceled", err)
	}
}

func TestServiceReportsSpecDimensions(t *testing.T) {
	svc := newTestService(t)
	svc.planner = &fakePlanner{spec: &layoutSpec{width: 33, height: 21}}

	out, err := svc.RenderLine(context.Background(), "whatever")
	if err != nil {
		t.Fatalf("RenderLine: %v", err)
	}
	if out.Width != 33 || out.Height != 21 {
		t.Errorf("Rendered = %dx%d, want 33x21", out.Width, out.Height)
	}
}

func TestRenderLinesMatchesLineCount(t *testing.T) {
	svc := newTestService(t, WithPadding(2), WithLineSpacing(3))

	single, err := svc.RenderLine(context.Background(), "one")
	if err != nil {
		t.Fatalf("RenderLine: %v", err)
	}
	stacked, err := svc.RenderLines(context.Background(), []string{"one", "two", "three"})
	if err != nil {
		t.Fatalf("RenderLines: %v", err)
	}

	lineHeight := single.Height - 2*2
	wantHeight := 3*lineHeight + 2*3 + 2*2
	if stacked.Height != wantHeight {
		t.Errorf("stacked height = %d, want %d", stacked.Height, wantHeight)
	}
}
