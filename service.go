package text2png

import (
	"context"
	"fmt"
	"image"
	"image/color"
)

// linePlanner computes canvas geometry for text.
type linePlanner interface {
	PlanLine(text string) (*layoutSpec, error)
	PlanLines(texts []string) (*layoutSpec, error)
}

// lineRenderer draws a planned layout onto a pixel canvas.
type lineRenderer interface {
	Render(spec *layoutSpec) (*image.RGBA, error)
}

// imageEncoder serializes a finished canvas.
type imageEncoder interface {
	Encode(img image.Image) ([]byte, error)
}

// Service orchestrates the text-to-image pipeline.
type Service struct {
	cfg      serviceConfig
	planner  linePlanner
	renderer lineRenderer
	encoder  imageEncoder
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithFontFile, WithPointSize).
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			pointSize:  DefaultPointSize,
			foreground: color.Black,
			background: color.White,
			padding:    DefaultPadding,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.cfg.validate(); err != nil {
		return nil, err
	}

	fnt, err := loadFont(s.cfg.fontPath)
	if err != nil {
		return nil, err
	}
	face, err := newFace(fnt, s.cfg.pointSize)
	if err != nil {
		return nil, err
	}

	// Wire default stages if not injected (e.g., by tests).
	if s.planner == nil {
		s.planner = &facePlanner{
			font:        fnt,
			face:        face,
			padding:     s.cfg.padding,
			lineSpacing: s.cfg.lineSpacing,
			canvas:      s.cfg.canvas,
			fraction:    s.cfg.fraction,
		}
	}
	if s.renderer == nil {
		s.renderer = &rasterRenderer{
			face:       face,
			foreground: s.cfg.foreground,
			background: s.cfg.background,
		}
	}
	if s.encoder == nil {
		s.encoder = pngEncoder{}
	}

	return s, nil
}

// RenderLine renders one line of text as a PNG image. Empty text still
// produces a full-height canvas so output sequencing mirrors input lines.
func (s *Service) RenderLine(ctx context.Context, text string) (*Rendered, error) {
	spec, err := s.planner.PlanLine(text)
	if err != nil {
		return nil, fmt.Errorf("planning layout: %w", err)
	}
	return s.finish(ctx, spec)
}

// RenderLines stacks several lines of text into one PNG image, widest line
// deciding the canvas width.
func (s *Service) RenderLines(ctx context.Context, texts []string) (*Rendered, error) {
	spec, err := s.planner.PlanLines(texts)
	if err != nil {
		return nil, fmt.Errorf("planning layout: %w", err)
	}
	return s.finish(ctx, spec)
}

// finish runs the draw and encode stages for a planned layout.
func (s *Service) finish(ctx context.Context, spec *layoutSpec) (*Rendered, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	canvas, err := s.renderer.Render(spec)
	if err != nil {
		return nil, fmt.Errorf("drawing canvas: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	data, err := s.encoder.Encode(canvas)
	if err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	return &Rendered{PNG: data, Width: spec.width, Height: spec.height}, nil
}
