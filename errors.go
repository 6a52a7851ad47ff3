package text2png

import "errors"

// Sentinel errors for library operations.
var (
	ErrInputNotFound        = errors.New("input file not found")
	ErrInputDecoding        = errors.New("input is not valid UTF-8 text")
	ErrUnsupportedCharacter = errors.New("unsupported character")
	ErrRender               = errors.New("rendering failed")
	ErrEncode               = errors.New("PNG encoding failed")

	// Font loading errors.
	ErrFontNotFound = errors.New("font file not found")
	ErrFontParse    = errors.New("failed to parse font file")

	// Configuration validation errors.
	ErrInvalidPointSize   = errors.New("invalid point size")
	ErrInvalidPadding     = errors.New("invalid padding")
	ErrInvalidLineSpacing = errors.New("invalid line spacing")
	ErrInvalidCanvasSize  = errors.New("invalid canvas size")
)
