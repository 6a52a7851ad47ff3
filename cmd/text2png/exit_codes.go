package main

import (
	"errors"
	"os"

	"github.com/mawillcockson/text2png"
	"github.com/mawillcockson/text2png/internal/colorutil"
	"github.com/mawillcockson/text2png/internal/config"
	"github.com/mawillcockson/text2png/internal/fileutil"
)

// Exit codes for the text2png CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Images generated (or nothing to do)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or input content
	ExitIO      = 3 // File not found, permission denied, output conflicts
	ExitRender  = 4 // Drawing or encoding failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4)
	if errors.Is(err, text2png.ErrRender) ||
		errors.Is(err, text2png.ErrEncode) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, text2png.ErrInputNotFound) ||
		errors.Is(err, text2png.ErrInputDecoding) ||
		errors.Is(err, text2png.ErrFontNotFound) ||
		errors.Is(err, fileutil.ErrNameConflict) ||
		errors.Is(err, fileutil.ErrNotADirectory) ||
		errors.Is(err, ErrWriteImage) {
		return ExitIO
	}

	// Usage/config/content errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, text2png.ErrInvalidPointSize) ||
		errors.Is(err, text2png.ErrInvalidPadding) ||
		errors.Is(err, text2png.ErrInvalidLineSpacing) ||
		errors.Is(err, text2png.ErrInvalidCanvasSize) ||
		errors.Is(err, text2png.ErrFontParse) ||
		errors.Is(err, text2png.ErrUnsupportedCharacter) ||
		errors.Is(err, colorutil.ErrUnknownColor) ||
		errors.Is(err, ErrNoInput) {
		return ExitUsage
	}

	return ExitGeneral
}
