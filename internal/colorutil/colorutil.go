// Package colorutil parses user-supplied color strings.
//
// Both SVG 1.1 color names ("white", "rebeccapurple") and hex
// specifications ("#fff", "#1a2b3c") are accepted, mirroring what users
// coming from Pillow's getrgb expect.
package colorutil

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor reports a string that is neither a known color name nor a
// valid hex specification.
var ErrUnknownColor = errors.New("unknown color")

// Parse converts a color name or hex string into a color.
func Parse(s string) (color.Color, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty string", ErrUnknownColor)
	}

	if c, ok := colornames.Map[strings.ToLower(trimmed)]; ok {
		return c, nil
	}

	if strings.HasPrefix(trimmed, "#") {
		c, err := colorful.Hex(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
		}
		return c, nil
	}

	return nil, fmt.Errorf("%w: %q (want a color name like \"white\" or hex like \"#1a2b3c\")", ErrUnknownColor, s)
}
