// Package csscolor resolves CSS-style color strings to opaque RGB values
// for icon background fills. Hex notations (#rgb, #rrggbb) and the CSS
// named colors are supported; sRGB is assumed throughout.
package csscolor

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/Hkmu/icon-generator/pkg/errors"
)

// Parse resolves a CSS color string to an opaque NRGBA color.
// Accepted forms: "#rgb", "#rrggbb", and CSS named colors ("white",
// "rebeccapurple", ...). Any alpha in the input is discarded; background
// fills are always opaque.
func Parse(s string) (color.NRGBA, error) {
	in := strings.TrimSpace(strings.ToLower(s))
	if in == "" {
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidColor, "color cannot be empty")
	}

	if strings.HasPrefix(in, "#") {
		hex := in[1:]
		if len(hex) == 3 {
			// expand shorthand #abc to #aabbcc
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	}

	if c, ok := colornames.Map[in]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
	}

	return color.NRGBA{}, errors.New(errors.ErrCodeInvalidColor, "unrecognized color %q (use #rrggbb or a CSS color name)", s)
}

// Resolve parses s and falls back to opaque white when parsing fails,
// matching the lenient behavior expected for background-color flags.
func Resolve(s string) color.NRGBA {
	c, err := Parse(s)
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c
}
