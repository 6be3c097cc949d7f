package badge

import (
	"image"
	"math"
	"strings"

	"github.com/fogleman/gg"

	"github.com/Hkmu/icon-generator/pkg/errors"
	"github.com/Hkmu/icon-generator/pkg/raster"
)

// bugCanvas is the render size of the built-in decorative images.
// 256px keeps the downscaled badge sharp on every icon ladder size.
const bugCanvas = 256

// builtinSource resolves the decorative images compiled into the binary.
type builtinSource struct {
	images map[string]image.Image
}

// Builtin returns the badge source with the built-in decorative images.
// It currently provides the "bug" ladybug mark.
func Builtin() Source {
	return &builtinSource{
		images: map[string]image.Image{
			Bug: drawBug(bugCanvas),
		},
	}
}

func (s *builtinSource) Badge(name string) (image.Image, error) {
	if img, ok := s.images[name]; ok {
		return img, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidBadge,
		"unknown badge image %q (valid: %s)", name, strings.Join(s.Names(), ", "))
}

func (s *builtinSource) Names() []string {
	return sortedNames(s.images)
}

// drawBug renders a stylized ladybug on a transparent canvas.
func drawBug(size int) image.Image {
	dc := gg.NewContext(size, size)
	c := float64(size) / 2
	body := float64(size) * 0.42

	// body
	dc.SetRGBA(0.82, 0.08, 0.08, 1)
	dc.DrawCircle(c, c, body)
	dc.Fill()

	// head
	dc.SetRGBA(0.08, 0.08, 0.08, 1)
	dc.DrawArc(c, c-body*0.72, body*0.45, math.Pi, 2*math.Pi)
	dc.ClosePath()
	dc.Fill()

	// wing split
	dc.SetLineWidth(float64(size) / 28)
	dc.DrawLine(c, c-body, c, c+body)
	dc.Stroke()

	// spots, mirrored across the split
	spot := body * 0.16
	for _, p := range [][2]float64{{-0.45, -0.35}, {0.45, -0.35}, {-0.5, 0.3}, {0.5, 0.3}, {-0.2, 0.65}, {0.2, 0.65}} {
		dc.DrawCircle(c+p[0]*body, c+p[1]*body, spot)
		dc.Fill()
	}

	return raster.ToNRGBA(dc.Image())
}
