package raster

import (
	"image"
	"math"
)

// CircleMask zeroes the alpha of every pixel whose center lies outside the
// circle inscribed in the square image. Pixels within one pixel of the
// boundary get their alpha scaled linearly, giving a 1px anti-aliased edge.
// The center pixel is never touched; corners always end up transparent.
// Used for Android round launcher icons.
func CircleMask(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	size := b.Dx()
	out := cloneNRGBA(img)

	cx := float64(size) / 2
	cy := float64(size) / 2
	radius := float64(size) / 2

	for y := 0; y < size; y++ {
		o := out.PixOffset(0, y)
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := math.Sqrt(dx*dx + dy*dy)
			switch {
			case dist > radius:
				out.Pix[o+3] = 0
			case dist > radius-1:
				// linear falloff across the last pixel before the edge
				out.Pix[o+3] = uint8(math.Round(float64(out.Pix[o+3]) * (radius - dist)))
			}
			o += 4
		}
	}
	return out
}
