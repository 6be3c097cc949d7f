package raster

import (
	"image"
	"math"
)

// Rotate rotates img by the given angle in degrees (clockwise in screen
// coordinates) about its center, keeping the canvas size unchanged. Each destination
// pixel is inverse-mapped to a source coordinate using nearest-neighbor
// sampling; destinations whose source falls outside the image stay fully
// transparent. Nearest-neighbor is deliberate: the rotated badge stays
// crisp at the small sizes it is composited onto.
func Rotate(img *image.NRGBA, degrees float64) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	rad := degrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	cx := float64(w) / 2
	cy := float64(h) / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// inverse rotation of the destination pixel center
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			sx := cos*dx + sin*dy + cx
			sy := -sin*dx + cos*dy + cy

			ix := int(math.Floor(sx))
			iy := int(math.Floor(sy))
			if ix < 0 || ix >= w || iy < 0 || iy >= h {
				continue
			}
			out.SetNRGBA(x, y, img.NRGBAAt(b.Min.X+ix, b.Min.Y+iy))
		}
	}
	return out
}
