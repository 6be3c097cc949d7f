// Package raster implements the pixel operations behind icon generation:
// high-quality square resampling and the compositing primitives (background
// flattening, circular masking, centered overlay, rotation) that the
// platform recipes combine into final icon variants.
//
// All operations work on straight-alpha (non-premultiplied) NRGBA buffers
// and return freshly allocated images; inputs are never mutated. Outputs
// are deterministic: the same input pixels and parameters always produce
// byte-identical results.
package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ToNRGBA converts any image to a straight-alpha NRGBA copy.
// The copy is safe to hand to the compositing operations.
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// Resize scales src to an exact size×size raster using Lanczos resampling.
// Lanczos keeps small icon sizes free of the aliasing a nearest-neighbor
// scale would introduce. Panics only if size is not positive; callers
// validate sizes before reaching the pixel pipeline.
func Resize(src image.Image, size int) *image.NRGBA {
	return imaging.Resize(src, size, size, imaging.Lanczos)
}

// Fill returns an opaque size×size raster filled with the given color.
func Fill(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		o := img.PixOffset(0, y)
		for x := 0; x < size; x++ {
			img.Pix[o] = c.R
			img.Pix[o+1] = c.G
			img.Pix[o+2] = c.B
			img.Pix[o+3] = c.A
			o += 4
		}
	}
	return img
}
