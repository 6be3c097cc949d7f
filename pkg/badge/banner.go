package badge

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/Hkmu/icon-generator/pkg/raster"
)

// ApplyBanner draws a semi-transparent red ribbon across the bottom
// quarter of the icon with a diagonal hatch pattern blended on top.
// The ribbon is alpha-composited, so the icon artwork stays visible
// underneath. Returns a new image; the input is not modified.
func ApplyBanner(img *image.NRGBA) *image.NRGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	bh := h / 4
	if bh < 1 {
		bh = 1
	}

	ribbon := drawRibbon(w, bh)
	return raster.Overlay(img, ribbon, 0, h-bh)
}

// drawRibbon renders the w×bh ribbon strip: a translucent red field with
// lighter diagonal hatch lines.
func drawRibbon(w, bh int) *image.NRGBA {
	dc := gg.NewContext(w, bh)

	dc.SetRGBA(0.85, 0.05, 0.05, 0.78)
	dc.DrawRectangle(0, 0, float64(w), float64(bh))
	dc.Fill()

	// diagonal hatch at 45°, spaced relative to the ribbon height
	spacing := float64(bh) / 2
	if spacing < 2 {
		spacing = 2
	}
	dc.SetRGBA(1, 1, 1, 0.25)
	dc.SetLineWidth(float64(bh) / 10)
	for x := -float64(bh); x < float64(w)+float64(bh); x += spacing {
		dc.DrawLine(x, float64(bh), x+float64(bh), 0)
	}
	dc.Stroke()

	return raster.ToNRGBA(dc.Image())
}
