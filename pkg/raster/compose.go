package raster

import (
	"image"
	"image/color"
	"math"
)

// blend composites top over bottom using straight (non-premultiplied) alpha:
//
//	outA   = topA + botA*(1-topA)
//	outRGB = (topRGB*topA + botRGB*botA*(1-topA)) / outA
//
// A zero output alpha yields fully transparent black.
func blend(top, bottom color.NRGBA) color.NRGBA {
	ta := float64(top.A) / 255
	ba := float64(bottom.A) / 255
	outA := ta + ba*(1-ta)
	if outA == 0 {
		return color.NRGBA{}
	}
	ch := func(t, b uint8) uint8 {
		v := (float64(t)*ta + float64(b)*ba*(1-ta)) / outA
		return uint8(math.Round(v))
	}
	return color.NRGBA{
		R: ch(top.R, bottom.R),
		G: ch(top.G, bottom.G),
		B: ch(top.B, bottom.B),
		A: uint8(math.Round(outA * 255)),
	}
}

// Flatten composites fg over an opaque background color and forces the
// result fully opaque. Each pixel becomes src*alpha + bg*(1-alpha); the
// background never shows through opaque foreground pixels. iOS app icons
// must not carry transparency, which is the main consumer of this op.
func Flatten(fg *image.NRGBA, bg color.NRGBA) *image.NRGBA {
	b := fg.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		so := fg.PixOffset(b.Min.X, b.Min.Y+y)
		do := out.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			a := float64(fg.Pix[so+3]) / 255
			out.Pix[do] = uint8(math.Round(float64(fg.Pix[so])*a + float64(bg.R)*(1-a)))
			out.Pix[do+1] = uint8(math.Round(float64(fg.Pix[so+1])*a + float64(bg.G)*(1-a)))
			out.Pix[do+2] = uint8(math.Round(float64(fg.Pix[so+2])*a + float64(bg.B)*(1-a)))
			out.Pix[do+3] = 255
			so += 4
			do += 4
		}
	}
	return out
}

// Overlay alpha-composites top onto base with top's origin at (x, y) in
// base coordinates. Pixels of top falling outside base are clipped.
// The result has base's dimensions; base itself is not modified.
func Overlay(base, top *image.NRGBA, x, y int) *image.NRGBA {
	out := cloneNRGBA(base)
	tb := top.Bounds()
	ob := out.Bounds()
	for ty := 0; ty < tb.Dy(); ty++ {
		oy := y + ty
		if oy < 0 || oy >= ob.Dy() {
			continue
		}
		for tx := 0; tx < tb.Dx(); tx++ {
			ox := x + tx
			if ox < 0 || ox >= ob.Dx() {
				continue
			}
			t := top.NRGBAAt(tb.Min.X+tx, tb.Min.Y+ty)
			if t.A == 0 {
				continue
			}
			out.SetNRGBA(ox, oy, blend(t, out.NRGBAAt(ox, oy)))
		}
	}
	return out
}

// OverlayCenter alpha-composites top onto base at the centered offset
// ((W-w)/2, (H-h)/2). Used for iOS background fill and for placing the
// adaptive-icon foreground inside its safe zone.
func OverlayCenter(base, top *image.NRGBA) *image.NRGBA {
	x := (base.Bounds().Dx() - top.Bounds().Dx()) / 2
	y := (base.Bounds().Dy() - top.Bounds().Dy()) / 2
	return Overlay(base, top, x, y)
}

func cloneNRGBA(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		so := img.PixOffset(b.Min.X, b.Min.Y+y)
		do := out.PixOffset(0, y)
		copy(out.Pix[do:do+4*b.Dx()], img.Pix[so:so+4*b.Dx()])
	}
	return out
}
