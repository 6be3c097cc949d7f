package raster

import (
	"image"
	"image/color"
	"testing"
)

// solid returns an opaque size×size image filled with c.
func solid(size int, c color.NRGBA) *image.NRGBA {
	return Fill(size, c)
}

func TestResizeExactDimensions(t *testing.T) {
	src := solid(100, color.NRGBA{10, 20, 30, 255})

	for _, size := range []int{1, 16, 48, 100, 256, 1024} {
		got := Resize(src, size)
		if got.Bounds().Dx() != size || got.Bounds().Dy() != size {
			t.Errorf("Resize(%d) bounds = %v, want %dx%d", size, got.Bounds(), size, size)
		}
	}
}

func TestResizeDeterministic(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			src.SetNRGBA(x, y, color.NRGBA{uint8(x * 4), uint8(y * 4), 128, 255})
		}
	}

	a := Resize(src, 24)
	b := Resize(src, 24)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("Resize not deterministic: byte %d differs (%d vs %d)", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestFlattenOpaqueForeground(t *testing.T) {
	fg := solid(8, color.NRGBA{10, 20, 30, 255})
	out := Flatten(fg, color.NRGBA{255, 0, 0, 255})

	got := out.NRGBAAt(4, 4)
	want := color.NRGBA{10, 20, 30, 255}
	if got != want {
		t.Errorf("Flatten opaque pixel = %v, want %v", got, want)
	}
}

func TestFlattenTransparentForeground(t *testing.T) {
	fg := solid(8, color.NRGBA{0, 0, 0, 0})
	bg := color.NRGBA{12, 34, 56, 255}
	out := Flatten(fg, bg)

	got := out.NRGBAAt(3, 3)
	if got != bg {
		t.Errorf("Flatten transparent pixel = %v, want %v", got, bg)
	}
}

func TestFlattenHalfAlpha(t *testing.T) {
	fg := solid(4, color.NRGBA{255, 255, 255, 128})
	out := Flatten(fg, color.NRGBA{0, 0, 0, 255})

	got := out.NRGBAAt(0, 0)
	if got.A != 255 {
		t.Errorf("Flatten alpha = %d, want 255", got.A)
	}
	// 255 * 128/255 ≈ 128
	if got.R < 127 || got.R > 129 {
		t.Errorf("Flatten half-alpha red = %d, want ~128", got.R)
	}
}

func TestCircleMask(t *testing.T) {
	img := solid(64, color.NRGBA{100, 100, 100, 255})
	out := CircleMask(img)

	if a := out.NRGBAAt(32, 32).A; a != 255 {
		t.Errorf("center alpha = %d, want 255", a)
	}
	if a := out.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner (0,0) alpha = %d, want 0", a)
	}
	if a := out.NRGBAAt(63, 63).A; a != 0 {
		t.Errorf("corner (63,63) alpha = %d, want 0", a)
	}
	// edge midpoints sit on the circle boundary and keep some opacity
	if a := out.NRGBAAt(32, 1).A; a == 0 {
		t.Error("top edge midpoint alpha = 0, want > 0")
	}
}

func TestCircleMaskDoesNotMutateInput(t *testing.T) {
	img := solid(16, color.NRGBA{1, 2, 3, 255})
	CircleMask(img)
	if a := img.NRGBAAt(0, 0).A; a != 255 {
		t.Errorf("input mutated: corner alpha = %d, want 255", a)
	}
}

func TestOverlayCenter(t *testing.T) {
	base := solid(10, color.NRGBA{0, 0, 255, 255})
	top := solid(4, color.NRGBA{255, 0, 0, 255})

	out := OverlayCenter(base, top)

	// top occupies (3,3)..(6,6)
	if got := out.NRGBAAt(4, 4); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("overlaid pixel = %v, want red", got)
	}
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("base pixel = %v, want blue", got)
	}
}

func TestOverlayBlendsAlpha(t *testing.T) {
	base := solid(4, color.NRGBA{0, 0, 0, 255})
	top := solid(4, color.NRGBA{255, 255, 255, 128})

	out := Overlay(base, top, 0, 0)

	got := out.NRGBAAt(1, 1)
	if got.A != 255 {
		t.Errorf("alpha = %d, want 255", got.A)
	}
	if got.R < 127 || got.R > 129 {
		t.Errorf("red = %d, want ~128", got.R)
	}
}

func TestOverlayClipsOutOfBounds(t *testing.T) {
	base := solid(4, color.NRGBA{0, 0, 0, 255})
	top := solid(4, color.NRGBA{255, 0, 0, 255})

	out := Overlay(base, top, 2, 2)

	if got := out.NRGBAAt(3, 3); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("pixel (3,3) = %v, want red", got)
	}
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("pixel (0,0) = %v, want black", got)
	}
}

func TestRotateZeroIsIdentity(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 30), uint8(y * 30), 0, 255})
		}
	}

	out := Rotate(img, 0)
	for i := range img.Pix {
		if out.Pix[i] != img.Pix[i] {
			t.Fatalf("Rotate(0) changed byte %d: %d vs %d", i, out.Pix[i], img.Pix[i])
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})

	out := Rotate(img, 90)

	// a quarter turn moves the top-left marker to the top-right
	if got := out.NRGBAAt(7, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("pixel (7,0) = %v, want red marker", got)
	}
}

func TestRotateLeavesOutOfBoundsTransparent(t *testing.T) {
	img := solid(16, color.NRGBA{200, 200, 200, 255})
	out := Rotate(img, 45)

	// at 45° the corners of the destination map outside the source square
	if a := out.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha after 45° rotation = %d, want 0", a)
	}
	if a := out.NRGBAAt(8, 8).A; a != 255 {
		t.Errorf("center alpha after 45° rotation = %d, want 255", a)
	}
}

func TestFill(t *testing.T) {
	img := Fill(5, color.NRGBA{9, 8, 7, 255})
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 5 {
		t.Fatalf("Fill bounds = %v, want 5x5", img.Bounds())
	}
	if got := img.NRGBAAt(2, 2); got != (color.NRGBA{9, 8, 7, 255}) {
		t.Errorf("Fill pixel = %v, want {9 8 7 255}", got)
	}
}
