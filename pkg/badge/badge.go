// Package badge visually marks development builds by stamping an overlay
// onto generated icons: either a hatched ribbon across the bottom quarter
// of the icon ("banner") or a small decorative image composited at the
// center ("bug").
//
// Decorative images are resolved through the [Source] interface so new
// badge variants can be added without touching the compositing code.
package badge

import (
	"image"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/Hkmu/icon-generator/pkg/errors"
	"github.com/Hkmu/icon-generator/pkg/raster"
)

// Badge variant identifiers.
const (
	Banner = "banner"
	Bug    = "bug"
)

// Variants lists the valid badge variant identifiers.
func Variants() []string {
	return []string{Banner, Bug}
}

// Source maps a badge identifier to its decorative raster.
type Source interface {
	// Badge returns the raster for the given identifier, or an
	// INVALID_BADGE error naming the valid identifiers.
	Badge(name string) (image.Image, error)

	// Names returns the identifiers this source can resolve, sorted.
	Names() []string
}

// Apply stamps the selected badge variant onto img and returns the result.
// The input image is not modified. degrees only affects the "bug" variant.
func Apply(img *image.NRGBA, src Source, variant string, degrees float64) (*image.NRGBA, error) {
	switch variant {
	case Banner:
		return ApplyBanner(img), nil
	case Bug:
		return ApplyBug(img, src, Bug, degrees)
	default:
		return nil, errors.New(errors.ErrCodeInvalidBadge,
			"unknown badge variant %q (valid: %s)", variant, strings.Join(Variants(), ", "))
	}
}

// ApplyBug looks up the named decorative image, scales it to one quarter
// of the icon's minimum dimension (preserving aspect ratio), rotates it by
// degrees about its own center using nearest-neighbor sampling, and
// alpha-composites it centered on the icon.
func ApplyBug(img *image.NRGBA, src Source, name string, degrees float64) (*image.NRGBA, error) {
	decor, err := src.Badge(name)
	if err != nil {
		return nil, err
	}

	minDim := img.Bounds().Dx()
	if h := img.Bounds().Dy(); h < minDim {
		minDim = h
	}
	target := minDim / 4
	if target < 1 {
		target = 1
	}

	scaled := imaging.Fit(decor, target, target, imaging.Lanczos)
	if degrees != 0 {
		scaled = raster.Rotate(scaled, degrees)
	}
	return raster.OverlayCenter(img, scaled), nil
}

// sortedNames is shared by Source implementations.
func sortedNames(m map[string]image.Image) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
