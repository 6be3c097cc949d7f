// Package icons contains the per-platform icon recipes.
//
// Each recipe is a pure sequencing of the lower layers — resample the
// source, composite (background fill, circular mask, badge), then hand the
// buffer to a packer or the flat PNG writer — against a static size table.
// No recipe performs pixel math itself, and no recipe reads back its own
// output. Work is single-threaded: each artifact is produced and flushed
// before the next begins.
package icons

import (
	"context"
	"image"
	"image/color"
	"os"
	"time"

	"github.com/Hkmu/icon-generator/pkg/badge"
	"github.com/Hkmu/icon-generator/pkg/errors"
	"github.com/Hkmu/icon-generator/pkg/observability"
	"github.com/Hkmu/icon-generator/pkg/raster"
)

var transparent = color.NRGBA{}

// Config carries the rendering options shared by all platform recipes.
type Config struct {
	IOSColor      color.NRGBA // background fill for iOS variants
	AndroidColor  color.NRGBA // adaptive background layer fill
	Round         bool        // Android round variant (on by default)
	Adaptive      bool        // Android adaptive variant (opt-in)
	Dev           bool        // stamp a development badge on every variant
	BadgeVariant  string      // badge.Banner (default) or badge.Bug
	BadgeRotation float64     // degrees, bug variant only
	Badges        badge.Source
}

// DefaultConfig returns the configuration used when no flags are given:
// white backgrounds, round Android icons on, no badge.
func DefaultConfig() Config {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	return Config{
		IOSColor:     white,
		AndroidColor: white,
		Round:        true,
		BadgeVariant: badge.Banner,
		Badges:       badge.Builtin(),
	}
}

// Generator derives every icon asset from one validated square source.
type Generator struct {
	src *image.NRGBA
	out string
	cfg Config
}

// New validates the source image and configuration and returns a
// generator rooted at outDir. A non-square source or an unknown badge
// identifier is rejected here, before any output is written.
func New(src image.Image, outDir string, cfg Config) (*Generator, error) {
	if err := errors.ValidateSquare(src); err != nil {
		return nil, err
	}
	if cfg.Badges == nil {
		cfg.Badges = badge.Builtin()
	}
	if cfg.BadgeVariant == "" {
		cfg.BadgeVariant = badge.Banner
	}
	if cfg.Dev && cfg.BadgeVariant == badge.Bug {
		if _, err := cfg.Badges.Badge(badge.Bug); err != nil {
			return nil, err
		}
	}
	if cfg.Dev && cfg.BadgeVariant != badge.Banner && cfg.BadgeVariant != badge.Bug {
		return nil, errors.New(errors.ErrCodeInvalidBadge,
			"unknown badge variant %q (valid: banner, bug)", cfg.BadgeVariant)
	}
	return &Generator{src: raster.ToNRGBA(src), out: outDir, cfg: cfg}, nil
}

// Run executes every recipe selected by sel, in deterministic order.
// The first failure aborts the run; files written before the failure must
// not be treated as a usable set.
func (g *Generator) Run(ctx context.Context, sel Selection) error {
	if err := os.MkdirAll(g.out, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create output directory %s", g.out)
	}
	for _, target := range sel.Targets() {
		var err error
		switch target {
		case TargetCustom:
			err = g.CustomSizes(ctx, sel.Sizes)
		case TargetWindows:
			err = g.Windows(ctx)
		case TargetMacOS:
			err = g.MacOS(ctx)
		case TargetICNS:
			err = g.ICNS(ctx)
		case TargetLinux:
			err = g.Linux(ctx)
		case TargetAndroid:
			err = g.Android(ctx)
		case TargetIOS:
			err = g.IOS(ctx)
		case TargetTauri:
			err = g.Tauri(ctx)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// render is the pure produce-raster stage: resize to the target size and
// stamp the development badge when enabled. Persistence happens in the
// recipe that called it.
func (g *Generator) render(size int) (*image.NRGBA, error) {
	return g.decorate(raster.Resize(g.src, size))
}

// renderFlat renders like render but first flattens the variant onto an
// opaque background color. Used by iOS, whose icons must not carry
// transparency.
func (g *Generator) renderFlat(size int, bg color.NRGBA) (*image.NRGBA, error) {
	return g.decorate(raster.Flatten(raster.Resize(g.src, size), bg))
}

func (g *Generator) decorate(img *image.NRGBA) (*image.NRGBA, error) {
	if !g.cfg.Dev {
		return img, nil
	}
	return badge.Apply(img, g.cfg.Badges, g.cfg.BadgeVariant, g.cfg.BadgeRotation)
}

// platform wraps a recipe with start/complete hooks.
func (g *Generator) platform(ctx context.Context, name string, fn func() (int, error)) error {
	observability.Generation().OnPlatformStart(ctx, name)
	start := time.Now()
	n, err := fn()
	observability.Generation().OnPlatformComplete(ctx, name, n, time.Since(start), err)
	return err
}
