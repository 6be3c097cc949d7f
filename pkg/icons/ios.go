package icons

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Hkmu/icon-generator/pkg/catalog"
	"github.com/Hkmu/icon-generator/pkg/errors"
	"github.com/Hkmu/icon-generator/pkg/observability"
	"github.com/Hkmu/icon-generator/pkg/pack/pngenc"
)

// iosFilename names the PNG backing one slot. Slots with the same points
// and scale share a name regardless of idiom, and the marketing icon drops
// the scale suffix.
func iosFilename(slot iosSlot) string {
	base := catalog.PointSize(slot.Points)
	if slot.Points == 1024 {
		return fmt.Sprintf("AppIcon-%sx%s.png", base, base)
	}
	return fmt.Sprintf("AppIcon-%sx%s@%dx.png", base, base, slot.Scale)
}

// IOS writes the ios/ icon set: one flattened PNG per distinct slot
// resolution plus a Contents.json with a record for every slot. iOS icons
// are always composited onto the configured opaque background.
func (g *Generator) IOS(ctx context.Context) error {
	return g.platform(ctx, string(TargetIOS), func() (int, error) {
		dir := filepath.Join(g.out, "ios")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", dir)
		}

		manifest := catalog.New()
		written := make(map[string]bool)
		count := 0
		for _, slot := range iosSlots {
			name := iosFilename(slot)
			pixels := int(slot.Points * float64(slot.Scale))

			if !written[name] {
				img, err := g.renderFlat(pixels, g.cfg.IOSColor)
				if err != nil {
					return count, err
				}
				path := filepath.Join(dir, name)
				if err := pngenc.WriteFile(path, img); err != nil {
					return count, err
				}
				observability.Generation().OnArtifact(ctx, string(TargetIOS), path)
				written[name] = true
				count++
			}

			manifest.AddImage(catalog.ImageEntry{
				Filename:     name,
				Idiom:        slot.Idiom,
				Scale:        catalog.ScaleString(slot.Scale),
				Size:         catalog.SizeString(slot.Points),
				ExpectedSize: fmt.Sprintf("%dx%d", pixels, pixels),
				Role:         catalog.IOSRole(slot.Points),
			})
		}

		if err := manifest.WriteTo(dir); err != nil {
			return count, err
		}
		observability.Generation().OnArtifact(ctx, string(TargetIOS), filepath.Join(dir, "Contents.json"))
		return count + 1, nil
	})
}
