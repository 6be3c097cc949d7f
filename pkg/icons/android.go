package icons

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Hkmu/icon-generator/pkg/errors"
	"github.com/Hkmu/icon-generator/pkg/observability"
	"github.com/Hkmu/icon-generator/pkg/pack/pngenc"
	"github.com/Hkmu/icon-generator/pkg/raster"
)

// adaptiveIconXML is the v26 descriptor pointing the launcher at the two
// generated layers.
const adaptiveIconXML = `<?xml version="1.0" encoding="utf-8"?>
<adaptive-icon xmlns:android="http://schemas.android.com/apk/res/android">
    <background android:drawable="@mipmap/ic_launcher_background"/>
    <foreground android:drawable="@mipmap/ic_launcher_foreground"/>
</adaptive-icon>
`

// Android writes the launcher mipmap tree: ic_launcher.png per density,
// plus the round variant unless disabled and the adaptive layer pair plus
// anydpi descriptors when enabled.
func (g *Generator) Android(ctx context.Context) error {
	return g.platform(ctx, string(TargetAndroid), func() (int, error) {
		root := filepath.Join(g.out, "android")
		count := 0
		emit := func(dir, name string, write func(path string) error) error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", dir)
			}
			path := filepath.Join(dir, name)
			if err := write(path); err != nil {
				return err
			}
			observability.Generation().OnArtifact(ctx, string(TargetAndroid), path)
			count++
			return nil
		}

		for _, d := range androidDensities {
			dir := filepath.Join(root, "mipmap-"+d.Name)

			img, err := g.render(d.Launcher)
			if err != nil {
				return count, err
			}
			if err := emit(dir, "ic_launcher.png", func(path string) error {
				return pngenc.WriteFile(path, img)
			}); err != nil {
				return count, err
			}

			if g.cfg.Round {
				round := raster.CircleMask(img)
				if err := emit(dir, "ic_launcher_round.png", func(path string) error {
					return pngenc.WriteFile(path, round)
				}); err != nil {
					return count, err
				}
			}

			if g.cfg.Adaptive {
				fg, err := g.render(d.Adaptive * 2 / 3)
				if err != nil {
					return count, err
				}
				layer := raster.OverlayCenter(raster.Fill(d.Adaptive, transparent), fg)
				if err := emit(dir, "ic_launcher_foreground.png", func(path string) error {
					return pngenc.WriteFile(path, layer)
				}); err != nil {
					return count, err
				}

				bg := raster.Fill(d.Adaptive, g.cfg.AndroidColor)
				if err := emit(dir, "ic_launcher_background.png", func(path string) error {
					return pngenc.WriteFile(path, bg)
				}); err != nil {
					return count, err
				}
			}
		}

		if g.cfg.Adaptive {
			dir := filepath.Join(root, "mipmap-anydpi-v26")
			descriptors := []string{"ic_launcher.xml"}
			if g.cfg.Round {
				descriptors = append(descriptors, "ic_launcher_round.xml")
			}
			for _, name := range descriptors {
				if err := emit(dir, name, func(path string) error {
					if err := os.WriteFile(path, []byte(adaptiveIconXML), 0o644); err != nil {
						return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
					}
					return nil
				}); err != nil {
					return count, err
				}
			}
		}
		return count, nil
	})
}
