package icons

import (
	"context"
	"image"
	"path/filepath"

	"github.com/Hkmu/icon-generator/pkg/catalog"
	"github.com/Hkmu/icon-generator/pkg/observability"
	"github.com/Hkmu/icon-generator/pkg/pack/icns"
)

// MacOS writes icon.icns plus a Contents.json manifest describing the ten
// container entries.
func (g *Generator) MacOS(ctx context.Context) error {
	return g.platform(ctx, string(TargetMacOS), func() (int, error) {
		path := filepath.Join(g.out, "icon.icns")
		if err := g.writeICNS(path); err != nil {
			return 0, err
		}
		observability.Generation().OnArtifact(ctx, string(TargetMacOS), path)

		manifest := catalog.New()
		for _, entry := range icns.Family {
			points := entry.Size
			scale := 1
			if entry.Retina() {
				points = entry.Size / 2
				scale = 2
			}
			manifest.AddImage(catalog.ImageEntry{
				Filename: "icon.icns",
				Idiom:    "mac",
				Scale:    catalog.ScaleString(scale),
				Size:     catalog.SizeString(float64(points)),
			})
		}
		if err := manifest.WriteTo(g.out); err != nil {
			return 1, err
		}
		observability.Generation().OnArtifact(ctx, string(TargetMacOS), filepath.Join(g.out, "Contents.json"))
		return 2, nil
	})
}

// ICNS writes the bare icon.icns container without a manifest.
func (g *Generator) ICNS(ctx context.Context) error {
	return g.platform(ctx, string(TargetICNS), func() (int, error) {
		path := filepath.Join(g.out, "icon.icns")
		if err := g.writeICNS(path); err != nil {
			return 0, err
		}
		observability.Generation().OnArtifact(ctx, string(TargetICNS), path)
		return 1, nil
	})
}

func (g *Generator) writeICNS(path string) error {
	rendered := make(map[int]*image.NRGBA)
	frames := make([]icns.Frame, 0, len(icns.Family))
	for _, entry := range icns.Family {
		img, ok := rendered[entry.Size]
		if !ok {
			var err error
			img, err = g.render(entry.Size)
			if err != nil {
				return err
			}
			rendered[entry.Size] = img
		}
		frames = append(frames, icns.Frame{Entry: entry, Image: img})
	}
	return icns.WriteFile(path, frames)
}
