package icons

import (
	"context"
	"path/filepath"

	"github.com/Hkmu/icon-generator/pkg/observability"
	"github.com/Hkmu/icon-generator/pkg/pack/ico"
)

// Windows writes icon.ico containing the full frame ladder.
func (g *Generator) Windows(ctx context.Context) error {
	return g.platform(ctx, string(TargetWindows), func() (int, error) {
		path := filepath.Join(g.out, "icon.ico")
		if err := g.writeICO(path); err != nil {
			return 0, err
		}
		observability.Generation().OnArtifact(ctx, string(TargetWindows), path)
		return 1, nil
	})
}

// writeICO renders every ladder frame and packs them into one container at
// path. Shared with the Tauri recipe.
func (g *Generator) writeICO(path string) error {
	frames := make([]ico.Frame, 0, len(ico.Ladder))
	for _, size := range ico.Ladder {
		img, err := g.render(size)
		if err != nil {
			return err
		}
		frames = append(frames, ico.Frame{Size: size, Image: img})
	}
	return ico.WriteFile(path, frames)
}
