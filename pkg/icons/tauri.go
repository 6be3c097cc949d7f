package icons

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Hkmu/icon-generator/pkg/errors"
	"github.com/Hkmu/icon-generator/pkg/observability"
	"github.com/Hkmu/icon-generator/pkg/pack/pngenc"
)

// Tauri writes the desktop bundle a Tauri project expects: the three flat
// PNGs plus fresh icon.ico and icon.icns containers, all under
// tauri-desktop/. Containers are regenerated rather than copied so the
// recipe never reads its own output.
func (g *Generator) Tauri(ctx context.Context) error {
	return g.platform(ctx, string(TargetTauri), func() (int, error) {
		dir := filepath.Join(g.out, "tauri-desktop")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", dir)
		}

		count := 0
		for _, t := range tauriSizes {
			img, err := g.render(t.Size)
			if err != nil {
				return count, err
			}
			path := filepath.Join(dir, t.Name)
			if err := pngenc.WriteFile(path, img); err != nil {
				return count, err
			}
			observability.Generation().OnArtifact(ctx, string(TargetTauri), path)
			count++
		}

		icoPath := filepath.Join(dir, "icon.ico")
		if err := g.writeICO(icoPath); err != nil {
			return count, err
		}
		observability.Generation().OnArtifact(ctx, string(TargetTauri), icoPath)
		count++

		icnsPath := filepath.Join(dir, "icon.icns")
		if err := g.writeICNS(icnsPath); err != nil {
			return count, err
		}
		observability.Generation().OnArtifact(ctx, string(TargetTauri), icnsPath)
		count++

		return count, nil
	})
}
