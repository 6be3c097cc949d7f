package icons

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Hkmu/icon-generator/pkg/observability"
	"github.com/Hkmu/icon-generator/pkg/pack/pngenc"
)

// Linux writes the hicolor PNG ladder. The largest size is written as the
// generic icon.png, the rest as NxN.png.
func (g *Generator) Linux(ctx context.Context) error {
	return g.platform(ctx, string(TargetLinux), func() (int, error) {
		count := 0
		for _, size := range linuxSizes {
			img, err := g.render(size)
			if err != nil {
				return count, err
			}
			name := fmt.Sprintf("%dx%d.png", size, size)
			if size == linuxSizes[len(linuxSizes)-1] {
				name = "icon.png"
			}
			path := filepath.Join(g.out, name)
			if err := pngenc.WriteFile(path, img); err != nil {
				return count, err
			}
			observability.Generation().OnArtifact(ctx, string(TargetLinux), path)
			count++
		}
		return count, nil
	})
}
