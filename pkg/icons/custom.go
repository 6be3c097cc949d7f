package icons

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Hkmu/icon-generator/pkg/errors"
	"github.com/Hkmu/icon-generator/pkg/observability"
	"github.com/Hkmu/icon-generator/pkg/pack/pngenc"
)

// CustomSizes writes one flat PNG per requested size, named NxN.png.
// The size list is validated as a whole before any file is written.
func (g *Generator) CustomSizes(ctx context.Context, sizes []int) error {
	return g.platform(ctx, string(TargetCustom), func() (int, error) {
		if err := errors.ValidateSizes(sizes); err != nil {
			return 0, err
		}
		count := 0
		for _, size := range sizes {
			img, err := g.render(size)
			if err != nil {
				return count, err
			}
			path := filepath.Join(g.out, fmt.Sprintf("%dx%d.png", size, size))
			if err := pngenc.WriteFile(path, img); err != nil {
				return count, err
			}
			observability.Generation().OnArtifact(ctx, string(TargetCustom), path)
			count++
		}
		return count, nil
	})
}
