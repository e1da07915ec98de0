// Package export lays finished parts out on the build plate and emits
// them as STL, either one file per part or a single combined plate.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chazu/scabbard/pkg/kernel"
	"github.com/chazu/scabbard/pkg/parts"
	"github.com/rs/zerolog"
)

// Options controls layout and emission.
type Options struct {
	Dir      string  // output directory, created if missing
	Combined bool    // one plate file instead of per-part files
	Spacing  float64 // gap between parts on the combined plate
	Cells    int     // marching-cubes resolution
}

// Write emits every part and returns the paths written. Parts are
// rebased so each sits on the plate at z=0; on a combined plate they are
// placed left to right with non-overlapping bounding boxes.
func Write(ps []parts.Part, k kernel.Kernel, opts Options, log zerolog.Logger) ([]string, error) {
	if len(ps) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: create %s: %w", opts.Dir, err)
	}

	if opts.Combined {
		path := filepath.Join(opts.Dir, "plate.stl")
		if err := k.WriteSTL(plate(ps, k, opts.Spacing), path, opts.Cells); err != nil {
			return nil, fmt.Errorf("export: plate: %w", err)
		}
		log.Info().Str("path", path).Int("parts", len(ps)).Msg("wrote combined plate")
		return []string{path}, nil
	}

	var paths []string
	for _, p := range ps {
		path := filepath.Join(opts.Dir, p.Name+".stl")
		s := rebase(p.Solid, k, 0)
		if err := k.WriteSTL(s, path, opts.Cells); err != nil {
			return nil, fmt.Errorf("export: part %s: %w", p.Name, err)
		}
		min, max := s.BoundingBox()
		log.Info().
			Str("part", p.Name).
			Str("path", path).
			Floats64("size", []float64{max[0] - min[0], max[1] - min[1], max[2] - min[2]}).
			Msg("wrote part")
		paths = append(paths, path)
	}
	return paths, nil
}

// plate unions all parts side by side along X with the given spacing.
func plate(ps []parts.Part, k kernel.Kernel, spacing float64) kernel.Solid {
	var combined kernel.Solid
	cursor := 0.0
	for _, p := range ps {
		s := rebase(p.Solid, k, cursor)
		_, max := s.BoundingBox()
		cursor = max[0] + spacing
		if combined == nil {
			combined = s
		} else {
			combined = k.Union(combined, s)
		}
	}
	return combined
}

// rebase translates a solid so its bounding box minimum sits at (x, 0, 0).
func rebase(s kernel.Solid, k kernel.Kernel, x float64) kernel.Solid {
	min, _ := s.BoundingBox()
	return k.Translate(s, x-min[0], -min[1], -min[2])
}
