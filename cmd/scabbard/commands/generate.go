package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/scabbard/pkg/engine"
	"github.com/chazu/scabbard/pkg/export"
	"github.com/chazu/scabbard/pkg/kernel/sdfx"
	"github.com/chazu/scabbard/pkg/params"
	"github.com/chazu/scabbard/pkg/parts"
	"github.com/spf13/cobra"
)

func newGenerateCommand() *cobra.Command {
	var (
		paramsPath string
		outDir     string
		sets       []string
		draft      bool
		combined   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the sheath parts and write STL files",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			overlay, err := loadOverlay(paramsPath)
			if err != nil {
				return err
			}
			flags, err := params.ParseAssignments(sets)
			if err != nil {
				return err
			}
			if draft {
				flags["draft"] = true
			}
			if combined {
				flags["separate_files"] = false
			}

			ps, err := params.New(params.Merge(overlay, flags))
			if err != nil {
				return err
			}

			k := sdfx.New()
			built := parts.Generate(ps, k)
			log.Debug().Int("parts", len(built)).Msg("parts assembled")

			paths, err := export.Write(built, k, export.Options{
				Dir:      outDir,
				Combined: !ps.Bool("separate_files"),
				Spacing:  ps.Float("plate_spacing"),
				Cells:    int(ps.Float("mesh_cells")),
			}, log)
			if err != nil {
				return err
			}

			log.Info().Int("files", len(paths)).Msg("generation complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&paramsPath, "params", "p", "", "parameter file (.yaml or .lisp)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "out", "output directory")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "parameter override key=value (repeatable)")
	cmd.Flags().BoolVar(&draft, "draft", false, "fast low-resolution preview")
	cmd.Flags().BoolVar(&combined, "combined", false, "single plate file instead of per-part files")

	return cmd
}

// loadOverlay reads a parameter file into an overlay. YAML files are flat
// key/value mappings; .lisp files are evaluated as parameter scripts.
func loadOverlay(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return params.LoadYAML(path)

	case ".lisp", ".zy":
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		overlay, evalErrs, err := engine.NewEngine().Evaluate(string(src))
		if err != nil {
			return nil, fmt.Errorf("evaluate %s: %w", path, err)
		}
		if len(evalErrs) > 0 {
			return nil, fmt.Errorf("evaluate %s: %w", path, evalErrs[0])
		}
		return overlay, nil
	}
	return nil, fmt.Errorf("unsupported parameter file %s, expected .yaml or .lisp", path)
}
