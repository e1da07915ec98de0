package commands

import (
	"fmt"

	"github.com/chazu/scabbard/pkg/params"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	var (
		paramsPath string
		sets       []string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Resolve a parameter set and print the derived dimensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			overlay, err := loadOverlay(paramsPath)
			if err != nil {
				return err
			}
			flags, err := params.ParseAssignments(sets)
			if err != nil {
				return err
			}

			ps, err := params.New(params.Merge(overlay, flags))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "parameter set resolves; derived dimensions:")
			for _, key := range params.DerivedKeys() {
				fmt.Fprintf(w, "%-24s %g\n", key, ps.Float(key))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&paramsPath, "params", "p", "", "parameter file (.yaml or .lisp)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "parameter override key=value (repeatable)")

	return cmd
}
