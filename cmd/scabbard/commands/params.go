package commands

import (
	"fmt"
	"strings"

	"github.com/chazu/scabbard/pkg/params"
	"github.com/spf13/cobra"
)

func newParamsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List every documented parameter with its default and domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, d := range params.Defs() {
				switch d.Kind {
				case params.KindFloat:
					fmt.Fprintf(w, "%-22s float  default=%-8g range=[%g, %g]  %s\n",
						d.Key, d.Float, d.Min, d.Max, d.Doc)
				case params.KindBool:
					fmt.Fprintf(w, "%-22s bool   default=%-8v %s\n", d.Key, d.Bool, d.Doc)
				case params.KindEnum:
					fmt.Fprintf(w, "%-22s enum   default=%-8s one of: %s  %s\n",
						d.Key, d.Enum, strings.Join(d.Domain, ", "), d.Doc)
				}
			}
			return nil
		},
	}
}
