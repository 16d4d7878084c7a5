package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/multidouble/quad"
)

var constants = []struct {
	Name  string
	Value quad.Quad
}{
	{"log2", quad.Ln2},
	{"log2_inv", quad.Ln2Inv},
	{"log10", quad.Ln10},
	{"log10_inv", quad.Ln10Inv},
	{"pi", quad.Pi},
	{"two_pi", quad.TwoPi},
	{"pi_over_2", quad.PiOver2},
	{"pi_over_4", quad.PiOver4},
	{"pi_over_4_inv", quad.PiOver4Inv},
	{"sqrt2", quad.Sqrt2},
}

var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Print the constant table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range constants {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%-14s %-42x %v\n", c.Name, c.Value, c.Value)
			if err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(constantsCmd)
}
