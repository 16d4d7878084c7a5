package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/multidouble/quad"
)

var (
	evalFormat string
	evalHex    bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <function> <arg> [arg]",
	Short: "Evaluate a function in quad precision",
	Long: `Evaluates a function and prints the result in scientific notation.

Functions: ` + strings.Join(functionNames(), ", ") + `

Examples:
  quadcalc eval sqrt 2
  quadcalc eval --format 40.32 atan2 -1 -1
  quadcalc eval --hex exp 0x1.e37bed2c3aa0bp+0,-0x1.e2d5f1238d4c0p-56`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	// Arguments such as -1 must not be read as flags.
	evalCmd.Flags().SetInterspersed(false)
	evalCmd.Flags().StringVarP(&evalFormat, "format", "f", "", "format specification [width][.precision][e]")
	evalCmd.Flags().BoolVar(&evalHex, "hex", false, "print the exact high and low parts")
}

func runEval(cmd *cobra.Command, args []string) error {
	spec, err := quad.ParseSpec(evalFormat)
	if err != nil {
		return err
	}

	v, err := evaluate(args[0], args[1:])
	if err != nil {
		return err
	}

	if evalHex {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%x\n", v)

		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), spec.Sprint(v))

	return err
}
