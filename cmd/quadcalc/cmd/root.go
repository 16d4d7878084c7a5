package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/multidouble/eft"
)

// Error is the error class for the command line.
var Error = errs.Class("quadcalc")

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "quadcalc",
	Short: "Double-double and quad-double calculator",
	Long: `quadcalc evaluates functions in double-double (quad) precision and
quad-double (oct) arithmetic.

Numbers are accepted as decimal literals of any length, float64 hex
literals or exact hi,lo pairs:

  quadcalc eval exp 1
  quadcalc eval pow 2 0.5
  quadcalc eval --hex log 0x1.8p+1,0x1p-60`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "fma: %t\n", eft.HasFMA())
		}
	},
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.Name(), err)
	}

	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "table configuration file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
