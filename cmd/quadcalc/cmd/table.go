package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Evaluate the reference tables of a configuration file",
	Long: `Evaluates every table of the configuration given with --config and
prints one line per input:

  function input -> hi,lo decimal`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		return Error.New("table requires --config")
	}

	c, err := LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "config: %s precision=%d width=%d tables=%d\n",
			cfgFile, c.Precision, c.Width, len(c.Tables))
	}

	spec := c.Spec()
	out := cmd.OutOrStdout()

	for _, t := range c.Tables {
		for _, input := range t.Inputs {
			parts := strings.Split(input, ";")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}

			v, err := evaluate(t.Function, parts)
			if err != nil {
				return Error.New("%s(%s): %v", t.Function, input, err)
			}

			_, err = fmt.Fprintf(out, "%s %s -> %x %s\n", t.Function, input, v, spec.Sprint(v))
			if err != nil {
				return err
			}
		}
	}

	return nil
}
