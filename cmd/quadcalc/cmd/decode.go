package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/multidouble/oct"
	"github.com/calebcase/multidouble/stream"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <file>",
	Short: "Print the values of a stream encoded file",
	Long: `Prints every value of a file written in the stream encoding as exact
hex terms, one value per line. With --verbose the block type and offset are
printed as well. Files ending in .zst are decompressed.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) (err error) {
	f, err := openFile(args[0])
	if err != nil {
		return err
	}
	defer func() { err = errs.Combine(err, f.Close()) }()

	out := cmd.OutOrStdout()
	d := stream.NewDecoder(bufio.NewReader(f))

	var buf []byte
	for offset := d.Consumed(); d.Next(); offset = d.Consumed() {
		if verbose {
			fmt.Fprintf(out, "%d %s ", offset, d.Type().Abbr)
		}

		buf = append(oct.AppendHex(buf[:0], d.Oct()), '\n')
		if _, err := out.Write(buf); err != nil {
			return Error.Wrap(err)
		}
	}

	return d.Err()
}
