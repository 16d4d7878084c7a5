package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/multidouble/oct"
	"github.com/calebcase/multidouble/stream"
)

var octOperators = map[string]func(a, b oct.Oct) oct.Oct{
	"add":       oct.Oct.Add,
	"sub":       oct.Oct.Sub,
	"mul":       oct.Oct.Mul,
	"operator+": oct.Oct.Add,
	"operator-": oct.Oct.Sub,
	"operator*": oct.Oct.Mul,
}

var octCmd = &cobra.Command{
	Use:   "oct <operator> <input> <output>",
	Short: "Apply an oct operator to every line of a file",
	Long: `Reads the input file line by line. Each line holds two oct numbers as
eight comma separated float64 literals, four terms each. The result of the
operator (add, sub or mul) is written to the output file as four exact hex
floats per line, and the time spent in the arithmetic is printed.

Output files ending in .bin use the compact stream encoding instead, see the
decode command. Files ending in .zst are zstd compressed.`,
	Args: cobra.ExactArgs(3),
	RunE: runOct,
}

func init() {
	rootCmd.AddCommand(octCmd)
}

func runOct(cmd *cobra.Command, args []string) (err error) {
	op, ok := octOperators[args[0]]
	if !ok {
		return Error.New("unknown operator %q", args[0])
	}

	in, err := openFile(args[1])
	if err != nil {
		return err
	}
	defer func() { err = errs.Combine(err, in.Close()) }()

	inputs, err := readOctPairs(in)
	if err != nil {
		return err
	}

	results := make([]oct.Oct, len(inputs))

	start := time.Now()
	for i, pair := range inputs {
		results[i] = op(pair[0], pair[1])
	}
	elapsed := time.Since(start)

	fmt.Fprintf(cmd.OutOrStdout(), "Time: %.3e ms\n", float64(elapsed)/float64(time.Millisecond))

	out, err := createFile(args[2])
	if err != nil {
		return err
	}
	defer func() { err = errs.Combine(err, Error.Wrap(out.Close())) }()

	if baseExt(args[2]) == ".bin" {
		return encodeOcts(out, results)
	}

	return writeOcts(out, results)
}

// readOctPairs parses lines of eight finite float64 literals.
func readOctPairs(r io.Reader) (pairs [][2]oct.Oct, err error) {
	scanner := bufio.NewScanner(r)

	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, ",")
		if len(fields) != 8 {
			return nil, Error.New("line %d: expected 8 values, got %d", line, len(fields))
		}

		var pair [2]oct.Oct
		for i := range pair {
			pair[i], err = oct.Parse(strings.Join(fields[i*4:i*4+4], ","))
			if err != nil {
				return nil, Error.New("line %d: %v", line, err)
			}

			if pair[i].IsNaN() || pair[i].IsInf(0) {
				return nil, Error.New("line %d: non-finite value", line)
			}
		}

		pairs = append(pairs, pair)
	}

	if err := scanner.Err(); err != nil {
		return nil, Error.Wrap(err)
	}

	return pairs, nil
}

func writeOcts(w io.Writer, octs []oct.Oct) error {
	bw := bufio.NewWriter(w)

	var buf []byte
	for _, o := range octs {
		buf = oct.AppendHex(buf[:0], o)
		buf = append(buf, '\n')

		if _, err := bw.Write(buf); err != nil {
			return Error.Wrap(err)
		}
	}

	return Error.Wrap(bw.Flush())
}

func encodeOcts(w io.Writer, octs []oct.Oct) error {
	bw := bufio.NewWriter(w)
	e := stream.NewEncoder(bw)

	for _, o := range octs {
		if err := e.EncodeOct(o); err != nil {
			return err
		}
	}

	return Error.Wrap(bw.Flush())
}
