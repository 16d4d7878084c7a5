package main

import (
	"os"

	"github.com/calebcase/multidouble/cmd/quadcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
