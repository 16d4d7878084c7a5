package eft

import (
	"math"
	"runtime"

	"golang.org/x/sys/cpu"
)

// twoProd is the selected implementation of TwoProd.
var twoProd = TwoProdDekker

// hasFMA reports whether twoProd uses a hardware fused multiply-add.
var hasFMA bool

func init() {
	hasFMA = detectFMA()
	if hasFMA {
		twoProd = TwoProdFMA
	}
}

// detectFMA reports whether math.FMA is backed by a single instruction.
func detectFMA() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasFMA
	case "arm64", "ppc64", "ppc64le", "s390x", "riscv64":
		// FMA is part of the base instruction set.
		return true
	}

	return false
}

// HasFMA reports whether TwoProd uses the fused multiply-add path.
func HasFMA() bool {
	return hasFMA
}

// TwoProdFMA returns p = fl(a*b) and the rounding error e using a fused
// multiply-add.
func TwoProdFMA(a, b float64) (p, e float64) {
	p = a * b
	e = math.FMA(a, b, -p)

	return p, e
}

// TwoProd returns p = fl(a*b) and the rounding error e such that
// p + e == a * b exactly.
func TwoProd(a, b float64) (p, e float64) {
	return twoProd(a, b)
}
