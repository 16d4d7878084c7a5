package cmd

import (
	"sort"
	"strings"

	"github.com/calebcase/multidouble/quad"
)

var unary = map[string]func(quad.Quad) quad.Quad{
	"abs":   quad.Abs,
	"sqrt":  quad.Sqrt,
	"exp":   quad.Exp,
	"expm1": quad.Expm1,
	"log":   quad.Log,
	"log1p": quad.Log1p,
	"log10": quad.Log10,
	"floor": quad.Floor,
	"ceil":  quad.Ceil,
	"trunc": quad.Trunc,
	"round": quad.Round,
	"sin":   quad.Sin,
	"cos":   quad.Cos,
	"tan":   quad.Tan,
	"asin":  quad.Asin,
	"acos":  quad.Acos,
	"atan":  quad.Atan,
	"sinh":  quad.Sinh,
	"cosh":  quad.Cosh,
	"tanh":  quad.Tanh,
	"asinh": quad.Asinh,
	"acosh": quad.Acosh,
	"atanh": quad.Atanh,
	"neg":   quad.Quad.Neg,
}

var binary = map[string]func(a, b quad.Quad) quad.Quad{
	"add":   quad.Quad.Add,
	"sub":   quad.Quad.Sub,
	"mul":   quad.Quad.Mul,
	"div":   quad.Quad.Div,
	"pow":   quad.Pow,
	"atan2": quad.Atan2,
}

// functionNames returns the names of all functions, sorted.
func functionNames() (names []string) {
	for name := range unary {
		names = append(names, name)
	}

	for name := range binary {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// evaluate applies the named function to args given as strings accepted by
// quad.Parse.
func evaluate(name string, args []string) (v quad.Quad, err error) {
	name = strings.ToLower(name)

	values := make([]quad.Quad, len(args))
	for i, arg := range args {
		values[i], err = quad.Parse(arg)
		if err != nil {
			return v, err
		}
	}

	if f, ok := unary[name]; ok {
		if len(values) != 1 {
			return v, Error.New("%s takes 1 argument, got %d", name, len(values))
		}

		return f(values[0]), nil
	}

	if f, ok := binary[name]; ok {
		if len(values) != 2 {
			return v, Error.New("%s takes 2 arguments, got %d", name, len(values))
		}

		return f(values[0], values[1]), nil
	}

	return v, Error.New("unknown function %q", name)
}
