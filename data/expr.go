package data

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// functions are the names visible to expressions besides x and expr's
// builtins (abs, floor, ceil, round, min, max, ...).
var functions = map[string]interface{}{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"cot":   func(x float64) float64 { return 1 / math.Tan(x) },
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"sqrt":  math.Sqrt,
	"log":   math.Log,
	"log10": math.Log10,
	"log2":  math.Log2,
	"exp":   math.Exp,
	"pi":    math.Pi,
	"e":     math.E,
}

func newEnv(x float64) map[string]interface{} {
	env := make(map[string]interface{}, len(functions)+1)
	for k, v := range functions {
		env[k] = v
	}
	env["x"] = x
	return env
}

// Compile is the default Compiler. It accepts expressions in expr's
// language, e.g. "sin(x)", "x**2 - 3*x" or "log(abs(x))".
//
// The returned Func is not safe for concurrent use.
func Compile(src string) (Func, error) {
	program, err := expr.Compile(src, expr.Env(newEnv(0)), expr.AsFloat64())
	if err != nil {
		return nil, err
	}

	env := newEnv(0)
	var machine vm.VM
	return func(x float64) (float64, error) {
		env["x"] = x
		out, err := machine.Run(program, env)
		if err != nil {
			return 0, err
		}
		switch v := out.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		}
		return 0, fmt.Errorf("data: %q yields %T, not a number", src, out)
	}, nil
}
