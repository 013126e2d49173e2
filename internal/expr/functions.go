package expr

import "math"

// fn describes a builtin function: the evaluator rejects a call whose
// argument count falls outside [minArgs, maxArgs] by returning ok=false,
// same as an unbound identifier.
type fn struct {
	minArgs, maxArgs int
	call             func(args []float64) float64
}

func power(x, y float64) float64 { return math.Pow(x, y) }

var builtins = map[string]fn{
	"sin":   {1, 1, func(a []float64) float64 { return math.Sin(a[0]) }},
	"cos":   {1, 1, func(a []float64) float64 { return math.Cos(a[0]) }},
	"tan":   {1, 1, func(a []float64) float64 { return math.Tan(a[0]) }},
	"asin":  {1, 1, func(a []float64) float64 { return math.Asin(a[0]) }},
	"acos":  {1, 1, func(a []float64) float64 { return math.Acos(a[0]) }},
	"atan":  {1, 1, func(a []float64) float64 { return math.Atan(a[0]) }},
	"sqrt":  {1, 1, func(a []float64) float64 { return math.Sqrt(a[0]) }},
	"abs":   {1, 1, func(a []float64) float64 { return math.Abs(a[0]) }},
	"ceil":  {1, 1, func(a []float64) float64 { return math.Ceil(a[0]) }},
	"floor": {1, 1, func(a []float64) float64 { return math.Floor(a[0]) }},

	// log(x, a) is log base a of x. Base 1 naturally yields +/-Inf via
	// division by math.Log(1) == 0, with no special-casing here.
	"log": {2, 2, func(a []float64) float64 { return math.Log(a[0]) / math.Log(a[1]) }},

	"round": {1, 2, func(a []float64) float64 {
		n := 0.0
		if len(a) == 2 {
			n = a[1]
		}
		return roundTo(a[0], n)
	}},

	"max": {2, 2, func(a []float64) float64 {
		if a[0] > a[1] {
			return a[0]
		}
		return a[1]
	}},
	"min": {2, 2, func(a []float64) float64 {
		if a[0] < a[1] {
			return a[0]
		}
		return a[1]
	}},

	"sat":  {1, 1, func(a []float64) float64 { return clamp(a[0], 0, 1) }},
	"vsat": {1, 1, func(a []float64) float64 { return clamp(a[0], 0, 127) }},

	// nl(x, k=-2) = (2^(k*x) - 1) / (2^k - 1).
	"nl": {1, 2, func(a []float64) float64 {
		k := -2.0
		if len(a) == 2 {
			k = a[1]
		}
		return (math.Pow(2, k*a[0]) - 1) / (math.Pow(2, k) - 1)
	}},
}

func callFunction(name string, args []float64) (float64, bool) {
	f, ok := builtins[name]
	if !ok {
		return 0, false
	}
	if len(args) < f.minArgs || len(args) > f.maxArgs {
		return 0, false
	}
	return f.call(args), true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundTo(v, digits float64) float64 {
	p := math.Pow(10, digits)
	return math.Round(v*p) / p
}
