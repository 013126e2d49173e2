package expr

// Env is the parameter environment an expression is evaluated against:
// identifiers extracted from a sample filename by the fileparam package,
// plus any csv row-derived bindings the caller chooses to add.
type Env map[string]float64

// Eval parses and evaluates src, returning ok=false if the source fails to
// parse, references an unbound identifier, calls an unknown function, or
// calls a function with the wrong number of arguments. Domain errors inside a well-formed
// expression (division by zero, sqrt of a negative number, and the like)
// are not failures here: they flow through as IEEE-754 NaN or Inf, which
// FormatFloat renders like any other float.
func Eval(src string, env Env) (float64, bool) {
	node, err := parse(src)
	if err != nil {
		return 0, false
	}
	return evaluate(node, env)
}

func evaluate(n Node, env Env) (float64, bool) {
	switch n := n.(type) {
	case *NumberLit:
		return n.Value, true

	case *Ident:
		v, ok := env[n.Name]
		return v, ok

	case *UnaryExpr:
		x, ok := evaluate(n.X, env)
		if !ok {
			return 0, false
		}
		return -x, true

	case *BinaryExpr:
		x, ok := evaluate(n.X, env)
		if !ok {
			return 0, false
		}
		y, ok := evaluate(n.Y, env)
		if !ok {
			return 0, false
		}
		switch n.Op {
		case TokenPlus:
			return x + y, true
		case TokenMinus:
			return x - y, true
		case TokenStar:
			return x * y, true
		case TokenSlash:
			return x / y, true
		case TokenCaret:
			return power(x, y), true
		}
		return 0, false

	case *CallExpr:
		args := make([]float64, len(n.Args))
		for i, a := range n.Args {
			v, ok := evaluate(a, env)
			if !ok {
				return 0, false
			}
			args[i] = v
		}
		return callFunction(n.Name, args)

	default:
		return 0, false
	}
}
