package expr

// Node is the tagged-variant interface implemented by every expression AST
// node: number literal, identifier, unary/binary operator, or call.
type Node interface {
	exprNode()
}

// NumberLit is a literal integer or fractional decimal.
type NumberLit struct {
	Value float64
}

func (*NumberLit) exprNode() {}

// Ident is a bare identifier, resolved against the parameter environment
// at evaluation time.
type Ident struct {
	Name string
}

func (*Ident) exprNode() {}

// UnaryExpr is a prefix operator applied to a single operand. Only "-" is
// supported.
type UnaryExpr struct {
	Op TokenKind
	X  Node
}

func (*UnaryExpr) exprNode() {}

// BinaryExpr is an infix operator applied to two operands.
type BinaryExpr struct {
	Op   TokenKind
	X, Y Node
}

func (*BinaryExpr) exprNode() {}

// CallExpr is a named function call with positional arguments.
type CallExpr struct {
	Name string
	Args []Node
}

func (*CallExpr) exprNode() {}
