package ast

// ExprType represents the type of an AST node
type ExprType uint16

// Node types
const (
	exprTypeValue  ExprType = 128
	exprTypeVector          = 256

	ExprTypeNil    = exprTypeValue | 1
	ExprTypeBool   = exprTypeValue | 2
	ExprTypeInt    = exprTypeValue | 4
	ExprTypeFloat  = exprTypeValue | 8
	ExprTypeString = exprTypeValue | 16
	ExprTypeSymbol = exprTypeValue | 32

	ExprTypeList   = exprTypeVector | 1
	ExprTypeLambda = exprTypeVector | 2
)

func (et ExprType) String() string {
	s, ok := exprTypeName[et]
	if ok {
		return s
	}
	return ""
}

var exprTypeName = map[ExprType]string{
	ExprTypeNil:    "nil",
	ExprTypeBool:   "bool",
	ExprTypeInt:    "int",
	ExprTypeFloat:  "float",
	ExprTypeString: "string",
	ExprTypeSymbol: "symbol",
	ExprTypeList:   "list",
	ExprTypeLambda: "lambda",
}

// IsValue returns true if the expression is an atom
func IsValue(e Expr) bool {
	return e != nil && e.Type()&exprTypeValue > 0
}

// IsVector returns true if the expression holds child expressions
func IsVector(e Expr) bool {
	return e != nil && e.Type()&exprTypeVector > 0
}
