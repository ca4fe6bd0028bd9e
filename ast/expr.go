package ast

import (
	"strconv"
)

// Expr represents a node of the AST. Trees are built once and never
// modified afterwards; nodes hold no references to their parents.
type Expr interface {
	Type() ExprType
	String() string
}

// Nil is the empty value.
type Nil struct{}

// Bool is a boolean value.
type Bool bool

// Integer is a signed 64-bit integer value.
type Integer int64

// Float is a 64-bit floating point value.
type Float float64

// String is a string value.
type String string

// Symbol is a name.
type Symbol string

// Lambda is an anonymous function with named parameters.
type Lambda struct {
	Params []string
	Body   []Expr
}

// List is an ordered sequence of expressions.
type List []Expr

// NewList creates a list holding the given expressions in order. The
// returned list is never nil.
func NewList(children ...Expr) List {
	l := make(List, 0, len(children))
	return append(l, children...)
}

func (Nil) Type() ExprType     { return ExprTypeNil }
func (Bool) Type() ExprType    { return ExprTypeBool }
func (Integer) Type() ExprType { return ExprTypeInt }
func (Float) Type() ExprType   { return ExprTypeFloat }
func (String) Type() ExprType  { return ExprTypeString }
func (Symbol) Type() ExprType  { return ExprTypeSymbol }
func (Lambda) Type() ExprType  { return ExprTypeLambda }
func (List) Type() ExprType    { return ExprTypeList }

func (Nil) String() string {
	return ":nil"
}

func (b Bool) String() string {
	if b {
		return ":true"
	}
	return ":false"
}

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (s String) String() string {
	return strconv.Quote(string(s))
}

func (s Symbol) String() string {
	return string(s)
}

func (l Lambda) String() string {
	return string(Encode(l))
}

func (l List) String() string {
	return string(Encode(l))
}

// Children returns the child expressions of vector nodes, or nil for
// atoms.
func Children(e Expr) []Expr {
	switch v := e.(type) {
	case List:
		return v
	case Lambda:
		return v.Body
	}
	return nil
}

// Equal reports whether two trees are structurally equal.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case List:
		return equalSeq(av, b.(List))
	case Lambda:
		bv := b.(Lambda)
		if len(av.Params) != len(bv.Params) {
			return false
		}
		for i := range av.Params {
			if av.Params[i] != bv.Params[i] {
				return false
			}
		}
		return equalSeq(av.Body, bv.Body)
	}
	return a == b
}

func equalSeq(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Depth returns the nesting depth of the tree. Atoms have depth zero and
// an empty list has depth one.
func Depth(e Expr) int {
	if !IsVector(e) {
		return 0
	}
	deepest := 0
	for _, c := range Children(e) {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

var (
	_ = Expr(Nil{})
	_ = Expr(Bool(false))
	_ = Expr(Integer(0))
	_ = Expr(Float(0))
	_ = Expr(String(""))
	_ = Expr(Symbol(""))
	_ = Expr(Lambda{})
	_ = Expr(List{})
)
