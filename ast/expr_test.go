package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestExprTypes(t *testing.T) {
	testCases := []struct {
		In     Expr
		Type   ExprType
		Name   string
		Vector bool
	}{
		{Nil{}, ExprTypeNil, "nil", false},
		{Bool(true), ExprTypeBool, "bool", false},
		{Integer(42), ExprTypeInt, "int", false},
		{Float(4.2), ExprTypeFloat, "float", false},
		{String("abc"), ExprTypeString, "string", false},
		{Symbol("abc"), ExprTypeSymbol, "symbol", false},
		{NewList(), ExprTypeList, "list", true},
		{Lambda{}, ExprTypeLambda, "lambda", true},
	}

	for i := range testCases {
		e := testCases[i].In
		assert.Equal(t, testCases[i].Type, e.Type())
		assert.Equal(t, testCases[i].Name, e.Type().String())
		assert.Equal(t, testCases[i].Vector, IsVector(e))
		assert.Equal(t, !testCases[i].Vector, IsValue(e))
	}

	assert.False(t, IsValue(nil))
	assert.False(t, IsVector(nil))
	assert.Equal(t, "", ExprType(0).String())
}

func TestNewList(t *testing.T) {
	l := NewList()
	assert.NotNil(t, l)
	assert.Len(t, l, 0)

	l = NewList(Symbol("plus"), Integer(40), Integer(2))
	assert.Equal(t, List{Symbol("plus"), Integer(40), Integer(2)}, l)
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		A, B  Expr
		Equal bool
	}{
		{Integer(1), Integer(1), true},
		{Integer(1), Integer(2), false},
		{Integer(1), Float(1), false},
		{Symbol("a"), String("a"), false},
		{Nil{}, Nil{}, true},
		{nil, nil, true},
		{nil, Nil{}, false},
		{NewList(), List(nil), true},
		{NewList(Integer(1)), NewList(), false},
		{
			NewList(NewList(Integer(42)), Symbol("x")),
			NewList(NewList(Integer(42)), Symbol("x")),
			true,
		},
		{
			NewList(NewList(Integer(42))),
			NewList(NewList(Integer(43))),
			false,
		},
		{
			Lambda{Params: []string{"a"}, Body: []Expr{Symbol("a")}},
			Lambda{Params: []string{"a"}, Body: []Expr{Symbol("a")}},
			true,
		},
		{
			Lambda{Params: []string{"a"}, Body: []Expr{Symbol("a")}},
			Lambda{Params: []string{"b"}, Body: []Expr{Symbol("a")}},
			false,
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Equal, Equal(testCases[i].A, testCases[i].B), "case %d", i)
		assert.Equal(t, testCases[i].Equal, Equal(testCases[i].B, testCases[i].A), "case %d", i)
	}
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 0, Depth(Integer(1)))
	assert.Equal(t, 1, Depth(NewList()))
	assert.Equal(t, 2, Depth(NewList(NewList(Integer(42)))))
	assert.Equal(t, 3, Depth(NewList(Integer(1), NewList(NewList()), NewList())))
}

func TestChildren(t *testing.T) {
	l := NewList(Integer(1), Symbol("a"))
	if diff := cmp.Diff([]Expr{Integer(1), Symbol("a")}, Children(l)); diff != "" {
		t.Errorf("Children() mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, Children(Integer(1)))
}
