package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  Expr
		Out string
	}{
		{NewList(), `()`},
		{Integer(-42), `-42`},
		{Float(4.25), `4.25`},
		{String("say \"hi\""), `"say \"hi\""`},
		{Bool(true), `:true`},
		{Bool(false), `:false`},
		{Nil{}, `:nil`},
		{nil, `:nil`},
		{NewList(Symbol("plus"), Integer(40), Integer(2)), `(plus 40 2)`},
		{NewList(NewList(Integer(42))), `((42))`},
		{NewList(Integer(1), NewList(), NewList(Symbol("a"), NewList(Integer(2)))), `(1 () (a (2)))`},
		{Lambda{Params: []string{"a", "b"}, Body: []Expr{NewList(Symbol("plus"), Symbol("a"), Symbol("b"))}}, `(lambda (a b) (plus a b))`},
		{Lambda{}, `(lambda ())`},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In)))
		if testCases[i].In != nil {
			assert.Equal(t, testCases[i].Out, testCases[i].In.String())
		}
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer

	Print(&buf, NewList(Symbol("the_number"), NewList(Integer(42))))

	expected := "(list)[2]\n" +
		"    (symbol): the_number\n" +
		"    (list)[1]\n" +
		"        (int): 42\n"
	assert.Equal(t, expected, buf.String())

	buf.Reset()
	Print(&buf, Lambda{Params: []string{"x"}, Body: []Expr{Symbol("x")}})
	assert.Equal(t, "(lambda) [x]\n    (symbol): x\n", buf.String())

	buf.Reset()
	Print(&buf, nil)
	assert.Equal(t, ":nil\n", buf.String())
}
