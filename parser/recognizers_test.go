package parser

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/lexer"
)

func TestTagToken(t *testing.T) {
	testCases := []struct {
		Match tokenMatcher
		In    []lexer.Token
		Out   []lexer.Token
		Rest  []lexer.Token
	}{
		{
			tagOpenList,
			[]lexer.Token{lexer.NewOpenList(), lexer.NewCloseList()},
			[]lexer.Token{lexer.NewOpenList()},
			[]lexer.Token{lexer.NewCloseList()},
		},
		{
			tagCloseList,
			[]lexer.Token{lexer.NewCloseList(), lexer.NewOpenList()},
			[]lexer.Token{lexer.NewCloseList()},
			[]lexer.Token{lexer.NewOpenList()},
		},
		{
			tagInteger,
			[]lexer.Token{lexer.NewInteger(42), lexer.NewCloseList()},
			[]lexer.Token{lexer.NewInteger(42)},
			[]lexer.Token{lexer.NewCloseList()},
		},
		{
			tagSymbol,
			[]lexer.Token{lexer.NewSymbol("()"), lexer.NewCloseList()},
			[]lexer.Token{lexer.NewSymbol("()")},
			[]lexer.Token{lexer.NewCloseList()},
		},
	}

	for i := range testCases {
		matched, rest, err := testCases[i].Match(NewTokens(testCases[i].In))
		require.NoError(t, err)

		assert.Equal(t, testCases[i].Out, matched.Tokens())
		assert.Equal(t, testCases[i].Rest, rest.Tokens())
	}
}

func TestTagTokenMismatch(t *testing.T) {
	ts := NewTokens([]lexer.Token{lexer.NewSymbol("a")})

	_, rest, err := tagInteger(ts)
	assert.True(t, errors.Is(err, ErrUnexpectedToken))
	assert.Equal(t, ts, rest)

	_, _, err = tagOpenList(NewTokens(nil))
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "open_list", pe.Expected)
}

func TestRecognizers(t *testing.T) {
	ts := NewTokens([]lexer.Token{lexer.NewInteger(7), lexer.NewSymbol("x")})

	expr, rest, err := recognizeInteger(ts)
	require.NoError(t, err)
	assert.Equal(t, ast.Integer(7), expr)
	assert.Equal(t, 1, rest.Offset())

	_, _, err = recognizeSymbol(ts)
	assert.True(t, isSoftError(err, ts))

	expr, rest, err = recognizeSymbol(rest)
	require.NoError(t, err)
	assert.Equal(t, ast.Symbol("x"), expr)
	assert.Equal(t, 0, rest.Len())
}

func TestAlt(t *testing.T) {
	g := grammar{maxDepth: DefaultMaxDepth}
	r := alt("atom", recognizeInteger, recognizeSymbol)

	ts := NewTokens([]lexer.Token{lexer.NewSymbol("x")})
	expr, _, err := r(ts)
	require.NoError(t, err)
	assert.Equal(t, ast.Symbol("x"), expr)

	ts = NewTokens([]lexer.Token{lexer.NewOpenList(), lexer.NewCloseList()})
	_, rest, err := r(ts)
	assert.True(t, errors.Is(err, ErrUnexpectedToken))
	assert.Equal(t, ts, rest)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "atom", pe.Expected)

	// failures inside a rule that already consumed tokens are not retried
	ts = NewTokens([]lexer.Token{lexer.NewOpenList(), lexer.NewOpenList(), lexer.NewInteger(1)})
	_, _, err = g.expr(0)(ts)
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "close_list", pe.Expected)
	assert.Equal(t, 3, pe.Offset)
	assert.False(t, isSoftError(err, ts))
}

func TestMany0(t *testing.T) {
	g := grammar{maxDepth: DefaultMaxDepth}

	exprs, rest, err := many0(g.expr(0))(NewTokens(nil))
	require.NoError(t, err)
	assert.Equal(t, []ast.Expr{}, exprs)
	assert.Equal(t, 0, rest.Len())

	tokens, err := lexer.TokenizeString(`1 a (b) )`)
	require.NoError(t, err)

	exprs, rest, err = many0(g.expr(0))(NewTokens(tokens))
	require.NoError(t, err)
	assert.Equal(t, []ast.Expr{ast.Integer(1), ast.Symbol("a"), ast.NewList(ast.Symbol("b"))}, exprs)
	assert.Equal(t, "[)]", rest.String())
}
