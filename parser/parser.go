package parser

import (
	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/lexer"
)

// DefaultMaxDepth is the list nesting limit used when Options.MaxDepth is
// not set.
const DefaultMaxDepth = 10000

// Options modify the behaviour of a Parser
type Options struct {
	// AllowTrailing makes Parse ignore any tokens that follow the first
	// expression instead of failing with ErrTrailingTokens.
	AllowTrailing bool

	// MaxDepth is the maximum number of nested lists.
	MaxDepth int
}

// Parser builds expression trees out of token sequences
type Parser struct {
	opts Options
	g    grammar
}

// New creates a parser with default options
func New() *Parser {
	p := &Parser{}
	p.SetOptions(Options{})
	return p
}

// SetOptions replaces the options of the parser
func (p *Parser) SetOptions(opts Options) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	p.opts = opts
	p.g = grammar{maxDepth: opts.MaxDepth}
}

// Options returns the options in use
func (p *Parser) Options() Options {
	return p.opts
}

// ParseExpr parses a single expression at the start of ts and returns it
// along with the tokens that follow.
func (p *Parser) ParseExpr(ts Tokens) (ast.Expr, Tokens, error) {
	return p.g.expr(0)(ts)
}

// ParseTokens parses exactly one expression out of ts.
func (p *Parser) ParseTokens(ts Tokens) (ast.Expr, error) {
	expr, rest, err := p.ParseExpr(ts)
	if err != nil {
		return nil, err
	}
	if rest.Len() > 0 && !p.opts.AllowTrailing {
		return nil, newParseError(ErrTrailingTokens, rest)
	}
	return expr, nil
}

// ParseAllTokens parses expressions until ts is exhausted.
func (p *Parser) ParseAllTokens(ts Tokens) ([]ast.Expr, error) {
	exprs := []ast.Expr{}
	for ts.Len() > 0 {
		expr, rest, err := p.ParseExpr(ts)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		ts = rest
	}
	return exprs, nil
}

// Parse tokenizes and parses one expression. Lexer failures are returned
// as *lexer.LexError and grammar failures as *ParseError.
func (p *Parser) Parse(in []byte) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return p.ParseTokens(NewTokens(tokens))
}

// ParseAll tokenizes and parses every expression in the input.
func (p *Parser) ParseAll(in []byte) ([]ast.Expr, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return p.ParseAllTokens(NewTokens(tokens))
}

var defaultParser = New()

// ParseExpr parses a single expression at the start of ts using default
// options.
func ParseExpr(ts Tokens) (ast.Expr, Tokens, error) {
	return defaultParser.ParseExpr(ts)
}

// Parse takes an array of bytes and returns the expression within it.
func Parse(in []byte) (ast.Expr, error) {
	return defaultParser.Parse(in)
}

// ParseAll takes an array of bytes and returns all the expressions within
// it.
func ParseAll(in []byte) ([]ast.Expr, error) {
	return defaultParser.ParseAll(in)
}
