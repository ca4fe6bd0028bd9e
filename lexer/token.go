package lexer

import (
	"fmt"
	"strconv"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	i64 int64
}

// NewOpenList creates a "(" token
func NewOpenList() Token {
	return Token{tt: TokenOpenList, lexeme: "("}
}

// NewCloseList creates a ")" token
func NewCloseList() Token {
	return Token{tt: TokenCloseList, lexeme: ")"}
}

// NewInteger creates an integer token holding the given value
func NewInteger(v int64) Token {
	return Token{tt: TokenInteger, lexeme: strconv.FormatInt(v, 10), i64: v}
}

// NewSymbol creates a symbol token. The name is not validated.
func NewSymbol(name string) Token {
	return Token{tt: TokenSymbol, lexeme: name}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Int returns the value of an integer token, or zero for any other type.
func (t Token) Int() int64 {
	return t.i64
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q)", t.tt, t.lexeme)
}
