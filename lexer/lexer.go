package lexer

import (
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const eof = rune(-1)

type lexState func(*Lexer) lexState

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)

	isDigit      = isTokenType(TokenInteger)
	isSymbolChar = isTokenType(TokenSymbol)
)

// New initializes a Lexer object
func New(in []byte) *Lexer {
	return &Lexer{
		in:     string(in),
		tokens: []Token{},
	}
}

// Lexer represents a lexical analyzer. A Lexer scans its whole input in a
// single pass and is not meant to be reused.
type Lexer struct {
	in string

	tokens  []Token
	lastErr error

	start  int
	offset int
}

// Tokens returns the tokens collected so far.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan tokenizes the input until it is fully consumed or until a character
// that does not start any token is found.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.lastErr
}

func (lx *Lexer) emit(tok Token) {
	lx.tokens = append(lx.tokens, tok)
	lx.ignore()
}

func (lx *Lexer) ignore() {
	lx.start = lx.offset
}

func (lx *Lexer) lexeme() string {
	return lx.in[lx.start:lx.offset]
}

func (lx *Lexer) peekAt(offset int) rune {
	if offset >= len(lx.in) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(lx.in[offset:])
	return r
}

func (lx *Lexer) peek() rune {
	return lx.peekAt(lx.offset)
}

// peekSecond returns the rune that follows the next one.
func (lx *Lexer) peekSecond() rune {
	if lx.offset >= len(lx.in) {
		return eof
	}
	_, w := utf8.DecodeRuneInString(lx.in[lx.offset:])
	return lx.peekAt(lx.offset + w)
}

func (lx *Lexer) next() (rune, error) {
	if lx.offset >= len(lx.in) {
		return eof, io.EOF
	}
	r, w := utf8.DecodeRuneInString(lx.in[lx.offset:])
	lx.offset += w
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	for isWhitespace(lx.peek()) {
		_, _ = lx.next()
	}
	lx.ignore()

	r := lx.peek()
	switch {
	case r == eof:
		return nil

	case isOpenList(r):
		return lexEmit(TokenOpenList)
	case isCloseList(r):
		return lexEmit(TokenCloseList)

	case isDigit(r), isMinusSign(r) && isDigit(lx.peekSecond()):
		return lexInteger
	case isSymbolChar(r):
		return lexSymbol

	default:
		return lexStateError(ErrUnexpectedChar)
	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
		switch tt {
		case TokenOpenList:
			lx.emit(NewOpenList())
		case TokenCloseList:
			lx.emit(NewCloseList())
		}
		return lexDefaultState
	}
}

func lexInteger(lx *Lexer) lexState {
	// sign or first digit
	if _, err := lx.next(); err != nil {
		return lexStateError(err)
	}
	for isDigit(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}

	i64, err := strconv.ParseInt(lx.lexeme(), 10, 64)
	if err != nil {
		return lexStateError(errors.Wrapf(ErrIntegerRange, "%q", lx.lexeme()))
	}

	lx.emit(NewInteger(i64))
	return lexDefaultState
}

func lexSymbol(lx *Lexer) lexState {
	for isSymbolChar(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.emit(NewSymbol(lx.lexeme()))
	return lexDefaultState
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = &LexError{
			Offset:    lx.start,
			Remainder: lx.in[lx.start:],
			Err:       err,
		}
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if the input can't be tokenized in full.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(in)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}

// TokenizeString is like Tokenize but takes a string.
func TokenizeString(in string) ([]Token, error) {
	return Tokenize([]byte(in))
}
