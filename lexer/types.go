package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenOpenList            // Open parenthesis: "("
	TokenCloseList           // Close parenthesis: ")"
	TokenInteger             // Signed decimal integer: -?[0-9]+
	TokenSymbol              // Letters, digits and underscore: [A-Za-z0-9_]+
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:  []rune{'('},
	TokenCloseList: []rune{')'},
	TokenInteger:   []rune("0123456789"),
	TokenSymbol:    []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"),
}

// whitespace separates tokens and is never emitted.
var whitespace = []rune(" \t\n\r")

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenInteger:   "integer",
	TokenSymbol:    "symbol",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isWhitespace(r rune) bool {
	for _, v := range whitespace {
		if v == r {
			return true
		}
	}
	return false
}

func isMinusSign(r rune) bool {
	return r == '-'
}
