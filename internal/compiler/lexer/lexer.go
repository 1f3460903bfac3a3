package lexer

import (
	"fmt"
	"unicode"

	"github.com/AleX77NP/jayscript/internal/compiler/token"
)

// LexError reports a character that cannot begin any token.
type LexError struct {
	Char byte
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q", e.Char)
}

// Lexer turns a source string into a stream of tokens. It carries a
// one-token lookahead buffer shared with the parser: Peek fills the buffer
// without consuming, Read drains it (or scans fresh).
type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char

	lookahead *token.Token
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (token.Token, error) {
	if l.lookahead == nil {
		tok, err := l.scan()
		if err != nil {
			return token.Token{}, err
		}
		l.lookahead = &tok
	}
	return *l.lookahead, nil
}

// Read returns and consumes the next token.
func (l *Lexer) Read() (token.Token, error) {
	if l.lookahead != nil {
		tok := *l.lookahead
		l.lookahead = nil
		return tok, nil
	}
	return l.scan()
}

// readChar advances the lexer's position and updates the current character.
// At end of input ch becomes 0 (ASCII NUL).
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) scan() (token.Token, error) {
	l.skipWhitespace()

	switch l.ch {
	case '(':
		return l.punct(token.TokenLParen), nil
	case ')':
		return l.punct(token.TokenRParen), nil
	case '{':
		return l.punct(token.TokenLBrace), nil
	case '}':
		return l.punct(token.TokenRBrace), nil
	case ';':
		return l.punct(token.TokenSemicolon), nil
	case 0:
		return token.Token{Type: token.TokenEOF, Literal: ""}, nil
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return token.Token{Type: lookupIdent(ident), Literal: ident}, nil
		}
		if isDigit(l.ch) {
			return token.Token{Type: token.TokenNumber, Literal: l.readNumber()}, nil
		}
		return token.Token{}, &LexError{Char: l.ch}
	}
}

// punct builds a single-character token and advances past it.
func (l *Lexer) punct(t token.TokenType) token.Token {
	tok := token.Token{Type: t, Literal: string(l.ch)}
	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for unicode.IsSpace(rune(l.ch)) {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber consumes a run of decimal digits. Signs, decimal points and
// exponents are not part of a number token.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// keywords maps identifier strings to their corresponding token types.
var keywords = map[string]token.TokenType{
	"function": token.TokenFunction,
	"return":   token.TokenReturn,
}

// lookupIdent checks if an identifier is a keyword, returning the keyword's
// token type or token.TokenIdent if it's not a keyword.
func lookupIdent(ident string) token.TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return token.TokenIdent
}
