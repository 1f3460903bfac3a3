package lexer

import (
	"errors"
	"testing"

	"github.com/AleX77NP/jayscript/internal/compiler/token"
)

func TestReadTokenSequence(t *testing.T) {
	input := `function main() {
  return 249;
}`

	expected := []token.Token{
		{Type: token.TokenFunction, Literal: "function"},
		{Type: token.TokenIdent, Literal: "main"},
		{Type: token.TokenLParen, Literal: "("},
		{Type: token.TokenRParen, Literal: ")"},
		{Type: token.TokenLBrace, Literal: "{"},
		{Type: token.TokenReturn, Literal: "return"},
		{Type: token.TokenNumber, Literal: "249"},
		{Type: token.TokenSemicolon, Literal: ";"},
		{Type: token.TokenRBrace, Literal: "}"},
		{Type: token.TokenEOF, Literal: ""},
	}

	l := NewLexer(input)
	for i, want := range expected {
		tok, err := l.Read()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok.Type != want.Type {
			t.Fatalf("token %d: type expected=%q, got=%q", i, want.Type, tok.Type)
		}
		if tok.Literal != want.Literal {
			t.Fatalf("token %d: literal expected=%q, got=%q", i, want.Literal, tok.Literal)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := NewLexer("return 5")

	for i := 0; i < 3; i++ {
		tok, err := l.Peek()
		if err != nil {
			t.Fatalf("Peek() error: %v", err)
		}
		if tok.Type != token.TokenReturn {
			t.Fatalf("Peek() expected=%q, got=%q", token.TokenReturn, tok.Type)
		}
	}

	tok, err := l.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if tok.Type != token.TokenReturn {
		t.Fatalf("Read() after Peek() expected=%q, got=%q", token.TokenReturn, tok.Type)
	}
	tok, err = l.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if tok.Type != token.TokenNumber || tok.Literal != "5" {
		t.Fatalf("Read() expected NUMBER \"5\", got %q %q", tok.Type, tok.Literal)
	}
}

func TestEOFIsRepeatable(t *testing.T) {
	l := NewLexer("   ")
	for i := 0; i < 3; i++ {
		tok, err := l.Read()
		if err != nil {
			t.Fatalf("Read() %d error: %v", i, err)
		}
		if tok.Type != token.TokenEOF {
			t.Fatalf("Read() %d expected EOF, got %q", i, tok.Type)
		}
	}
}

func TestUnderscoreIdentifiers(t *testing.T) {
	l := NewLexer("_fn2 returned")

	tok, err := l.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if tok.Type != token.TokenIdent || tok.Literal != "_fn2" {
		t.Fatalf("expected IDENT \"_fn2\", got %q %q", tok.Type, tok.Literal)
	}

	// Keyword reclassification is exact-match only.
	tok, err = l.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if tok.Type != token.TokenIdent || tok.Literal != "returned" {
		t.Fatalf("expected IDENT \"returned\", got %q %q", tok.Type, tok.Literal)
	}
}

func TestLexError(t *testing.T) {
	l := NewLexer("return 5 % 2")

	for i := 0; i < 2; i++ {
		if _, err := l.Read(); err != nil {
			t.Fatalf("unexpected error before bad character: %v", err)
		}
	}

	_, err := l.Read()
	if err == nil {
		t.Fatalf("expected a lex error for %q", "%")
	}
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *LexError, got %T", err)
	}
	if lexErr.Char != '%' {
		t.Errorf("LexError.Char expected=%q, got=%q", '%', lexErr.Char)
	}
	if got := err.Error(); got != `unexpected character '%'` {
		t.Errorf("error message expected=%q, got=%q", `unexpected character '%'`, got)
	}
}
