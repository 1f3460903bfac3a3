package token

type TokenType string

const (
	// Single character tokens
	TokenLParen    TokenType = "LPAREN"    // (
	TokenRParen    TokenType = "RPAREN"    // )
	TokenLBrace    TokenType = "LBRACE"    // {
	TokenRBrace    TokenType = "RBRACE"    // }
	TokenSemicolon TokenType = "SEMICOLON" // ;

	// Keywords
	TokenFunction TokenType = "FUNCTION" // function
	TokenReturn   TokenType = "RETURN"   // return

	// Literals & Identifiers
	TokenNumber TokenType = "NUMBER" // 43
	TokenIdent  TokenType = "IDENT"  // Identifier (e.g. function name)

	// Special
	TokenEOF TokenType = "EOF"
)

// Token is an immutable lexical unit. Literal holds the raw source text
// of the token (empty for EOF).
type Token struct {
	Type    TokenType
	Literal string
}
