package parser

import (
	"fmt"
	"strconv"

	"github.com/AleX77NP/jayscript/internal/compiler/ast"
	"github.com/AleX77NP/jayscript/internal/compiler/lexer"
	"github.com/AleX77NP/jayscript/internal/compiler/token"
)

// ParseError reports the first grammar violation encountered. Expected is
// empty when the parser rejected a construct's starting token rather than a
// specific expected kind; Context then names the production that failed.
type ParseError struct {
	Expected token.TokenType
	Got      token.TokenType
	Context  string
}

func (e *ParseError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
	}
	return fmt.Sprintf("unexpected %s in %s", e.Got, e.Context)
}

// Parser is an LL(1) recursive descent parser over the lexer's token
// stream. One instance owns one lexer cursor for the duration of a single
// Parse call; it holds no other state.
type Parser struct {
	lex *lexer.Lexer
}

// Parse builds the AST for one source string. Each call constructs a fresh
// lexer, so separate parses never share cursor or lookahead state.
func Parse(source string) (*ast.Script, error) {
	p := &Parser{lex: lexer.NewLexer(source)}
	return p.parseScript()
}

// match consumes one token, failing if its kind differs from the expected one.
func (p *Parser) match(t token.TokenType) (token.Token, error) {
	tok, err := p.lex.Read()
	if err != nil {
		return token.Token{}, err
	}
	if tok.Type != t {
		return token.Token{}, &ParseError{Expected: t, Got: tok.Type}
	}
	return tok, nil
}

func (p *Parser) parseScript() (*ast.Script, error) {
	script := &ast.Script{}
	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.TokenEOF {
			return script, nil
		}
		if tok.Type != token.TokenFunction {
			return nil, &ParseError{Got: tok.Type, Context: "top-level statement"}
		}
		fn, err := p.parseFunctionDeclaration()
		if err != nil {
			return nil, err
		}
		script.Body = append(script.Body, fn)
	}
}

func (p *Parser) parseFunctionDeclaration() (*ast.FunctionDeclaration, error) {
	fnTok, err := p.match(token.TokenFunction)
	if err != nil {
		return nil, err
	}
	name, err := p.match(token.TokenIdent)
	if err != nil {
		return nil, err
	}
	// Parameter lists are always empty.
	if _, err := p.match(token.TokenLParen); err != nil {
		return nil, err
	}
	if _, err := p.match(token.TokenRParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{Token: fnTok, Name: name, Body: body}, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	lbrace, err := p.match(token.TokenLBrace)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Token: lbrace}
	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.TokenRBrace || tok.Type == token.TokenEOF {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, stmt)
	}
	if _, err := p.match(token.TokenRBrace); err != nil {
		return nil, err
	}
	return block, nil
}

// parseStatement parses one statement and then swallows a single trailing
// semicolon if present; the semicolon is never required.
func (p *Parser) parseStatement() (ast.Statement, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}

	var stmt ast.Statement
	switch tok.Type {
	case token.TokenReturn:
		stmt, err = p.parseReturnStatement()
	default:
		return nil, &ParseError{Got: tok.Type, Context: "statement"}
	}
	if err != nil {
		return nil, err
	}

	next, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	if next.Type == token.TokenSemicolon {
		if _, err := p.lex.Read(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseReturnStatement() (*ast.ReturnStatement, error) {
	retTok, err := p.match(token.TokenReturn)
	if err != nil {
		return nil, err
	}
	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Token: retTok, Argument: arg}, nil
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.TokenNumber:
		return p.parseNumberLiteral()
	default:
		return nil, &ParseError{Got: tok.Type, Context: "expression"}
	}
}

func (p *Parser) parseNumberLiteral() (*ast.NumberLiteral, error) {
	tok, err := p.match(token.TokenNumber)
	if err != nil {
		return nil, err
	}
	// The output format's number type is a 32-bit integer; a literal that
	// does not fit is a compile error, not a wraparound.
	value, err := strconv.ParseInt(tok.Literal, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("number literal %s out of 32-bit integer range", tok.Literal)
	}
	return &ast.NumberLiteral{Token: tok, Value: int32(value)}, nil
}
