package ast

import (
	"bytes"
	"strconv"

	"github.com/AleX77NP/jayscript/internal/compiler/token"
)

// --- Interfaces ---

type Node interface {
	TokenLiteral() string
	String() string
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

// --- Script ---

// Script is the root node. Body order is declaration order, which is also
// the export order of the compiled module.
type Script struct {
	Body []*FunctionDeclaration
}

func (s *Script) TokenLiteral() string {
	if len(s.Body) > 0 {
		return s.Body[0].TokenLiteral()
	}
	return ""
}

func (s *Script) String() string {
	var out bytes.Buffer
	for _, fn := range s.Body {
		out.WriteString(fn.String())
		out.WriteString("\n")
	}
	return out.String()
}

// --- Declarations ---

// FunctionDeclaration -> function name() { ... }
// Functions take no parameters and return a single 32-bit integer.
type FunctionDeclaration struct {
	Token token.Token // function
	Name  token.Token // IDENT
	Body  *Block
}

func (fd *FunctionDeclaration) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString("function ")
	out.WriteString(fd.Name.Literal)
	out.WriteString("() ")
	if fd.Body != nil {
		out.WriteString(fd.Body.String())
	}
	return out.String()
}

// --- Statements ---

// Block -> { ... }
type Block struct {
	Token token.Token // {
	Body  []Statement
}

func (b *Block) statementNode()       {}
func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range b.Body {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// ReturnStatement -> return <expression>
type ReturnStatement struct {
	Token    token.Token // return
	Argument Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	var out bytes.Buffer
	out.WriteString("return")
	if rs.Argument != nil {
		out.WriteString(" ")
		out.WriteString(rs.Argument.String())
	}
	out.WriteString(";")
	return out.String()
}

// --- Expressions ---

// NumberLiteral -> 43
// The raw digit text is Token.Literal; Value is its decimal interpretation,
// fixed to the 32-bit integer result type of the output format.
type NumberLiteral struct {
	Token token.Token // NUMBER
	Value int32
}

func (nl *NumberLiteral) expressionNode()      {}
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NumberLiteral) String() string       { return strconv.FormatInt(int64(nl.Value), 10) }
