package codegen

import (
	"errors"
	"fmt"

	"github.com/AleX77NP/jayscript/internal/compiler/ast"
	"github.com/AleX77NP/jayscript/internal/wasm"
)

// CodegenError reports an AST node kind with no generation rule.
type CodegenError struct {
	Node ast.Node
}

func (e *CodegenError) Error() string {
	return fmt.Sprintf("no code generation rule for node %T", e.Node)
}

// Generator lowers one AST into one wasm module. An instance owns its
// module builder exclusively and is single use: construct a fresh Generator
// per compilation.
type Generator struct {
	mod  *wasm.Module
	done bool
}

func NewGenerator() *Generator {
	return &Generator{mod: wasm.NewModule()}
}

// Generate walks the script once, registering every declaration as an
// exported function in declaration order, then validates the assembled
// module. A validation failure is fatal for the compilation.
func (g *Generator) Generate(script *ast.Script) (*wasm.Module, error) {
	if g.done {
		return nil, errors.New("generator already produced a module")
	}
	g.done = true

	for _, decl := range script.Body {
		if err := g.genFunctionDeclaration(decl); err != nil {
			return nil, err
		}
	}
	if err := wasm.Validate(g.mod); err != nil {
		return nil, err
	}
	return g.mod, nil
}

// genFunctionDeclaration registers the function (zero parameters, one i32
// result, no locals) and exports it under its declared name, unconditionally.
func (g *Generator) genFunctionDeclaration(decl *ast.FunctionDeclaration) error {
	body, err := g.genBlock(decl.Body)
	if err != nil {
		return err
	}
	idx := g.mod.AddFunction(decl.Name.Literal, []wasm.ValType{wasm.I32}, body)
	g.mod.AddExport(decl.Name.Literal, idx)
	return nil
}

func (g *Generator) genBlock(block *ast.Block) (*wasm.Block, error) {
	out := &wasm.Block{}
	for _, stmt := range block.Body {
		in, err := g.genStatement(stmt)
		if err != nil {
			return nil, err
		}
		out.Body = append(out.Body, in)
	}
	return out, nil
}

func (g *Generator) genStatement(stmt ast.Statement) (wasm.Instruction, error) {
	switch stmt := stmt.(type) {
	case *ast.ReturnStatement:
		arg, err := g.genExpression(stmt.Argument)
		if err != nil {
			return nil, err
		}
		return &wasm.Return{Value: arg}, nil
	case *ast.Block:
		return g.genBlock(stmt)
	default:
		return nil, &CodegenError{Node: stmt}
	}
}

func (g *Generator) genExpression(expr ast.Expression) (wasm.Instruction, error) {
	switch expr := expr.(type) {
	case *ast.NumberLiteral:
		return &wasm.I32Const{Value: expr.Value}, nil
	default:
		return nil, &CodegenError{Node: expr}
	}
}
