package codegen

import (
	"bytes"
	"errors"
	"testing"

	"github.com/AleX77NP/jayscript/internal/compiler/parser"
	"github.com/AleX77NP/jayscript/internal/wasm"
)

// generate parses and lowers input, failing the test on any error.
func generate(t *testing.T, input string) *wasm.Module {
	t.Helper()
	script, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	mod, err := NewGenerator().Generate(script)
	if err != nil {
		t.Fatalf("Generate(%q) error: %v", input, err)
	}
	return mod
}

func TestGenerateSingleFunction(t *testing.T) {
	mod := generate(t, `function main() { return 249; }`)

	if len(mod.Funcs) != 1 {
		t.Fatalf("expected 1 function, got %d", len(mod.Funcs))
	}
	fn := mod.Funcs[0]
	if fn.Name != "main" {
		t.Errorf("function name expected=%q, got=%q", "main", fn.Name)
	}
	if len(fn.Results) != 1 || fn.Results[0] != wasm.I32 {
		t.Errorf("function result type expected [i32], got %v", fn.Results)
	}
	if len(mod.Exports) != 1 || mod.Exports[0].Name != "main" || mod.Exports[0].FuncIndex != 0 {
		t.Errorf("expected export main -> func 0, got %+v", mod.Exports)
	}

	if len(fn.Body.Body) != 1 {
		t.Fatalf("expected 1 body instruction, got %d", len(fn.Body.Body))
	}
	ret, ok := fn.Body.Body[0].(*wasm.Return)
	if !ok {
		t.Fatalf("body instruction is not *wasm.Return, got %T", fn.Body.Body[0])
	}
	konst, ok := ret.Value.(*wasm.I32Const)
	if !ok {
		t.Fatalf("return operand is not *wasm.I32Const, got %T", ret.Value)
	}
	if konst.Value != 249 {
		t.Errorf("constant expected=249, got=%d", konst.Value)
	}
}

func TestGenerateExportOrderFollowsDeclarationOrder(t *testing.T) {
	mod := generate(t, `function main(){return 249;} function second(){return 111;}`)

	if len(mod.Exports) != 2 {
		t.Fatalf("expected 2 exports, got %d", len(mod.Exports))
	}
	if mod.Exports[0].Name != "main" || mod.Exports[1].Name != "second" {
		t.Errorf("export order expected [main second], got [%s %s]",
			mod.Exports[0].Name, mod.Exports[1].Name)
	}
}

func TestGenerateDuplicateNamesFailValidation(t *testing.T) {
	script, err := parser.Parse(`function f(){return 1;} function f(){return 2;}`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	_, err = NewGenerator().Generate(script)
	if err == nil {
		t.Fatalf("expected a validation error for duplicate exports")
	}
	var verr *wasm.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *wasm.ValidationError, got %T: %v", err, err)
	}
}

func TestGenerateEmptyBodyFailsValidation(t *testing.T) {
	script, err := parser.Parse(`function f() {}`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	_, err = NewGenerator().Generate(script)
	if err == nil {
		t.Fatalf("expected a validation error: body produces no i32 result")
	}
}

func TestGeneratorIsSingleUse(t *testing.T) {
	script, err := parser.Parse(`function f(){return 1;}`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	g := NewGenerator()
	if _, err := g.Generate(script); err != nil {
		t.Fatalf("first Generate() error: %v", err)
	}
	if _, err := g.Generate(script); err == nil {
		t.Fatalf("second Generate() on the same instance should fail")
	}
}

func TestGenerateDeterministicBinary(t *testing.T) {
	src := `function main(){return 249;} function second(){return 111;}`
	first := generate(t, src).EncodeBinary()
	second := generate(t, src).EncodeBinary()
	if !bytes.Equal(first, second) {
		t.Errorf("compiling the same source twice produced different binaries")
	}
}
