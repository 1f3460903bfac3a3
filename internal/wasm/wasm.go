// Package wasm builds, validates, and serializes WebAssembly modules
// (core spec v1). It is the construction layer the code generator emits
// into; it knows nothing about the source language.
package wasm

// ValType is a WebAssembly value type, encoded as in the binary format.
type ValType byte

const I32 ValType = 0x7F

func (v ValType) String() string {
	if v == I32 {
		return "i32"
	}
	return "unknown"
}

// Instruction is the closed set of instructions the builder understands.
type Instruction interface {
	isInstruction()
}

// I32Const pushes a 32-bit integer constant.
type I32Const struct {
	Value int32
}

// Return produces Value (if any) and returns it from the enclosing function.
type Return struct {
	Value Instruction
}

// Block is an ordered grouping of instructions. It carries no label or
// result type of its own and flattens to its children on encode.
type Block struct {
	Body []Instruction
}

func (*I32Const) isInstruction() {}
func (*Return) isInstruction()   {}
func (*Block) isInstruction()    {}

// Func is a function with no parameters and no locals.
type Func struct {
	Name    string
	Results []ValType
	Body    *Block
}

// Export names a function for the host. Export names are required to be
// unique, enforced by Validate rather than at registration time.
type Export struct {
	Name      string
	FuncIndex int
}

// Module is an assembled module prior to serialization. Funcs and Exports
// keep insertion order, so identical build sequences serialize identically.
type Module struct {
	Funcs   []*Func
	Exports []Export
}

func NewModule() *Module {
	return &Module{}
}

// AddFunction registers a function and returns its index.
func (m *Module) AddFunction(name string, results []ValType, body *Block) int {
	m.Funcs = append(m.Funcs, &Func{Name: name, Results: results, Body: body})
	return len(m.Funcs) - 1
}

// AddExport registers fn under name. Duplicate names are accepted here and
// rejected by Validate.
func (m *Module) AddExport(name string, fn int) {
	m.Exports = append(m.Exports, Export{Name: name, FuncIndex: fn})
}
