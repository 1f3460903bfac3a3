package wasm

import (
	"fmt"
	"strings"
)

// WAT renders the module in the WebAssembly text format, for diagnostics.
// The rendering mirrors the binary encoding: blocks flatten to their
// children, returns print their operand first.
func (m *Module) WAT() string {
	var out strings.Builder
	out.WriteString("(module")
	for i, fn := range m.Funcs {
		out.WriteString("\n  (func $")
		out.WriteString(fn.Name)
		for _, exp := range m.Exports {
			if exp.FuncIndex == i {
				fmt.Fprintf(&out, " (export %q)", exp.Name)
			}
		}
		for _, r := range fn.Results {
			fmt.Fprintf(&out, " (result %s)", r)
		}
		if fn.Body != nil {
			writeInstrWAT(&out, fn.Body)
		}
		out.WriteString("\n  )")
	}
	out.WriteString("\n)\n")
	return out.String()
}

func writeInstrWAT(out *strings.Builder, in Instruction) {
	switch in := in.(type) {
	case *I32Const:
		fmt.Fprintf(out, "\n    i32.const %d", in.Value)
	case *Return:
		if in.Value != nil {
			writeInstrWAT(out, in.Value)
		}
		out.WriteString("\n    return")
	case *Block:
		for _, child := range in.Body {
			writeInstrWAT(out, child)
		}
	}
}
