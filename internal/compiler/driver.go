// Package compiler wires the pipeline together: source text is lexed and
// parsed into an AST, lowered into a wasm module, validated, and serialized.
// Every stage is fail-fast; the first error aborts the compilation.
package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AleX77NP/jayscript/internal/compiler/codegen"
	"github.com/AleX77NP/jayscript/internal/compiler/parser"
	"github.com/AleX77NP/jayscript/internal/wasm"
)

// SourceExt is the required extension for jayscript source files.
const SourceExt = ".jay"

// Compile runs the full pipeline on one source string and returns the
// validated module, ready for binary or text serialization.
func Compile(source string) (*wasm.Module, error) {
	script, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	mod, err := codegen.NewGenerator().Generate(script)
	if err != nil {
		return nil, fmt.Errorf("codegen: %w", err)
	}
	return mod, nil
}

// CompileBinary compiles source straight to wasm binary bytes.
func CompileBinary(source string) ([]byte, error) {
	mod, err := Compile(source)
	if err != nil {
		return nil, err
	}
	return mod.EncodeBinary(), nil
}

// CompileAndWrite compiles srcPath into outDir and returns the path of the
// written .wasm file. When withWAT is set it also writes the text rendering
// next to it.
func CompileAndWrite(srcPath, outDir string, withWAT bool) (string, error) {
	if err := validateExtension(srcPath); err != nil {
		return "", err
	}

	content, err := readSource(srcPath)
	if err != nil {
		return "", err
	}

	mod, err := Compile(content)
	if err != nil {
		return "", err
	}

	outFile, err := writeOutput(mod.EncodeBinary(), srcPath, outDir)
	if err != nil {
		return "", err
	}
	if withWAT {
		watFile := strings.TrimSuffix(outFile, ".wasm") + ".wat"
		if err := os.WriteFile(watFile, []byte(mod.WAT()), 0o644); err != nil {
			return "", err
		}
	}
	return outFile, nil
}

func validateExtension(path string) error {
	if filepath.Ext(path) != SourceExt {
		return fmt.Errorf("source must have %s extension", SourceExt)
	}
	return nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}

func writeOutput(bin []byte, srcPath, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	outFile := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(srcPath), SourceExt)+".wasm")
	return outFile, os.WriteFile(outFile, bin, 0o644)
}
