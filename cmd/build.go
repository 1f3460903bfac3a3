package cmd

import (
	"fmt"

	"github.com/AleX77NP/jayscript/internal/compiler"
	"github.com/spf13/cobra"
)

var emitWAT bool

// build: compile .jay -> .wasm
var BuildCmd = &cobra.Command{
	Use:   "build <source.jay>",
	Short: "Compile a jayscript source file into a WebAssembly module",
	Args:  cobra.ExactArgs(1),
	RunE:  buildRun,
}

func buildRun(cmd *cobra.Command, args []string) error {
	src := args[0]

	fmt.Printf("↪ building %q → %q ...\n", src, outDir+"/")

	outFile, err := compiler.CompileAndWrite(src, outDir, emitWAT)
	if err != nil {
		return err
	}

	fmt.Printf("✔︎ wrote module to %s\n", outFile)
	return nil
}

func init() {
	BuildCmd.Flags().BoolVar(&emitWAT, "wat", false, "also write the text rendering next to the binary")
}
