package cmd

import (
	"github.com/spf13/cobra"
)

var outDir string

var rootCmd = &cobra.Command{
	Use:   "jayscript",
	Short: "jayscript CLI — compiler and runner",
	Long: `jayscript compiles tiny jayscript sources into WebAssembly modules.

Commands:
  init   Scaffold a new jayscript source file
  build  Compile a (.jay) source file into a (.wasm) module
  run    Compile a source file and invoke its exports
`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "out", "output directory for build artifacts")

	rootCmd.AddCommand(InitCmd, BuildCmd, RunCmd)
}
