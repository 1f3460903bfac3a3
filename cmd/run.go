package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/AleX77NP/jayscript/internal/compiler"
	"github.com/spf13/cobra"
	"github.com/tetratelabs/wazero"
)

var (
	runFn  string
	runAll bool
)

// run: compile in memory and invoke exports on a wasm runtime
var RunCmd = &cobra.Command{
	Use:   "run <source.jay>",
	Short: "Compile a source file and invoke its exported functions",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	mod, err := compiler.Compile(string(content))
	if err != nil {
		return err
	}

	names := []string{runFn}
	if runAll {
		names = names[:0]
		for _, exp := range mod.Exports {
			names = append(names, exp.Name)
		}
	}

	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	instance, err := r.Instantiate(ctx, mod.EncodeBinary())
	if err != nil {
		return err
	}

	for _, name := range names {
		fn := instance.ExportedFunction(name)
		if fn == nil {
			return fmt.Errorf("module has no export %q", name)
		}
		results, err := fn.Call(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s() = %d\n", name, int32(uint32(results[0])))
	}
	return nil
}

func init() {
	RunCmd.Flags().StringVar(&runFn, "fn", "main", "export to invoke")
	RunCmd.Flags().BoolVar(&runAll, "all", false, "invoke every export in declaration order")
}
