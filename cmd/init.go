package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const scaffold = `function main() {
  return 42;
}
`

// init: scaffold a new source file
var InitCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Scaffold a new jayscript source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0] + ".jay"
		if _, err := os.Stat(name); err == nil {
			return fmt.Errorf("%s already exists", name)
		}
		if err := os.WriteFile(name, []byte(scaffold), 0o644); err != nil {
			return err
		}
		fmt.Printf("↪ scaffolded %q\n", name)
		return nil
	},
}
