/*
File    : lynx/cmd/lynx/cmd/run.go
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lynxlang/lynx/evaluator"
	"github.com/lynxlang/lynx/object"
	"github.com/lynxlang/lynx/parser"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a Lynx source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	p := parser.New(string(content))
	program := p.Parse()
	if p.HasErrors() {
		red := color.New(color.FgRed)
		for _, parseErr := range p.Errors() {
			red.Fprintf(os.Stderr, "%s\n", parseErr.String())
		}
		return fmt.Errorf("parsing %s failed with %d error(s)", filename, len(p.Errors()))
	}

	e := evaluator.New(os.Stdout)
	env := evaluator.NewGlobalEnvironment()
	result := e.Eval(program, env)

	if result != nil && result.Type() == object.ErrorObj {
		return fmt.Errorf("%s", result.Inspect())
	}
	return nil
}
