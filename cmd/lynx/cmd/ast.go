/*
File    : lynx/cmd/lynx/cmd/ast.go
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lynxlang/lynx/internal/astprint"
	"github.com/lynxlang/lynx/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Print the parsed AST of a Lynx source file",
	Args:  cobra.ExactArgs(1),
	RunE:  printAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func printAST(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	p := parser.New(string(content))
	program := p.Parse()
	if p.HasErrors() {
		red := color.New(color.FgRed)
		for _, parseErr := range p.Errors() {
			red.Fprintf(os.Stderr, "%s\n", parseErr.String())
		}
		return fmt.Errorf("parsing %s failed with %d error(s)", args[0], len(p.Errors()))
	}

	printer := astprint.New()
	fmt.Print(printer.Print(program))
	return nil
}
