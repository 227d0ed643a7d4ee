/*
File    : lynx/cmd/lynx/cmd/tokens.go
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lynxlang/lynx/lexer"
)

var showPosition bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream produced by the lexer",
	Args:  cobra.ExactArgs(1),
	RunE:  printTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&showPosition, "show-pos", false, "show each token's line:column")
	rootCmd.AddCommand(tokensCmd)
}

func printTokens(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	lex := lexer.NewLexer(string(content))
	for _, tok := range lex.ConsumeTokens() {
		if showPosition {
			fmt.Printf("[%-14s] %q @%d:%d\n", tok.Type, tok.Literal, tok.Line, tok.Column)
		} else {
			fmt.Printf("[%-14s] %q\n", tok.Type, tok.Literal)
		}
	}
	return nil
}
