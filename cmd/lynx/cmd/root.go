/*
File    : lynx/cmd/lynx/cmd/root.go
*/

// Package cmd wires Lynx's subcommands (run, repl, tokens, ast, server) onto a
// cobra command tree.
package cmd

import (
	"github.com/spf13/cobra"
)

const (
	version = "0.1.0"
	banner  = `
  _
 | |   _   _ _ __ __  __
 | |  | | | | '_ \\ \/ /
 | |__| |_| | | | |>  <
 |_____\__, |_| |_/_/\_\
       |___/
`
	promptString = "lynx >>> "
	separator    = "--------------------------------------------------------------"
)

var rootCmd = &cobra.Command{
	Use:   "lynx",
	Short: "Lynx is a small, dynamically-typed, expression-oriented language",
	Long: `Lynx is a tree-walking interpreter for a small dynamically-typed,
expression-oriented language derived from Monkey.

Run a script, start an interactive REPL, inspect a file's token stream, or
serve REPL sessions over TCP.`,
	Version: version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
