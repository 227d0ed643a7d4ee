/*
File    : lynx/cmd/lynx/cmd/repl_cmd.go
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lynxlang/lynx/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Lynx REPL",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		r := repl.NewRepl(banner, version, separator, promptString)
		r.Start(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
