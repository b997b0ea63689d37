// Copyright © 2025 The gnaw authors

package cmd

import (
	"os"
	"path/filepath"

	"github.com/luthersystems/gnaw/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive s-expression reader",
	Long: `Start an interactive read-print loop for s-expressions.

Each complete form is echoed back in canonical layout. A line that ends
inside a started form continues on the next prompt. Line editing,
in-session history, and tab completion of previously seen symbols are
supported via readline. Use Ctrl-D or Ctrl-C to exit.

Example session:
  gnaw> (+ 1 2)
  (+ 1 2)
  gnaw> '(a b
         c)
  '(a b c)
  gnaw> (list 1]
  error: expected ')', found ']'`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl(filepath.Base(os.Args[0]) + "> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
