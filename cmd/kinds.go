// Copyright © 2025 The gnaw authors

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/luthersystems/gnaw"
	"github.com/luthersystems/gnaw/docs"
)

var kindsGuide bool

// kindsCmd represents the kinds command
var kindsCmd = &cobra.Command{
	Use:   "kinds [QUERY]",
	Short: "List the parser error taxonomy",
	Long: `List every error kind the parser can report, with its stable numeric
code and a description of the operation that raises it.

Annotated reports name kinds by their short form (EOF, Char, Alt, ...).
The numeric codes are stable across releases, so logs that captured a
code years ago still decode with the current binary.

With a QUERY argument, show only the kind whose name or code matches:
  gnaw kinds            List everything
  gnaw kinds EOF        Describe the EOF kind
  gnaw kinds 23         The same kind, by code
  gnaw kinds --guide    Print the error-reporting guide`,
	Run: func(cmd *cobra.Command, args []string) {
		if kindsGuide {
			fmt.Print(docs.ErrorsGuide)
			return
		}
		if len(args) > 1 {
			_ = cmd.Help()
			os.Exit(1)
		}
		out := bufio.NewWriter(os.Stdout)
		defer out.Flush() //nolint:errcheck // best-effort flush on exit
		if len(args) == 1 {
			kind, ok := lookupKind(args[0])
			if !ok {
				fmt.Fprintf(os.Stderr, "unknown error kind: %s\n", args[0])
				os.Exit(1)
			}
			writeKind(out, kind)
			return
		}
		for _, kind := range gnaw.Kinds() {
			writeKind(out, kind)
		}
	},
}

// lookupKind resolves a query to an error kind by name (case-insensitive)
// or by stable numeric code.
func lookupKind(query string) (gnaw.ErrorKind, bool) {
	code, err := strconv.ParseUint(query, 10, 32)
	for _, kind := range gnaw.Kinds() {
		if strings.EqualFold(kind.String(), query) {
			return kind, true
		}
		if err == nil && kind.Code() == uint32(code) {
			return kind, true
		}
	}
	return 0, false
}

func writeKind(w io.Writer, kind gnaw.ErrorKind) {
	fmt.Fprintf(w, "%-22s code %d\n", kind, kind.Code())
	fmt.Fprintln(w, indent.String(wordwrap.String(kind.Description(), 64), 4))
}

func init() {
	rootCmd.AddCommand(kindsCmd)

	kindsCmd.Flags().BoolVarP(&kindsGuide, "guide", "g", false,
		"Print the error-reporting guide instead of the kind table.")
}
