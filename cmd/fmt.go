// Copyright © 2025 The gnaw authors

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/luthersystems/gnaw/sexpr"
	"github.com/spf13/cobra"
)

var (
	fmtWrite    bool
	fmtDiff     bool
	fmtList     bool
	fmtExcludes []string
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [files...]",
	Short: "Reprint s-expression files in canonical layout",
	Long: `Reprint s-expression source files in canonical layout.

Each file is parsed and its forms are printed one per line with single
spaces between elements. The output is idempotent. Comments are not
preserved; fmt is a canonicalizer for generated or machine-edited
sources, not a whitespace-preserving formatter.

With no files, reads from stdin and writes to stdout.
With files, prints formatted output to stdout unless -w is given.

Modes:
  (default)   Print formatted code to stdout
  -w          Write result back to source file
  -d          Display a diff of changes
  -l          List files that would be changed

Examples:
  gnaw fmt file.sexp               Print formatted output
  gnaw fmt -w file.sexp            Format in place
  gnaw fmt -d file.sexp            Show what would change
  gnaw fmt -l ./...                List files needing formatting
  cat file.sexp | gnaw fmt         Format from stdin`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			if err := fmtStdin(); err != nil {
				reportError("<stdin>", err)
				os.Exit(1)
			}
			return
		}

		expanded, err := expandArgs(args, fmtExcludes)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		exitCode := 0
		for _, path := range expanded {
			changed, err := fmtFile(path)
			if err != nil {
				reportError(path, err)
				exitCode = 1
			} else if fmtList && changed {
				exitCode = 1
			}
		}
		os.Exit(exitCode)
	},
}

// canonical parses src and renders its forms one per line.
func canonical(src string) (string, error) {
	nodes, err := sexpr.Parse(src)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, node := range nodes {
		sb.WriteString(node.String())
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func fmtStdin() error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	out, err := canonical(string(src))
	if err != nil {
		return err
	}
	_, err = io.WriteString(os.Stdout, out)
	return err
}

func fmtFile(path string) (bool, error) {
	src, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified files
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	out, err := canonical(string(src))
	if err != nil {
		return false, err
	}

	changed := string(src) != out

	if fmtList {
		if changed {
			fmt.Println(path)
		}
		return changed, nil
	}

	if fmtDiff {
		if changed {
			printUnifiedDiff(path, src, []byte(out))
		}
		return changed, nil
	}

	if fmtWrite {
		if !changed {
			return false, nil
		}
		info, err := os.Stat(path)
		if err != nil {
			return false, fmt.Errorf("%s: %w", path, err)
		}
		return true, os.WriteFile(path, []byte(out), info.Mode().Perm())
	}

	// Default: print to stdout
	_, err = io.WriteString(os.Stdout, out)
	return changed, err
}

func printUnifiedDiff(path string, original, formatted []byte) {
	// Simple line-by-line diff output
	fmt.Printf("--- %s\n", path)
	fmt.Printf("+++ %s\n", path)

	origLines := splitLines(original)
	fmtLines := splitLines(formatted)

	i, j := 0, 0
	for i < len(origLines) || j < len(fmtLines) {
		if i < len(origLines) && j < len(fmtLines) && origLines[i] == fmtLines[j] {
			fmt.Printf(" %s\n", origLines[i])
			i++
			j++
		} else if i < len(origLines) {
			fmt.Printf("-%s\n", origLines[i])
			i++
		} else {
			fmt.Printf("+%s\n", fmtLines[j])
			j++
		}
	}
}

func splitLines(data []byte) []string {
	var lines []string
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, string(data[start:i]))
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, string(data[start:]))
	}
	return lines
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false,
		"Write result to (source) file instead of stdout.")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", false,
		"Display diffs instead of rewriting files.")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false,
		"List files whose formatting differs from gnaw fmt's.")
	fmtCmd.Flags().StringArrayVar(&fmtExcludes, "exclude", nil,
		"Glob pattern for files to exclude (may be repeated).")
}
