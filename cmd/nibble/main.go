// Command nibble is the nibble language REPL.
//
// It reads one line at a time, parses and lowers it, and either prints
// the evaluated result or — with --debug-tree — dumps the lossless
// parse tree instead. Bindings persist across lines within a session.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nibble-lang/nibble/pkg/env"
	"github.com/nibble-lang/nibble/pkg/hir"
	"github.com/nibble-lang/nibble/pkg/nibble"
)

func main() {
	var debugTree bool

	rootCmd := &cobra.Command{
		Use:   "nibble",
		Short: "nibble - a lossless-CST, HIR-backed expression language REPL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startREPL(cmd.OutOrStdout(), debugTree)

			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(
		&debugTree,
		"debug-tree",
		false,
		"print the parse tree for each line instead of evaluating it",
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// startREPL runs the read-eval-print loop. Each line is parsed fresh,
// but the interpreter's environment persists across the whole session,
// so earlier `let` bindings stay visible to later lines — the same
// persistent-evaluator shape as the teacher's startREPL.
func startREPL(out io.Writer, debugTree bool) {
	fmt.Fprintln(out, "nibble repl - Type :quit to exit")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(os.Stdin)
	it := newInterp()

	for {
		fmt.Fprint(out, "nibble> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == ":quit" || line == ":q" {
			break
		}

		if strings.HasPrefix(line, ":") {
			handleReplCommand(out, line)

			continue
		}

		result := nibble.Parse([]byte(line))

		if debugTree {
			fmt.Fprintln(out, result.DebugTree())

			continue
		}

		for _, parseErr := range result.Errors {
			fmt.Fprintf(os.Stderr, "parse error: %s\n", parseErr.Error())
		}

		arena, stmts := hir.Lower(result.Root)

		value, err := it.run(arena, stmts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "evaluation error: %v\n", err)

			continue
		}

		if _, isUnit := value.(env.Unit); isUnit {
			continue
		}

		fmt.Fprintln(out, value.String())
	}
}

func handleReplCommand(out io.Writer, cmd string) {
	switch cmd {
	case ":help", ":h":
		fmt.Fprintln(out, "Available commands:")
		fmt.Fprintln(out, "  :help, :h    Show this help")
		fmt.Fprintln(out, "  :quit, :q    Exit the REPL")
	default:
		fmt.Fprintf(out, "Unknown command: %s\n", cmd)
		fmt.Fprintln(out, "Type :help for available commands")
	}
}
