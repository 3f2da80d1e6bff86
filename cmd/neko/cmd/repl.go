package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nekolang/neko/internal/interp"
	"github.com/spf13/cobra"
)

const historyFileName = "history.txt"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive neko session",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runRepl is a thin, line-oriented read-eval-print loop, grounded on
// original_source/src/main.rs's REPL driver (read a line, trim it,
// "exit" quits, otherwise interpret and print the result unless it's
// None). It adds three literal dot-commands a terminal session
// benefits from — .exit, .help, .load — and appends every submitted
// line to history.txt in the working directory. Line editing, history
// *search*, and inline hinting (spec.md §6's preview mode) are left to
// a real terminal-line library no example in the corpus depends on; see
// DESIGN.md.
func runRepl(_ *cobra.Command, _ []string) error {
	interpreter := interp.New(os.Stdout)
	history, _ := os.OpenFile(historyFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if history != nil {
		defer history.Close()
	}

	fmt.Println("neko REPL — type .help for commands, .exit to quit")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if history != nil {
			fmt.Fprintln(history, line)
		}

		switch {
		case line == ".exit":
			return nil
		case line == ".help":
			printReplHelp()
		case strings.HasPrefix(line, ".load "):
			loadReplFile(interpreter, strings.TrimSpace(strings.TrimPrefix(line, ".load ")))
		default:
			evalReplLine(interpreter, line)
		}
	}
}

func printReplHelp() {
	fmt.Println(".exit         quit the session")
	fmt.Println(".help         show this message")
	fmt.Println(".load PATH    read and execute a file")
}

func loadReplFile(interpreter *interp.Interpreter, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read %s: %v\n", filepath.Clean(path), err)
		return
	}
	evalReplLine(interpreter, string(content))
}

func evalReplLine(interpreter *interp.Interpreter, line string) {
	val, err := interpreter.Interpret(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Format(true))
		return
	}
	if val.Type() != "None" {
		fmt.Println(val.Display(true))
	}
}
