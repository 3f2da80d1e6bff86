package cmd

import (
	"fmt"
	"os"

	"github.com/nekolang/neko/internal/interp"
	"github.com/nekolang/neko/internal/lexer"
	"github.com/nekolang/neko/internal/parser"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	noCalls  bool
	noDecl   bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a neko script or expression",
	Long: `Execute a neko program from a file or inline expression.

Examples:
  neko run script.neko
  neko run -e "let x = 1 + 2; print(x);"
  neko run --dump-ast script.neko`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before running")
	runCmd.Flags().BoolVar(&noCalls, "no-calls", false, "disable function calls (preview mode)")
	runCmd.Flags().BoolVar(&noDecl, "no-decl", false, "disable let/function declarations (preview mode)")
}

func runScript(_ *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case evalExpr != "":
		input, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	program, perr := parser.New(lexer.New(input), input).Parse()
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr.Format(true))
		return fmt.Errorf("parsing failed")
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	interpreter := interp.New(os.Stdout)
	opts := interp.Options{DisableCalls: noCalls, DisableDeclaration: noDecl}

	val, err := interpreter.Run(program, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Format(true))
		return fmt.Errorf("execution failed")
	}
	if val.Type() != "None" {
		fmt.Println(val.Display(true))
	}

	return nil
}
