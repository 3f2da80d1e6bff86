// Package cmd implements the neko command-line interface: `run` for
// scripts and inline expressions, `repl` for an interactive session,
// and `version`. Grounded on the teacher's cmd/dwscript/cmd package
// (a package-level cobra.Command tree with an Execute entry point).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "neko",
	Short: "neko scripting language interpreter",
	Long: `neko is a small, expression-oriented, dynamically-typed scripting
language: declarations, expressions, first-class functions and
closures, no control-flow statements or modules.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
