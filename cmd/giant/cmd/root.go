package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "giant",
	Short: "GIANT interpreter",
	Long: `giant runs programs written in GIANT, a small interpreted language
built around the relational value: a number that carries its offsets
from one or more named anchors, and reactive when-clauses that dispatch
on those offsets (over/under/near).

Run with no arguments to start the REPL, or with a file path to execute
a script and exit.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
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
