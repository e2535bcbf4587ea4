package cmd

import (
	"fmt"
	"os"

	"github.com/FFFF-0000h/GIANT-Language/internal/giant"
	"github.com/FFFF-0000h/GIANT-Language/internal/ifaceerr"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a GIANT script",
	Long: `Execute a GIANT program from a file and exit (§6).

Examples:
  giant run reading.naija`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runFile reads, runs, and reports the errors of one source file. It
// returns a non-nil error (causing a non-zero exit) only when the file
// itself could not be read or at least one statement failed; per §7 the
// interpreter itself always finishes the file, reporting each statement's
// error in turn rather than aborting early.
func runFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	interp := giant.New(os.Stdout)
	errs := interp.Run(string(content))
	if len(errs) == 0 {
		return nil
	}

	for _, e := range errs {
		if ge, ok := e.(*ifaceerr.Error); ok {
			fmt.Fprintln(os.Stderr, ge.Format(string(content), verbose))
			continue
		}
		fmt.Fprintln(os.Stderr, e)
	}
	return fmt.Errorf("execution failed with %d error(s)", len(errs))
}
