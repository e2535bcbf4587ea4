package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/FFFF-0000h/GIANT-Language/internal/giant"
	"github.com/FFFF-0000h/GIANT-Language/internal/ifaceerr"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.RunE = func(_ *cobra.Command, args []string) error {
		if len(args) > 0 {
			return runFile(args[0])
		}
		runRepl()
		return nil
	}
}

// lineReader wraps bufio.Scanner with one line of pushback, so a line read
// while probing for a continuation can be put back for the next prompt to
// consume.
type lineReader struct {
	scanner *bufio.Scanner
	pushed  string
	hasPush bool
}

func (r *lineReader) next() (string, bool) {
	if r.hasPush {
		r.hasPush = false
		return r.pushed, true
	}
	if !r.scanner.Scan() {
		return "", false
	}
	return r.scanner.Text(), true
}

func (r *lineReader) push(line string) {
	r.pushed = line
	r.hasPush = true
}

// runRepl implements the interactive session of §6: one logical statement
// per prompt, multi-line for an indented 'when' body (terminated by a
// blank line or a line that dedents back to column 1), evaluated against
// one interpreter whose environment persists across prompts. The literal
// line "stop" ends the session.
func runRepl() {
	interp := giant.New(os.Stdout)
	r := &lineReader{scanner: bufio.NewScanner(os.Stdin)}

	fmt.Println("GIANT interpreter. Type 'stop' to exit.")
	for {
		fmt.Print("giant> ")
		block, ok := readLogicalStatement(r)
		if !ok {
			return
		}
		if strings.TrimSpace(block) == "stop" {
			return
		}
		if strings.TrimSpace(block) == "" {
			continue
		}
		if errs := interp.Run(block); len(errs) > 0 {
			reportErrors(errs, block)
		}
	}
}

// readLogicalStatement reads one top-level statement, continuing to read
// indented continuation lines (a 'when' header's @action body, or a
// relational declaration's wrapped metadata) until a blank line, EOF, or a
// line that dedents back to column 1 — which is pushed back for the next
// call to consume as the start of the next statement.
func readLogicalStatement(r *lineReader) (string, bool) {
	first, ok := r.next()
	if !ok {
		return "", false
	}
	lines := []string{first}

	trimmed := strings.TrimLeft(first, " \t")
	if !strings.HasPrefix(trimmed, "when") && !strings.HasPrefix(trimmed, "relational") {
		return first, true
	}

	for {
		fmt.Print("     > ")
		line, ok := r.next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		if isDedented(line) {
			r.push(line)
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), true
}

func isDedented(line string) bool {
	return len(line) == len(strings.TrimLeft(line, " \t"))
}

func reportErrors(errs []error, source string) {
	for _, err := range errs {
		if ge, ok := err.(*ifaceerr.Error); ok {
			fmt.Fprintln(os.Stderr, ge.Format(source, false))
			continue
		}
		fmt.Fprintln(os.Stderr, err)
	}
}
