// Command giant is the GIANT language's command-line front end: a REPL
// when invoked bare, or a one-shot script runner when given a file (§6).
package main

import (
	"fmt"
	"os"

	"github.com/FFFF-0000h/GIANT-Language/cmd/giant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
