// Package giant is the interpreter façade: it wires the lexer, parser, and
// evaluator together behind the execute(source) entry point of §6, and
// exposes the environment handle so a REPL can keep state across calls.
package giant

import (
	"io"

	"github.com/FFFF-0000h/GIANT-Language/internal/environment"
	"github.com/FFFF-0000h/GIANT-Language/internal/eval"
	"github.com/FFFF-0000h/GIANT-Language/internal/lexer"
	"github.com/FFFF-0000h/GIANT-Language/internal/parser"
)

// Interpreter owns one environment and output sink across however many
// statements get executed against it (a whole file, or one REPL line at a
// time).
type Interpreter struct {
	Env *environment.Environment
	out io.Writer
}

// New creates an interpreter with a fresh, empty environment (§6:
// "Persisted state: None. Each invocation starts with an empty
// environment.").
func New(out io.Writer) *Interpreter {
	return &Interpreter{Env: environment.New(), out: out}
}

// Run lexes, parses, and evaluates source against the interpreter's
// environment, returning every lex, parse, and evaluation error
// encountered. Per §7's propagation policy, a parse error in one
// statement does not prevent the rest of the program from parsing and
// running; Run collects and returns all errors rather than stopping at
// the first.
func (in *Interpreter) Run(source string) []error {
	l := lexer.New(source)
	p := parser.New(l)
	prog, errs := p.ParseProgram()

	e := eval.New(in.Env, in.out)
	errs = append(errs, e.Run(prog)...)
	return errs
}
