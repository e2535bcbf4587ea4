package cmd

import (
	"fmt"
	"os"

	"github.com/FFFF-0000h/GIANT-Language/internal/lexer"
	"github.com/FFFF-0000h/GIANT-Language/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexShowPos  bool
	lexOnlyErrs bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a GIANT file and print the resulting tokens",
	Long: `Tokenize (lex) a GIANT program and print the resulting tokens.

Useful for debugging the lexer and understanding how multi-word
keywords, sigils, and comments are scanned.

Examples:
  giant lex reading.naija
  giant lex --show-pos reading.naija
  giant lex --only-errors reading.naija`,
	Args: cobra.ExactArgs(1),
	RunE: lexFile,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexOnlyErrs, "only-errors", false, "show only illegal tokens")
}

func lexFile(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	l := lexer.New(string(content))
	for {
		tok := l.NextToken()
		if !lexOnlyErrs || tok.Type == token.ILLEGAL {
			printToken(tok)
		}
		if tok.Type == token.EOF {
			break
		}
	}

	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(errs))
	}
	return nil
}

func printToken(tok token.Token) {
	out := fmt.Sprintf("[%-16s] %q", tok.Type, tok.Literal)
	if lexShowPos {
		out += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(out)
}
