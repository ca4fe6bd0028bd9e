package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xiam/lispy"
	"github.com/xiam/lispy/lexer"
	"github.com/xiam/lispy/parser"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check file...",
		Short: "Check that files contain well-formed expressions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				n, err := checkFile(opts, name)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: FAIL %s\n", name, describeError(err))
					return errors.Wrap(err, name)
				}
				log.Printf("%s: %d expressions", name, n)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
			}
			return nil
		},
	}
}

func checkFile(opts *globalOptions, name string) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	exprs, err := lispy.NewReader(f).SetOptions(opts.cfg.ParserOptions()).ReadAll()
	if err != nil {
		return 0, err
	}
	return len(exprs), nil
}

// describeError tells where reading stopped.
func describeError(err error) string {
	var re *lispy.ReadError
	if !errors.As(err, &re) {
		return err.Error()
	}

	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		return fmt.Sprintf("(%s) byte %d: %v near %q", re.Stage, lexErr.Offset, lexErr.Err, firstLine(lexErr.Remainder))
	}

	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return fmt.Sprintf("(%s) token %d: %v (%d tokens left)", re.Stage, pe.Offset, pe.Err, pe.Remaining)
	}

	return re.Error()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
