package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xiam/lispy/lexer"
)

func newTokensCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			buf, err := io.ReadAll(in)
			if err != nil {
				return err
			}

			tokens, err := lexer.Tokenize(buf)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			out := cmd.OutOrStdout()
			for i, tok := range tokens {
				fmt.Fprintf(out, "token[%d] (type: %v) -> %q\n", i, tok.Type(), tok.Text())
			}
			return nil
		},
	}
}
