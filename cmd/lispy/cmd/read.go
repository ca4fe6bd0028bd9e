package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/xiam/lispy"
	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/internal/config"
)

func newReadCmd(opts *globalOptions) *cobra.Command {
	var (
		all    bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "read [file]",
		Short: "Read expressions and print their trees",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *opts.cfg
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if all {
				cfg.Mode = config.ModeAll
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			log.Printf("reading %s (mode: %s)", name, cfg.Mode)

			r := lispy.NewReader(in).SetOptions(cfg.ParserOptions())

			var exprs []ast.Expr
			if cfg.Mode == config.ModeAll {
				exprs, err = r.ReadAll()
			} else {
				var expr ast.Expr
				expr, err = r.Read()
				exprs = []ast.Expr{expr}
			}
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			for _, expr := range exprs {
				writeExpr(cmd.OutOrStdout(), cfg.Format, expr)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "read every top-level expression")
	cmd.Flags().StringVarP(&format, "format", "f", config.OutputSexpr, "output format: sexpr or tree")

	return cmd
}

func writeExpr(w io.Writer, format string, expr ast.Expr) {
	if format == config.OutputTree {
		ast.Print(w, expr)
		return
	}
	fmt.Fprintln(w, expr)
}
