package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/lispy/internal/config"
)

type globalOptions struct {
	cfgFile string
	verbose bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "lispy",
		Short: "lispy - S-expression reader",
		Long: `lispy reads S-expressions and prints the trees they describe.

Grammar:
  expr := integer | symbol | list
  list := "(" expr* ")"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetPrefix("lispy: ")
			log.SetFlags(0)
			if opts.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}

			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return err
			}
			log.Printf("config: %+v", *cfg)
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $HOME/.config/lispy/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newReadCmd(opts),
		newTokensCmd(opts),
		newCheckCmd(opts),
		newReplCmd(opts),
	)

	return rootCmd
}

// Execute runs the lispy command line
func Execute() error {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}

// openInput returns the named file, or stdin when no file is given or the
// name is "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "<stdin>", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	return f, args[0], nil
}
