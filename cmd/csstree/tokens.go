package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tdewolff/csstree/css"
	"github.com/tdewolff/csstree/internal/load"
)

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the tokens of a stylesheet",
		Long:  `Print one token per line with its byte range and data. Use - to read from standard input.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := load.ReadFile(args[0], a.stdin)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			l := css.NewLexer(src, a.v.GetBool("lenient"))
			for {
				t, err := l.Next(false)
				if errors.Is(err, io.EOF) {
					return nil
				} else if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				fmt.Fprintf(w, "%v %v\n", t.Span(), t)
			}
		},
	}
}
