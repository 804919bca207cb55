package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kievzenit/coolfront/internal/frontend"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a COOL source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read source file %q: %w", path, err)
		}

		tokens, err := frontend.New(logger).Tokens(path, src)
		if err != nil {
			reportError(cmd.ErrOrStderr(), err)
			return fmt.Errorf("%s has lexical errors", path)
		}

		out := cmd.OutOrStdout()
		for i := range tokens {
			fmt.Fprintln(out, tokens[i].String())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
