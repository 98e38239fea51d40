package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/crvicio/crvc/crv/parser"
	"github.com/crvicio/crvc/format"
)

func newTokensCmd() *cobra.Command {
	var tolerant bool
	var newlines bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Tokenize a .crv file and print the token table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return err
			}

			var opts []parser.LexerOption
			if tolerant {
				opts = append(opts, parser.Tolerant())
			}
			if newlines {
				opts = append(opts, parser.EmitNewlines())
			}

			tokens, err := parser.Tokenize(input, displayName(args[0]), opts...)
			if err != nil {
				return err
			}

			return format.NewTokenTableEncoder(os.Stdout).Encode(tokens)
		},
	}

	cmd.Flags().BoolVar(&tolerant, "tolerant", false, "Keep tokenizing past unrecognized characters")
	cmd.Flags().BoolVar(&newlines, "newlines", false, "Include newline tokens in the listing")

	return cmd
}
