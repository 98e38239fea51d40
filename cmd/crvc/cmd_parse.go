package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/crvicio/crvc/config"
	"github.com/crvicio/crvc/crv/parser"
	"github.com/crvicio/crvc/format"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var tolerant bool
	var verbose bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .crv file and dump the syntax tree",
		Long:  `Parse a .crv file and dump the syntax tree. Pass - to read from stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = outputFormat
			}
			if cmd.Flags().Changed("tolerant") {
				cfg.Lexer.Tolerant = tolerant
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			filename := args[0]
			input, err := readInput(filename)
			if err != nil {
				return err
			}

			var opts []parser.LexerOption
			if cfg.Lexer.Tolerant {
				opts = append(opts, parser.Tolerant())
			}

			start := time.Now()
			tokens, err := parser.Tokenize(input, displayName(filename), opts...)
			if err != nil {
				return err
			}
			lexed := time.Now()

			program, err := parser.Parse(tokens)
			if err != nil {
				return err
			}
			parsed := time.Now()

			if verbose {
				fmt.Fprintf(os.Stderr, "tokenize: %d tokens in %s\n", len(tokens), lexed.Sub(start))
				fmt.Fprintf(os.Stderr, "parse: %s\n", parsed.Sub(lexed))
			}

			encoder, err := format.NewEncoder(cfg.Output.Format, os.Stdout)
			if err != nil {
				return err
			}
			if err := encoder.Encode(program); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&tolerant, "tolerant", false, "Keep tokenizing past unrecognized characters")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report phase timings on stderr")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")

	return cmd
}

// loadConfig loads the file named by --config, or a crvc.yaml sitting
// next to the input file, or the defaults.
func loadConfig(path, filename string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if filename != "-" {
		candidate := filepath.Join(filepath.Dir(filename), "crvc.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return config.Load(candidate)
		}
	}
	return config.Default(), nil
}

func readInput(filename string) ([]byte, error) {
	if filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}
	return data, nil
}

func displayName(filename string) string {
	if filename == "-" {
		return "<stdin>"
	}
	return filename
}
