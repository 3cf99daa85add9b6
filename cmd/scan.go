package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/lexgen"
	"github.com/gnolang/lexgen/automaton"
	"github.com/gnolang/lexgen/formatter"
	"github.com/gnolang/lexgen/scanner"
)

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Tokenize files with a compiled rule file",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		grammar, err := compileRules()
		if err != nil {
			fmt.Fprintln(os.Stderr, formatter.FormatCompileError(err))
			os.Exit(1)
		}

		table := automaton.NewStaticTable(grammar.DFA())
		s := scanner.New(&table)

		for _, path := range args {
			info, err := os.Stat(path)
			if err != nil {
				logger.Error("Error accessing path", zap.String("path", path), zap.Error(err))
				continue
			}

			if info.IsDir() {
				err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
					if err != nil {
						return err
					}
					if !fileInfo.IsDir() {
						scanFile(s, grammar, filePath)
					}
					return nil
				})
				if err != nil {
					logger.Error("Error walking directory", zap.String("path", path), zap.Error(err))
				}
			} else {
				scanFile(s, grammar, path)
			}
		}
	},
}

func scanFile(s *scanner.Scanner, grammar *lexgen.Grammar, path string) {
	input, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Error reading file", zap.String("file", path), zap.Error(err))
		return
	}

	s.Initialize(path, input)

	var tokens []scanner.Token
	for s.HasNext() {
		tokens = append(tokens, s.Next())
	}
	fmt.Print(formatter.FormatTokens(grammar, tokens))
}
