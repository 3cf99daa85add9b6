package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/lexgen"
	"github.com/gnolang/lexgen/automaton"
	"github.com/gnolang/lexgen/formatter"
	"github.com/gnolang/lexgen/specfile"
)

var (
	outPath   string
	outPkg    string
	tableName string
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile a rule file into an embeddable static table",
	Run: func(cmd *cobra.Command, args []string) {
		grammar, err := compileRules()
		if err != nil {
			fmt.Fprintln(os.Stderr, formatter.FormatCompileError(err))
			os.Exit(1)
		}

		table := automaton.NewStaticTable(grammar.DFA())

		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				logger.Fatal("Failed to create output file", zap.Error(err))
			}
			defer f.Close()
			out = f
		}

		if err := table.WriteGo(out, outPkg, tableName); err != nil {
			logger.Fatal("Failed to write table", zap.Error(err))
		}
	},
}

// compileRules loads the --rules file and compiles it.
func compileRules() (*lexgen.Grammar, error) {
	if rulesFile == "" {
		return nil, fmt.Errorf("no rule file given; use --rules")
	}
	spec, err := specfile.Load(rulesFile)
	if err != nil {
		return nil, err
	}
	return lexgen.CompileWithLogger(spec, logger)
}

func init() {
	compileCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	compileCmd.Flags().StringVar(&outPkg, "package", "main", "package name of the generated file")
	compileCmd.Flags().StringVar(&tableName, "name", "scannerTable", "variable name of the generated table")
}
