package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnolang/lexgen/formatter"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Describe the automaton compiled from a rule file",
	Run: func(cmd *cobra.Command, args []string) {
		grammar, err := compileRules()
		if err != nil {
			fmt.Fprintln(os.Stderr, formatter.FormatCompileError(err))
			os.Exit(1)
		}

		fmt.Print(formatter.DescribeTokens(grammar))
		fmt.Println()
		fmt.Print(formatter.DescribeDFA(grammar))
	},
}
