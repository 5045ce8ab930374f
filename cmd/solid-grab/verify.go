package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omniaura/solid-grab/analyzer"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] file.jsx...",
	Short: "Cross-check the lexical classifier against a full parse",
	Long: `Verify parses each file with tree-sitter and reports every position where
the fast lexical classifier and the parser disagree about markup tags.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	disagreements := 0
	for _, path := range args {
		report, err := analyzer.VerifyFile(ctx, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d matched, %d missed, %d extra\n",
			report.File, report.Matched, len(report.Missed), len(report.Extra))
		for _, finding := range report.Missed {
			fmt.Fprintf(out, "  missed <%s> at %d:%d\n", finding.Tag, finding.Line, finding.Column)
		}
		for _, finding := range report.Extra {
			fmt.Fprintf(out, "  extra  <%s> at %d:%d\n", finding.Tag, finding.Line, finding.Column)
		}
		disagreements += len(report.Missed) + len(report.Extra)
	}

	if disagreements > 0 {
		return fmt.Errorf("classifier disagreed with parser at %d position(s)", disagreements)
	}
	return nil
}
