package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"trendwatch/internal/analyze"
	"trendwatch/internal/core"
	"trendwatch/internal/summary"
)

// NewAnalyzeCmd creates the analyze command, which runs the analysis and
// summary stages over a prepared JSON input instead of collecting sources.
func NewAnalyzeCmd() *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a prepared JSON input and print the results",
		Long: `Read a JSON document holding categorized content (news, research,
social) or a pre-combined analysis bundle, run trend analysis and the
executive summary over it, and print both results as JSON.

Reads from stdin when --input is not given.

Example:
  trendwatch analyze --input sources.json
  cat sources.json | trendwatch analyze`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(inputFile)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "JSON input file (default stdin)")

	return cmd
}

func runAnalyze(inputFile string) error {
	var data []byte
	var err error
	if inputFile != "" {
		data, err = os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("failed to parse input JSON: %w", err)
	}

	result := analyze.Analyze(input)

	output := struct {
		Analysis core.AnalysisResult    `json:"analysis"`
		Summary  *core.ExecutiveSummary `json:"executive_summary,omitempty"`
	}{Analysis: result}

	if result.Status == core.StatusSuccess {
		s := summary.Summarize(result)
		output.Summary = &s
	}

	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(encoded))

	if result.Status != core.StatusSuccess {
		return fmt.Errorf("analysis failed: %s", result.ErrorMessage)
	}
	return nil
}
