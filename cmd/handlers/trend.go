package handlers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"trendwatch/internal/analyze"
	"trendwatch/internal/config"
	"trendwatch/internal/core"
	"trendwatch/internal/docs"
	"trendwatch/internal/logger"
	"trendwatch/internal/render"
	"trendwatch/internal/sources"
	"trendwatch/internal/summary"
)

// NewTrendCmd creates the trend command, which runs the full pipeline for a
// domain keyword: collect sources, analyze, summarize, write the report.
func NewTrendCmd() *cobra.Command {
	var comprehensive bool

	cmd := &cobra.Command{
		Use:   "trend [domain]",
		Short: "Run the full trend analysis pipeline for a domain keyword",
		Long: `Collect mock news, research, and social content for a domain keyword,
extract any configured local documents, run trend analysis, and write a
markdown report.

Examples:
  trendwatch trend Fintech
  trendwatch trend "Renewable Energy" --comprehensive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrend(args[0], comprehensive)
		},
	}

	cmd.Flags().BoolVar(&comprehensive, "comprehensive", false, "collect via the pre-combined news+social bundle")

	return cmd
}

func runTrend(domain string, comprehensive bool) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.SetLevel(cfg.Logging.Level)
	if cfg.App.Debug {
		logger.SetLevel("debug")
	}

	logger.Info("Starting trend analysis", "domain", domain, "comprehensive", comprehensive)

	var (
		input map[string]any
		count int
	)
	if comprehensive {
		input, err = sources.Comprehensive(domain)
		if err != nil {
			return err
		}
	} else {
		enabled := sources.Enabled{
			News:     cfg.Sources.News,
			Research: cfg.Sources.Research,
			Social:   cfg.Sources.Social,
		}
		input, count, err = sources.Collect(domain, enabled)
		if err != nil {
			return err
		}

		// Local documents ride along in the research category. They are
		// skipped in comprehensive mode, where the nested bundle carries
		// all content.
		if cfg.Docs.Directory != "" {
			records, err := docs.ExtractDir(cfg.Docs.Directory)
			if err != nil {
				logger.Warn("Document extraction failed", "dir", cfg.Docs.Directory, "error", err.Error())
			} else {
				logger.Info("Extracted local documents", "dir", cfg.Docs.Directory, "count", len(records))
				sources.MergeDocuments(input, records)
				count += len(records)
			}
		}
	}

	result := analyze.Analyze(input)
	if result.Status != core.StatusSuccess {
		return fmt.Errorf("analysis failed: %s", result.ErrorMessage)
	}
	logger.Debug("Analysis complete", "keywords", len(result.Keywords), "topics", len(result.Topics))

	execSummary := summary.Summarize(result)

	if comprehensive {
		if s, ok := input["summary"].(map[string]any); ok {
			if n, ok := s["total_news_articles"].(int); ok {
				count += n
			}
			if n, ok := s["total_social_posts"].(int); ok {
				count += n
			}
		}
	}

	report := core.TrendReport{
		ID:          uuid.NewString(),
		Domain:      domain,
		GeneratedAt: time.Now().UTC(),
		ItemCount:   count,
		Analysis:    result,
		Summary:     execSummary,
	}

	path, err := render.WriteReport(report, cfg.Output.Directory)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info("Report written", "path", path, "items", count)

	if execSummary.Status == core.StatusSuccess {
		fmt.Println(execSummary.Summary)
	} else {
		fmt.Printf("Summary unavailable: %s\n", execSummary.ErrorMessage)
	}
	fmt.Printf("\nReport saved to %s\n", path)

	return nil
}
