/*
Copyright © 2025 Your Name

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trendwatch",
		Short: "Aggregate source feeds and derive lightweight trend signals",
		Long: `Trendwatch - Market Trend Analysis Tool

Aggregates short text snippets from news, research, and social sources
(plus local documents) and derives trend signals: frequent terms, coarse
topic tags, and an executive narrative.

Examples:
  # Full pipeline for a domain keyword
  trendwatch trend Fintech

  # Analyze a prepared JSON input
  trendwatch analyze --input sources.json`,
		Version: "0.1.0",
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./trendwatch.yaml)")

	rootCmd.AddCommand(NewTrendCmd())
	rootCmd.AddCommand(NewAnalyzeCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
