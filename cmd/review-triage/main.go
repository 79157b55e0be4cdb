// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the review-triage CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the review-triage CLI.
var rootCmd = &cobra.Command{
	Use:   "review-triage",
	Short: "Triage citation exports for a systematic literature review",
	Long: `review-triage ingests citation exports (.ris and .bib), validates that each
record carries a title, abstract, and year, removes exact duplicates, scores
how well each abstract matches its own title, and applies keyword and date
selection criteria. The result is the filtered candidate set an analyst
screens before full-text review.

Everything is recomputed from the input files on each invocation; nothing
is persisted between runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./review-triage.yaml or ~/.config/review-triage/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("review-triage")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "review-triage"))
		}
	}

	viper.SetEnvPrefix("REVIEW_TRIAGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
