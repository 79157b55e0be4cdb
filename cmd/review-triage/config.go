// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/review-triage/pkg/types"
)

// triageConfig resolves the pipeline configuration with flag > config
// file > documented default precedence.
func triageConfig(cmd *cobra.Command) types.TriageConfig {
	cfg := types.DefaultTriageConfig()

	if viper.IsSet("coherence.threshold") {
		cfg.Coherence.Threshold = viper.GetFloat64("coherence.threshold")
	}
	if viper.IsSet("selection.keywords") {
		cfg.Selection.Keywords = viper.GetStringSlice("selection.keywords")
	}
	if viper.IsSet("selection.year_from") {
		cfg.Selection.YearFrom = viper.GetInt("selection.year_from")
	}
	if viper.IsSet("selection.year_to") {
		cfg.Selection.YearTo = viper.GetInt("selection.year_to")
	}

	if cmd.Flags().Changed("threshold") {
		cfg.Coherence.Threshold, _ = cmd.Flags().GetFloat64("threshold")
	}
	if cmd.Flags().Changed("keywords") {
		cfg.Selection.Keywords, _ = cmd.Flags().GetStringSlice("keywords")
	}
	if cmd.Flags().Changed("year-from") {
		cfg.Selection.YearFrom, _ = cmd.Flags().GetInt("year-from")
	}
	if cmd.Flags().Changed("year-to") {
		cfg.Selection.YearTo, _ = cmd.Flags().GetInt("year-to")
	}

	return cfg
}
