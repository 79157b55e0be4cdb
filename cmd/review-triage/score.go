// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/review-triage/internal/coherence"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score title/abstract coherence for a single pair",
	Long: `Score computes the TF-IDF cosine similarity between one title and one
abstract, the same computation the pipeline applies per record. Useful for
checking why a record landed on either side of the threshold.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		abstract, _ := cmd.Flags().GetString("abstract")
		if title == "" || abstract == "" {
			return fmt.Errorf("both --title and --abstract are required")
		}
		fmt.Printf("%.6f\n", coherence.Similarity(title, abstract))
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("title", "", "record title")
	scoreCmd.Flags().String("abstract", "", "record abstract")

	rootCmd.AddCommand(scoreCmd)
}
