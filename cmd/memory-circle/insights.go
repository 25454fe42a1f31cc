// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/memory-circle/internal/insights"
	"github.com/MKhiriev/memory-circle/internal/service"
	"github.com/MKhiriev/memory-circle/models"
)

var (
	insightsPersonFlag string
	insightsMoodFlag   string
	copyFlag           bool
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Analyze your entries and render a digest",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		entries, err := a.services.JournalService.ListEntries(ctx, service.ListFilter{
			PersonID: insightsPersonFlag,
			Mood:     insightsMoodFlag,
		})
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		stats := insights.Aggregate(entries)

		var runner insights.Runner
		seq := runner.Begin()

		var digest models.Digest
		runner.Analyze(ctx, seq, insights.Simplify(entries), func(d models.Digest) {
			digest = d
		})

		renderDigest(cmd, digest, stats)

		if copyFlag {
			if err = clipboard.WriteAll(digest.Digest); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), subtleStyle.Render("could not copy to clipboard: "+err.Error()))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), subtleStyle.Render("Digest copied to clipboard."))
			}
		}
		return nil
	},
}

func renderDigest(cmd *cobra.Command, digest models.Digest, stats models.Stats) {
	out := cmd.OutOrStdout()

	card := strings.Builder{}
	card.WriteString(titleStyle.Render(digest.Theme) + "\n")
	card.WriteString(subtleStyle.Render(digest.Insight) + "\n\n")
	card.WriteString(digestStyle.Render(digest.Digest) + "\n\n")
	card.WriteString(tagStyle.Render(strings.Join(digest.Tags, " ")))

	fmt.Fprintln(out, cardStyle.Render(card.String()))
	fmt.Fprintln(out)

	if stats.Total == 0 {
		fmt.Fprintln(out, subtleStyle.Render("No entries in this selection."))
		return
	}

	fmt.Fprintf(out, "%s  %d moments, top mood %s\n\n",
		titleStyle.Render("Mood overview"), stats.Total, stats.DominantMood)
	for _, mc := range stats.MoodCounts {
		fmt.Fprintf(out, "  %-10s %s %d\n", mc.Mood, barStyle.Render(strings.Repeat("█", mc.Count)), mc.Count)
	}
	fmt.Fprintln(out)

	if len(stats.TopicCounts) > 0 {
		fmt.Fprintf(out, "%s  %s\n", titleStyle.Render("Topics"), topicsLine(stats.TopicCounts))
		fmt.Fprintln(out)
	}

	if len(stats.Activity) > 0 {
		fmt.Fprintln(out, titleStyle.Render("Moment frequency"))
		for _, day := range stats.Activity {
			fmt.Fprintf(out, "  %-7s %s %d\n", day.Label, barStyle.Render(strings.Repeat("█", day.Count)), day.Count)
		}
		fmt.Fprintln(out)
	}

	if len(stats.Highlights) > 0 {
		fmt.Fprintln(out, titleStyle.Render("Highlights"))
		for _, entry := range stats.Highlights {
			fmt.Fprintf(out, "  ★ %s %s\n", entry.Date, entry.Title)
		}
		fmt.Fprintln(out)
	}

	if stats.WeekendLeaning {
		fmt.Fprintln(out, subtleStyle.Render("You lean toward weekend moments."))
	}

	fmt.Fprintln(out, quoteStyle.Render("“"+digest.Quote+"”"))
}

func topicsLine(counts []models.TopicCount) string {
	parts := make([]string, 0, len(counts))
	for _, tc := range counts {
		parts = append(parts, fmt.Sprintf("%s ×%d", tc.Topic, tc.Count))
	}
	return strings.Join(parts, ", ")
}

func init() {
	insightsCmd.Flags().StringVar(&insightsPersonFlag, "person", "", "only entries tagging this person id")
	insightsCmd.Flags().StringVar(&insightsMoodFlag, "mood", "", "only entries with this mood")
	insightsCmd.Flags().BoolVar(&copyFlag, "copy", false, "copy the digest paragraph to the clipboard")
}
