// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/memory-circle/internal/service"
	"github.com/MKhiriev/memory-circle/internal/store"
	"github.com/MKhiriev/memory-circle/models"
)

var (
	moodFlag       string
	personFlag     string
	highlightsFlag bool

	titleFlag      string
	contentFlag    string
	dateFlag       string
	timeFlag       string
	locationFlag   string
	peopleFlag     []string
	highlightFlag  bool
	capsuleFlag    bool
	unlockDateFlag string
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Manage journal entries",
}

var listEntriesCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		entries, err := a.services.JournalService.ListEntries(ctx, service.ListFilter{
			Mood:          moodFlag,
			PersonID:      personFlag,
			HighlightOnly: highlightsFlag,
		})
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), subtleStyle.Render("No entries found."))
			return nil
		}

		hideLocations := a.settings.HideLocations(ctx)
		now := time.Now()

		for _, entry := range entries {
			printEntrySummary(cmd, entry, hideLocations, now)
		}

		fmt.Fprintln(cmd.OutOrStdout(), subtleStyle.Render(fmt.Sprintf("%d entries", len(entries))))
		return nil
	},
}

var showEntryCmd = &cobra.Command{
	Use:   "show [entry-id]",
	Short: "Show one entry in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		entry, err := a.services.JournalService.GetEntry(ctx, args[0])
		if err != nil {
			if errors.Is(err, store.ErrEntryNotFound) {
				return fmt.Errorf("entry not found: %s", args[0])
			}
			return err
		}

		out := cmd.OutOrStdout()

		fmt.Fprintln(out, titleStyle.Render(entry.Title))
		fmt.Fprintln(out, subtleStyle.Render(strings.TrimSpace(entry.Date+" "+entry.Time)))

		if service.CapsuleLocked(entry, time.Now()) {
			fmt.Fprintln(out, lockedStyle.Render(
				fmt.Sprintf("This time capsule stays sealed until %s.", entry.UnlockDate)))
			return nil
		}

		if entry.Mood != "" {
			fmt.Fprintln(out, "Mood:", entry.Mood)
		}
		if entry.Location != "" && !a.settings.HideLocations(ctx) {
			fmt.Fprintln(out, "Location:", entry.Location)
		}
		if len(entry.PeopleIDs) > 0 {
			fmt.Fprintln(out, "People:", strings.Join(entry.PeopleIDs, ", "))
		}
		if entry.IsHighlight {
			fmt.Fprintln(out, tagStyle.Render("★ highlight"))
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, digestStyle.Render(entry.Content))
		return nil
	},
}

var addEntryCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if contentFlag == "" {
			return errors.New("entry content is required")
		}
		if moodFlag != "" && !models.Mood(moodFlag).Valid() {
			return fmt.Errorf("unknown mood %q (known: %s)", moodFlag, knownMoods())
		}

		date := dateFlag
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		entry, err := a.services.JournalService.SaveEntry(cmd.Context(), models.Entry{
			Title:       titleFlag,
			Content:     contentFlag,
			Mood:        moodFlag,
			Date:        date,
			Time:        timeFlag,
			Location:    locationFlag,
			PeopleIDs:   peopleFlag,
			IsHighlight: highlightFlag,
			IsCapsule:   capsuleFlag,
			UnlockDate:  unlockDateFlag,
		})
		if err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Saved entry", entry.ID)
		return nil
	},
}

var deleteEntryCmd = &cobra.Command{
	Use:   "delete [entry-id]",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.services.JournalService.DeleteEntry(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted entry", args[0])
		return nil
	},
}

func printEntrySummary(cmd *cobra.Command, entry models.Entry, hideLocations bool, now time.Time) {
	out := cmd.OutOrStdout()

	marker := " "
	if entry.IsHighlight {
		marker = "★"
	}

	line := fmt.Sprintf("%s %s  %s", marker, entry.ID, entry.Title)
	if entry.Date != "" {
		line += subtleStyle.Render("  (" + entry.Date + ")")
	}
	fmt.Fprintln(out, line)

	if service.CapsuleLocked(entry, now) {
		fmt.Fprintln(out, "   ", lockedStyle.Render("sealed until "+entry.UnlockDate))
		return
	}

	if entry.Mood != "" {
		fmt.Fprintln(out, "   ", entry.Mood)
	}
	if entry.Location != "" && !hideLocations {
		fmt.Fprintln(out, "   ", subtleStyle.Render(entry.Location))
	}
}

func knownMoods() string {
	names := make([]string, 0, len(models.Moods()))
	for _, m := range models.Moods() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}

func init() {
	listEntriesCmd.Flags().StringVar(&moodFlag, "mood", "", "only entries with this mood")
	listEntriesCmd.Flags().StringVar(&personFlag, "person", "", "only entries tagging this person id")
	listEntriesCmd.Flags().BoolVar(&highlightsFlag, "highlights", false, "only highlighted entries")

	addEntryCmd.Flags().StringVar(&titleFlag, "title", "", "entry title")
	addEntryCmd.Flags().StringVar(&contentFlag, "content", "", "entry text (required)")
	addEntryCmd.Flags().StringVar(&moodFlag, "mood", "", "mood label")
	addEntryCmd.Flags().StringVar(&dateFlag, "date", "", "entry date (defaults to today)")
	addEntryCmd.Flags().StringVar(&timeFlag, "time", "", "entry time")
	addEntryCmd.Flags().StringVar(&locationFlag, "location", "", "entry location")
	addEntryCmd.Flags().StringSliceVar(&peopleFlag, "people", nil, "person ids tagged on the entry")
	addEntryCmd.Flags().BoolVar(&highlightFlag, "highlight", false, "mark as a highlight")
	addEntryCmd.Flags().BoolVar(&capsuleFlag, "capsule", false, "seal as a time capsule")
	addEntryCmd.Flags().StringVar(&unlockDateFlag, "unlock", "", "capsule unlock date")

	entriesCmd.AddCommand(listEntriesCmd, showEntryCmd, addEntryCmd, deleteEntryCmd)
}
