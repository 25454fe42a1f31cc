package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/memory-circle/internal/store"
	"github.com/MKhiriev/memory-circle/models"
)

var (
	personNameFlag string
	personRoleFlag string
	personBioFlag  string
)

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "Manage the people tagged in your entries",
}

var listPeopleCmd = &cobra.Command{
	Use:   "list",
	Short: "List people with their memory counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		people, err := a.services.PeopleService.GetPeople(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list people: %w", err)
		}

		if len(people) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), subtleStyle.Render("Nobody here yet."))
			return nil
		}

		for _, person := range people {
			line := fmt.Sprintf("%s  %s", person.ID, titleStyle.Render(person.Name))
			if person.Role != "" {
				line += subtleStyle.Render("  " + person.Role)
			}
			line += fmt.Sprintf("  (%d memories)", person.MemoriesCount)
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

var addPersonCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a person",
	RunE: func(cmd *cobra.Command, args []string) error {
		if personNameFlag == "" {
			return errors.New("person name is required")
		}

		person, err := a.services.PeopleService.SavePerson(cmd.Context(), models.Person{
			Name: personNameFlag,
			Role: personRoleFlag,
			Bio:  personBioFlag,
		})
		if err != nil {
			return fmt.Errorf("failed to save person: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Saved person", person.ID)
		return nil
	},
}

var deletePersonCmd = &cobra.Command{
	Use:   "delete [person-id]",
	Short: "Delete a person and untag them everywhere",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := a.services.PeopleService.DeletePerson(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, store.ErrPersonNotFound) {
				return fmt.Errorf("person not found: %s", args[0])
			}
			return fmt.Errorf("failed to delete person: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Deleted person", args[0])

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				fmt.Fprintln(out, subtleStyle.Render(
					fmt.Sprintf("  could not untag entry %s: %v", r.EntryID, r.Err)))
			}
		}
		if len(results) > 0 {
			fmt.Fprintf(out, "Untagged from %d entries", len(results)-failed)
			if failed > 0 {
				fmt.Fprintf(out, " (%d failed, run again to retry)", failed)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	addPersonCmd.Flags().StringVar(&personNameFlag, "name", "", "person name (required)")
	addPersonCmd.Flags().StringVar(&personRoleFlag, "role", "", "relationship, e.g. Sister")
	addPersonCmd.Flags().StringVar(&personBioFlag, "bio", "", "short bio")

	peopleCmd.AddCommand(listPeopleCmd, addPersonCmd, deletePersonCmd)
}
