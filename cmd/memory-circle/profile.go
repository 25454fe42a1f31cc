package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var profileNameFlag string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile and passcode",
}

var showProfileCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		profile, err := a.services.ProfileService.GetProfile(ctx)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(profile.Name))
		joined := time.UnixMilli(profile.JoinedDate)
		fmt.Fprintln(out, subtleStyle.Render("journaling since "+joined.Format("Jan 2, 2006")))
		if profile.IsSupporter {
			fmt.Fprintln(out, tagStyle.Render("♥ supporter"))
		}

		if has, err := a.services.ProfileService.HasPasscode(ctx); err == nil && has {
			fmt.Fprintln(out, subtleStyle.Render("passcode protection on"))
		}
		return nil
	},
}

var setProfileCmd = &cobra.Command{
	Use:   "set",
	Short: "Update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileNameFlag == "" {
			return errors.New("nothing to update, pass --name")
		}

		ctx := cmd.Context()

		profile, err := a.services.ProfileService.GetProfile(ctx)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		profile.Name = profileNameFlag
		if err = a.services.ProfileService.UpdateProfile(ctx, profile); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Profile updated.")
		return nil
	},
}

var passcodeCmd = &cobra.Command{
	Use:   "passcode",
	Short: "Manage the local passcode",
}

var setPasscodeCmd = &cobra.Command{
	Use:   "set [passcode]",
	Short: "Set or replace the passcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.services.ProfileService.SetPasscode(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to set passcode: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Passcode set.")
		return nil
	},
}

var verifyPasscodeCmd = &cobra.Command{
	Use:   "verify [passcode]",
	Short: "Check a passcode against the stored one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := a.services.ProfileService.VerifyPasscode(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to verify passcode: %w", err)
		}
		if !ok {
			return errors.New("wrong passcode")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Passcode correct.")
		return nil
	},
}

var removePasscodeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the passcode",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.services.ProfileService.RemovePasscode(cmd.Context()); err != nil {
			return fmt.Errorf("failed to remove passcode: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Passcode removed.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear profile and passcode, keeping the journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !yesFlag && !confirm(cmd, "This clears your profile and passcode. Continue? [y/N] ") {
			fmt.Fprintln(cmd.OutOrStdout(), "Logout cancelled.")
			return nil
		}

		if err := a.services.ProfileService.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out. Your journal is untouched.")
		return nil
	},
}

func init() {
	setProfileCmd.Flags().StringVar(&profileNameFlag, "name", "", "display name")

	passcodeCmd.AddCommand(setPasscodeCmd, verifyPasscodeCmd, removePasscodeCmd)
	profileCmd.AddCommand(showProfileCmd, setProfileCmd, passcodeCmd, logoutCmd)
}
