package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spec-kit/fittrack/internal/domain"
)

var (
	profileBirthYear int
	profileGender    string
	profileUnits     string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and update the profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		profile, err := cli.client.Profile(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("username: %s\n", profile.Username)
		if profile.BirthYear != nil {
			fmt.Printf("birth year: %d", *profile.BirthYear)
			if profile.Age != nil {
				fmt.Printf(" (age %d)", *profile.Age)
			}
			fmt.Println()
		}
		if profile.Gender != nil {
			fmt.Printf("gender: %s\n", *profile.Gender)
		}
		fmt.Printf("units: %s\n", profile.UnitPreference)
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		var req domain.ProfileUpdateRequest
		if cmd.Flags().Changed("birth-year") {
			req.BirthYear = &profileBirthYear
		}
		if profileGender != "" {
			gender := domain.Gender(strings.ToUpper(profileGender))
			req.Gender = &gender
		}
		if profileUnits != "" {
			units := domain.UnitPreference(strings.ToUpper(profileUnits))
			if units != domain.UnitsMetric && units != domain.UnitsImperial {
				return fmt.Errorf("units must be metric or imperial")
			}
			req.UnitPreference = &units
		}
		if req.BirthYear == nil && req.Gender == nil && req.UnitPreference == nil {
			return fmt.Errorf("nothing to update, pass --birth-year, --gender or --units")
		}

		profile, err := cli.client.UpdateProfile(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("profile updated, units: %s\n", profile.UnitPreference)
		return nil
	},
}

var profileHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show profile and measurement change history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		entries, err := cli.client.ChangeHistory(cmd.Context())
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("no changes recorded")
			return nil
		}
		for _, e := range entries {
			old := "-"
			if e.OldValue != nil {
				old = *e.OldValue
			}
			newVal := "-"
			if e.NewValue != nil {
				newVal = *e.NewValue
			}
			fmt.Printf("%s  %-11s %-15s %s -> %s\n",
				e.ChangedAt.Local().Format("2006-01-02 15:04"),
				e.EntityType, e.FieldName, old, newVal)
		}
		return nil
	},
}

func init() {
	profileSetCmd.Flags().IntVar(&profileBirthYear, "birth-year", 0, "year of birth")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "MALE, FEMALE, OTHER or PREFER_NOT_TO_SAY")
	profileSetCmd.Flags().StringVar(&profileUnits, "units", "", "metric or imperial")
	profileCmd.AddCommand(profileShowCmd, profileSetCmd, profileHistoryCmd)
	rootCmd.AddCommand(profileCmd)
}
