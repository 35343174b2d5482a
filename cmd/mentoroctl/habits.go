package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	habitsCmd := &cobra.Command{Use: "habits", Short: "Daily habit operations"}

	var userFlag string
	habitsCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User ID (required)")
	_ = habitsCmd.MarkPersistentFlagRequired("user")

	addCmd := &cobra.Command{
		Use:   "add TEXT",
		Short: "Create a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPostJSON(fmt.Sprintf("%s/api/users/%s/habits", apiFlag, userFlag),
				map[string]string{"text": args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	habitsCmd.AddCommand(addCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List habits with reconciled streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/users/%s/habits", apiFlag, userFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	habitsCmd.AddCommand(listCmd)

	toggleCmd := &cobra.Command{
		Use:   "toggle HABIT_ID",
		Short: "Flip a habit's done-today flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPostJSON(fmt.Sprintf("%s/api/users/%s/habits/%s/toggle", apiFlag, userFlag, args[0]), nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	habitsCmd.AddCommand(toggleCmd)

	reconcileCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Force a streak reconciliation pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := doPostJSON(fmt.Sprintf("%s/api/users/%s/habits/reconcile", apiFlag, userFlag), nil); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "reconciled")
			return nil
		},
	}
	habitsCmd.AddCommand(reconcileCmd)

	rmCmd := &cobra.Command{
		Use:   "rm HABIT_ID",
		Short: "Delete a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := doDelete(fmt.Sprintf("%s/api/users/%s/habits/%s", apiFlag, userFlag, args[0])); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "deleted")
			return nil
		},
	}
	habitsCmd.AddCommand(rmCmd)

	rootCmd.AddCommand(habitsCmd)
}
