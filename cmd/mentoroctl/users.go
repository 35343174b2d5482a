package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	usersCmd := &cobra.Command{Use: "users", Short: "User operations"}

	var userId, email, displayName, tz string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return fmt.Errorf("--email required")
			}
			payload := map[string]interface{}{"email": email}
			if userId != "" {
				payload["userId"] = userId
			}
			if displayName != "" {
				payload["displayName"] = displayName
			}
			if tz != "" {
				payload["timeZone"] = tz
			}
			data, err := doPostJSON(fmt.Sprintf("%s/api/users", apiFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&userId, "userId", "u", "", "User ID (server-assigned if empty)")
	createCmd.Flags().StringVarP(&email, "email", "e", "", "User email (required)")
	createCmd.Flags().StringVarP(&displayName, "name", "n", "", "Display name")
	createCmd.Flags().StringVarP(&tz, "tz", "t", "", "Time zone (defaults UTC)")
	_ = createCmd.MarkFlagRequired("email")
	usersCmd.AddCommand(createCmd)

	getCmd := &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get user by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/users/%s", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	usersCmd.AddCommand(getCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user and all their data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := doDelete(fmt.Sprintf("%s/api/users/%s", apiFlag, args[0])); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "deleted")
			return nil
		},
	}
	usersCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(usersCmd)
}
