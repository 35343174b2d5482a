package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	var userFlag, sectionFlag string
	suggestCmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the mentor for a suggestion on a dashboard section",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPostJSON(fmt.Sprintf("%s/api/users/%s/suggestions", apiFlag, userFlag),
				map[string]string{"section": sectionFlag})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	suggestCmd.Flags().StringVarP(&userFlag, "user", "u", "", "User ID (required)")
	suggestCmd.Flags().StringVarP(&sectionFlag, "section", "s", "habits", "Section: roadmap|actions|habits|skills|brand|finance")
	_ = suggestCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(suggestCmd)
}
