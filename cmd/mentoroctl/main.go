package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag string
	keyFlag string
	rootCmd = &cobra.Command{
		Use:   "mentoroctl",
		Short: "CLI client for the Mentoro dashboard REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Mentoro service base URL")
	rootCmd.PersistentFlags().StringVarP(&keyFlag, "key", "k", "sk_local_mentoro_dev_key", "API key")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
