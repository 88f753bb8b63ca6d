package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tariff-analyzer",
	Short: "LLM-backed tariff news analysis API",
}

func Execute() error {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(migrateCmd)
	return rootCmd.Execute()
}
