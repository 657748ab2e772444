package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// accountsCmd represents the accounts command
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Inspect member accounts",
	Long:  `Inspect member accounts stored in the database.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'accounts' requires a subcommand (verify)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}
