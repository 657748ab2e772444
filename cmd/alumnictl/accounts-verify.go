package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"alumnihub/internal/bootstrap"
)

// accountsVerifyCmd represents the accounts verify command
var accountsVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Print a read-only account health summary",
	Long: `Print a read-only account health summary.

Shows the total number of accounts and the five most recently created
ones, newest first. Performs no writes; safe to run against production.

Example:
  alumnictl accounts verify`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAccountsVerify(); err != nil {
			os.Exit(1)
		}
	},
}

// runAccountsVerify returns instead of exiting so the deferred database
// close runs on every path.
func runAccountsVerify() error {
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open repository: %v\n", err)
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close database connection")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := bootstrap.VerifyAccounts(ctx, repo, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to verify accounts: %v\n", err)
		return err
	}
	return nil
}

func init() {
	accountsCmd.AddCommand(accountsVerifyCmd)
}
