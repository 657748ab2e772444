package bootstrap

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"alumnihub/internal/model"
)

// RecentAccountLimit caps the diagnostic listing.
const RecentAccountLimit = 5

// VerifyAccounts prints a read-only confidence check: the total account count
// and the five most recently created accounts, newest first. No writes occur.
func VerifyAccounts(ctx context.Context, repo model.Repository, w io.Writer) error {
	if repo == nil {
		return fmt.Errorf("repository is nil")
	}

	total, err := repo.CountAccounts(ctx)
	if err != nil {
		return fmt.Errorf("count accounts: %w", err)
	}

	recent, err := repo.ListRecentAccounts(ctx, RecentAccountLimit)
	if err != nil {
		return fmt.Errorf("list recent accounts: %w", err)
	}

	fmt.Fprintf(w, "Total accounts: %d\n\n", total)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EMAIL\tEXTERNAL ID\tROLE\tSTATUS\tFIRST NAME")
	for _, account := range recent {
		externalID := account.ExternalID
		if externalID == "" {
			externalID = "-"
		}
		status := account.ApprovalStatus
		if !account.IsActive {
			status += " (inactive)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			account.Email, externalID, account.Role, status, account.FirstName)
	}
	return tw.Flush()
}
