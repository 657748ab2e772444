package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"alumnihub/internal/bootstrap"
	"alumnihub/internal/model"
)

// adminCreateCmd represents the admin create command
var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a super-admin account",
	Long: `Create a super-admin account.

The account bypasses the membership approval workflow: it is created
approved, active and email-verified. Creation is refused when an account
with the same email already exists (the comparison is case-insensitive).
If another super-admin already exists a warning is printed and creation
still proceeds.

When all four flags are supplied the command runs non-interactively.
With no flags it prompts for each value, offering the ADMIN_* environment
variables as defaults. The password prompt does not echo.

Example:
  alumnictl admin create
  alumnictl admin create --email ops@alumni.org --password 'secret-pw' --firstName Dana --lastName Reyes`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAdminCreate(cmd); err != nil {
			os.Exit(1)
		}
	},
}

// runAdminCreate does the actual work and returns instead of exiting so the
// deferred database close runs on every path.
func runAdminCreate(cmd *cobra.Command) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	firstName, _ := cmd.Flags().GetString("firstName")
	lastName, _ := cmd.Flags().GetString("lastName")

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return err
	}

	var source bootstrap.InputSource
	if email == "" && password == "" && firstName == "" && lastName == "" {
		source = bootstrap.PromptSource{
			Reader: bufio.NewReader(os.Stdin),
			Out:    os.Stderr,
			Defaults: bootstrap.Input{
				Email:     cfg.AdminEmail,
				Password:  cfg.AdminPassword,
				FirstName: cfg.AdminFirstName,
				LastName:  cfg.AdminLastName,
			},
		}
	} else {
		source = bootstrap.ArgsSource{Input: bootstrap.Input{
			Email:     email,
			Password:  password,
			FirstName: firstName,
			LastName:  lastName,
		}}
	}

	// Input is resolved before any database work so a failed prompt never
	// leaves a connection open.
	input, err := source.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
		return err
	}

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		return err
	}
	if repo == nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to database: no database configured (set DBType)")
		return errors.New("no database configured")
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close database connection")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := bootstrap.CreateSuperAdmin(ctx, repo, input)
	if err != nil {
		var validationErr *bootstrap.ValidationError
		var duplicateErr *bootstrap.DuplicateEmailError
		switch {
		case errors.As(err, &validationErr):
			fmt.Fprintln(os.Stderr, "Refusing to create account:")
			for _, violation := range validationErr.Violations {
				fmt.Fprintf(os.Stderr, "  - %s\n", violation)
			}
		case errors.As(err, &duplicateErr):
			fmt.Fprintf(os.Stderr, "Refusing to create account: %v\n", duplicateErr)
		default:
			fmt.Fprintf(os.Stderr, "Failed to create account: %v\n", err)
		}
		return err
	}

	if result.SuperAdminExisted {
		logrus.Warn("another super-admin account already exists; creating an additional one")
	}

	account := result.Account
	fmt.Fprintf(os.Stderr, "Created super-admin account '%s'\n", account.Email)
	fmt.Printf("ID:         %d\n", account.ID)
	fmt.Printf("Email:      %s\n", account.Email)
	fmt.Printf("Name:       %s %s\n", account.FirstName, account.LastName)
	fmt.Printf("Role:       %s\n", account.Role)
	fmt.Printf("Created at: %s\n", account.CreatedAt.Format(time.RFC3339))
	fmt.Fprintln(os.Stderr, "This output identifies a privileged account; store it securely.")
	return nil
}

func init() {
	adminCmd.AddCommand(adminCreateCmd)
	adminCreateCmd.Flags().String("email", "", "Email address for the new account")
	adminCreateCmd.Flags().String("password", "", "Password (minimum 8 characters)")
	adminCreateCmd.Flags().String("firstName", "", "First name (minimum 2 characters)")
	adminCreateCmd.Flags().String("lastName", "", "Last name (minimum 2 characters)")
}
