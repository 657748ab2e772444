package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"alumnihub/internal/config"
	"alumnihub/internal/model"
)

// rootCmd represents the base alumnictl command
var rootCmd = &cobra.Command{
	Use:   "alumnictl",
	Short: "Operator tooling for the alumni association site",
	Long: `alumnictl is the operator-side companion to the alumnihub server.

It talks directly to the configured database and is used for one-shot
administrative procedures such as provisioning the first super-admin
account and checking account health.

Database and credential settings come from the environment (a .env file
in the working directory is loaded automatically).`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads .env (if present) and parses the environment.
func loadConfig() (config.Config, error) {
	_ = godotenv.Load()
	cfg, err := config.ParseConfig()
	if err != nil {
		return config.Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// openRepository connects to the configured database. Callers must Close
// the repository on every exit path.
func openRepository() (model.Repository, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	repo, err := model.InitRepository(&cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if repo == nil {
		return nil, fmt.Errorf("no database configured: set DBType")
	}
	return repo, nil
}
