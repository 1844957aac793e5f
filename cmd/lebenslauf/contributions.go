package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var syncContributionsCmd = &cobra.Command{
	Use:   "sync-contributions",
	Short: "Copy the public GitHub contribution calendar into the database",
	Long: `Read the contribution calendar of GITHUB_USERNAME from GitHub and upsert
one row per day. Days already stored get their count replaced.`,
	Args: cobra.NoArgs,
	RunE: runSyncContributions,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(syncContributionsCmd)
}

func runSyncContributions(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.services.Contributions.Sync(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "sync contributions")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "synced %d days for %s\n", n, a.cfg.GitHubUsername)
	return nil
}
