package main

import (
	"fmt"

	"anoa.com/lebenslauf/internal/bootstrap"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var withAdmin bool

//nolint:gochecknoglobals // Cobra boilerplate
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the schema and load the sample CV data",
	Long: `Migrate the schema and load the sample data set with the default,
backend and mobile profiles. Nothing is written when personal data already
exists, so the command can be run repeatedly.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&withAdmin, "admin", true, "Also create the admin user from ADMIN_EMAIL and ADMIN_PASSWORD")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := bootstrap.Migrate(a.deps.DB); err != nil {
		return errors.Wrap(err, "migrate")
	}

	seeded, err := bootstrap.SeedCv(a.deps.DB, a.log)
	if err != nil {
		return errors.Wrap(err, "seed cv data")
	}
	if seeded {
		fmt.Fprintln(cmd.OutOrStdout(), "sample data written")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "data already present, nothing written")
	}

	if withAdmin {
		if err := bootstrap.SeedAdminUser(a.deps.DB, a.cfg.AdminEmail, a.cfg.AdminPassword, a.log); err != nil {
			return errors.Wrap(err, "seed admin user")
		}
	}
	return nil
}
