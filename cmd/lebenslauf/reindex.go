package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the project search index",
	Args:  cobra.NoArgs,
	RunE:  runReindex,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(reindexCmd)
}

func runReindex(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.services.Search.InitIndex(cmd.Context()); err != nil {
		return errors.Wrap(err, "init index")
	}
	n, err := a.services.Search.Reindex(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "reindex")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "queued %d projects for indexing\n", n)
	return nil
}
