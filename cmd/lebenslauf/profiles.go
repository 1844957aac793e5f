package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	cvDto "anoa.com/lebenslauf/internal/modules/cv/dto"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//nolint:gochecknoglobals // Cobra boilerplate
var profilesOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the CV profiles, default first",
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.Flags().StringVarP(&profilesOutput, "output", "o", "table", "Output format: table, json or yaml")
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.services.Cv.GetProfiles(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "list profiles")
	}
	return writeProfiles(cmd.OutOrStdout(), profilesOutput, res.Profiles)
}

func writeProfiles(w io.Writer, format string, profiles []cvDto.ProfileResponse) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(profiles)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(profiles); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SLUG\tNAME\tDEFAULT")
		for _, p := range profiles {
			fmt.Fprintf(tw, "%s\t%s\t%t\n", p.Slug, p.Name, p.IsDefault)
		}
		return tw.Flush()
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}
