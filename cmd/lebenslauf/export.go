package main

import (
	"fmt"
	"os"
	"path/filepath"

	export "anoa.com/lebenslauf/internal/modules/export/service"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportProfile string

//nolint:gochecknoglobals // Cobra boilerplate
var exportOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export <pdf|docx|markdown|projects-pdf>",
	Short: "Render the CV of a profile to a file",
	Long: `Render the CV of a profile to a file in the output directory.

Example:
  lebenslauf export pdf --profile backend
  lebenslauf export markdown --output-dir ./out`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(export.FormatCvPDF), string(export.FormatCvDOCX), string(export.FormatCvMarkdown), string(export.FormatProjectsPDF)},
	RunE:      runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportProfile, "profile", "p", "", "Profile slug (default profile when empty)")
	exportCmd.Flags().StringVarP(&exportOutputDir, "output-dir", "o", ".", "Directory the file is written to")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, ok := export.ParseFormat(args[0])
	if !ok {
		return errors.Errorf("unknown format %q", args[0])
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	file, err := a.services.Export.Export(cmd.Context(), format, exportProfile)
	if err != nil {
		return errors.Wrapf(err, "export %s", format)
	}

	if err := os.MkdirAll(exportOutputDir, 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}
	path := filepath.Join(exportOutputDir, file.FileName)
	if err := os.WriteFile(path, file.FileBytes, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", path, len(file.FileBytes))
	return nil
}
