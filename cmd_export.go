package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"archhelper/internal/diagram"
	"archhelper/internal/export"
)

var (
	exportFormat string
	exportDir    string
)

var exportCmd = &cobra.Command{
	Use:   "export [diagram...]",
	Short: "Render saved diagrams to image files",
	Long: `Renders the saved state of each named diagram (domain-chart,
influence-matrix) to <diagram>.png or .jpg. With no arguments every diagram
is exported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		layouts, err := layoutsFromArgs(args)
		if err != nil {
			return err
		}

		exporter, err := newExporter(cfg, logger)
		if err != nil {
			return err
		}
		if exportFormat != "" {
			if exporter.Format, err = export.ParseFormat(exportFormat); err != nil {
				return err
			}
		}
		if exportDir != "" {
			exporter.Dir = exportDir
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		for _, l := range layouts {
			board := diagram.Load(cmd.Context(), store, l, logger)
			path, err := exporter.Export(cmd.Context(), board.Snapshot())
			if err != nil {
				return fmt.Errorf("exporting %s: %w", l.Name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d %ss -> %s\n", l.Name, board.Len(), l.Noun, path)
		}
		return nil
	},
}

// layoutsFromArgs resolves diagram names, defaulting to all of them.
func layoutsFromArgs(args []string) ([]diagram.Layout, error) {
	if len(args) == 0 {
		return diagram.Layouts(), nil
	}
	var layouts []diagram.Layout
	for _, name := range args {
		l, err := diagram.LayoutByName(name)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, l)
	}
	return layouts, nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "image format: png or jpeg (default from config)")
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "output directory (default from config)")
	rootCmd.AddCommand(exportCmd)
}
