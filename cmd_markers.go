package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"archhelper/internal/diagram"
	"archhelper/internal/storage"
)

var (
	markersJSON bool
	addX        float64
	addY        float64
	addColor    string
)

var markersCmd = &cobra.Command{
	Use:   "markers [diagram...]",
	Short: "List saved markers",
	Long: `Lists the markers of each named diagram. With no arguments every
diagram that has been saved is listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var layouts []diagram.Layout
		if len(args) == 0 {
			layouts, err = savedLayouts(cmd.Context(), store)
		} else {
			layouts, err = layoutsFromArgs(args)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(layouts) == 0 {
			fmt.Fprintln(out, "no saved diagrams")
			return nil
		}
		for _, l := range layouts {
			board := diagram.Load(cmd.Context(), store, l, logger)
			if markersJSON {
				data, err := board.Serialize()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				continue
			}
			printMarkers(out, board)
		}
		return nil
	},
}

var markersAddCmd = &cobra.Command{
	Use:   "add <diagram> <label>",
	Short: "Place a marker and save the diagram",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := diagram.LayoutByName(args[0])
		if err != nil {
			return err
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		board := diagram.Load(cmd.Context(), store, l, logger)
		pos := l.Pending
		if cmd.Flags().Changed("x") {
			pos.X = addX
		}
		if cmd.Flags().Changed("y") {
			pos.Y = addY
		}
		color := ""
		if addColor != "" {
			if color = diagram.NormalizeColor(addColor, ""); color == "" {
				return fmt.Errorf("invalid color %q", addColor)
			}
		}
		mk, ok := board.Place(pos, strings.Join(args[1:], " "), color)
		if !ok {
			return fmt.Errorf("label must not be empty")
		}
		if err := diagram.Save(cmd.Context(), store, board); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s %s at (%.2f, %.2f)\n", mk.ID, mk.Label, mk.Position.X, mk.Position.Y)
		return nil
	},
}

var markersRemoveCmd = &cobra.Command{
	Use:   "rm <diagram> <id>",
	Short: "Remove a marker and save the diagram",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := diagram.LayoutByName(args[0])
		if err != nil {
			return err
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		board := diagram.Load(cmd.Context(), store, l, logger)
		if !board.Remove(args[1]) {
			return fmt.Errorf("no marker %q in %s", args[1], l.Name)
		}
		return diagram.Save(cmd.Context(), store, board)
	},
}

// savedLayouts returns the layouts whose slot exists in store, in display
// order. Slots no layout claims are skipped.
func savedLayouts(ctx context.Context, store storage.Store) ([]diagram.Layout, error) {
	keys, err := store.Keys(ctx)
	if err != nil {
		return nil, err
	}
	saved := make(map[string]bool, len(keys))
	for _, k := range keys {
		saved[k] = true
	}
	var layouts []diagram.Layout
	for _, l := range diagram.Layouts() {
		if saved[l.StorageKey] {
			layouts = append(layouts, l)
			delete(saved, l.StorageKey)
		}
	}
	for k := range saved {
		logger.Debug("ignoring unknown slot", zap.String("key", k))
	}
	return layouts, nil
}

func printMarkers(w io.Writer, board *diagram.Board) {
	l := board.Layout()
	fmt.Fprintf(w, "%s (%d)\n", l.Title, board.Len())
	for _, mk := range board.Markers() {
		zone := "-"
		if z, ok := l.Zones.Lookup(mk.Zone); ok {
			zone = z.Title
		}
		fmt.Fprintf(w, "  %-36s  %-24s  (%.2f, %.2f)  %-7s  %s\n",
			mk.ID, mk.Label, mk.Position.X, mk.Position.Y, mk.Color, zone)
		for _, c := range mk.Concerns {
			fmt.Fprintf(w, "      [%s] %s\n", c.Type, c.Text)
		}
	}
}

func init() {
	markersCmd.Flags().BoolVar(&markersJSON, "json", false, "print the stored document instead of a listing")
	markersAddCmd.Flags().Float64Var(&addX, "x", 0, "x coordinate (default: the diagram's pending point)")
	markersAddCmd.Flags().Float64Var(&addY, "y", 0, "y coordinate (default: the diagram's pending point)")
	markersAddCmd.Flags().StringVar(&addColor, "color", "", "marker color as #rrggbb")
	markersCmd.AddCommand(markersAddCmd, markersRemoveCmd)
	rootCmd.AddCommand(markersCmd)
}
