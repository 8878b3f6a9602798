package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"archhelper/internal/refdata"
)

var tableSelect []string

var tablesCmd = &cobra.Command{
	Use:       "tables <architectures|databases>",
	Short:     "Print a comparison table with totals for the selected characteristics",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"architectures", "databases"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			tbl *refdata.Table
			err error
		)
		switch args[0] {
		case "architectures":
			tbl, err = refdata.Architectures()
		case "databases":
			tbl, err = refdata.Databases()
		default:
			return fmt.Errorf("unknown table %q: must be architectures or databases", args[0])
		}
		if err != nil {
			return err
		}

		sel := refdata.NewSelection()
		for _, c := range tableSelect {
			if !tbl.Selectable(c) {
				return fmt.Errorf("%q cannot be selected in %s", c, tbl.Name)
			}
			if !sel.Selected(c) {
				sel.Toggle(c)
			}
		}
		printTable(cmd.OutOrStdout(), tbl, sel, args[0] == "architectures")
		return nil
	},
}

func printTable(w io.Writer, tbl *refdata.Table, sel *refdata.Selection, stars bool) {
	const first = 34
	fmt.Fprintf(w, "%-*s", first, "")
	for _, e := range tbl.Entities {
		fmt.Fprintf(w, " %-18s", tbl.Heading(e))
	}
	fmt.Fprintln(w)

	for _, c := range tbl.Characteristics {
		mark := "   "
		if tbl.Selectable(c) {
			mark = "[ ]"
			if sel.Selected(c) {
				mark = "[x]"
			}
		}
		fmt.Fprintf(w, "%s %-*s", mark, first-4, refdata.Label(c))
		for _, e := range tbl.Entities {
			cell := tbl.Value(e, c)
			if s, ok := tbl.Score(e, c); ok && stars {
				cell = refdata.Stars(s)
			}
			fmt.Fprintf(w, " %s%s", cell, strings.Repeat(" ", max(0, 18-len([]rune(cell)))))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%-*s", first, fmt.Sprintf("Selected (%d)", sel.Count()))
	totals, ok := tbl.Totals(sel)
	for _, e := range tbl.Entities {
		v := "-"
		if ok {
			v = fmt.Sprint(totals[e])
		}
		fmt.Fprintf(w, " %-18s", v)
	}
	fmt.Fprintln(w)
}

func init() {
	tablesCmd.Flags().StringSliceVarP(&tableSelect, "select", "s", nil, "characteristics to count (repeatable or comma separated)")
	rootCmd.AddCommand(tablesCmd)
}
