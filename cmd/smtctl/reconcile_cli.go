package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/light-bringer/smt-console/internal/app/smt/domain"
)

func buildReconcileCommand(env *cliEnv) *cobra.Command {
	var fix bool
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Compare stock levels with the movement history",
		Long:  "Lists every item whose current_stock differs from the sum of its history. --fix rewrites inventory_data from the history.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(env, cmd.OutOrStdout(), fix)
		},
	}
	cmd.Flags().BoolVar(&fix, "fix", false, "rewrite inventory_data from inventory_history")
	return cmd
}

func runReconcile(env *cliEnv, out io.Writer, fix bool) error {
	ctx, cancel := commandContext()
	defer cancel()

	svc, cleanup, err := env.open(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if !fix {
		r, err := svc.ReconcileInventory.Execute(ctx)
		if err != nil {
			return err
		}
		printReconciliation(out, r)
		return nil
	}

	res, err := svc.RebuildInventory.Execute(ctx)
	if err != nil {
		return err
	}
	printReconciliation(out, res.Before)
	if !res.Before.Consistent() {
		fmt.Fprintf(out, "rewrote inventory_data: %d items\n", res.Items)
	}
	return nil
}

func printReconciliation(out io.Writer, r *domain.Reconciliation) {
	defer printMislabels(out, r.Mislabeled)
	if r.Consistent() {
		fmt.Fprintf(out, "consistent: %d items checked\n", r.ItemsChecked)
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tNAME\tSTOCK\tHISTORY\tDELTA\tNOTE")
	for _, d := range r.Divergences {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%+d\t%s\n", d.ItemCode, d.ItemName, d.StateStock, d.HistorySum, d.Delta(), note(d))
	}
	_ = w.Flush()
	fmt.Fprintf(out, "%d of %d items diverge\n", len(r.Divergences), r.ItemsChecked)
}

func printMislabels(out io.Writer, rows []domain.Mislabel) {
	if len(rows) == 0 {
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROW\tITEM\tLABEL\tDELTA\tEXPECTED")
	for _, m := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%+d\t%s\n", m.Row, m.ItemCode, m.Label, m.Delta, m.Expected.English())
	}
	_ = w.Flush()
	fmt.Fprintf(out, "%d history rows carry a direction that contradicts their delta\n", len(rows))
}

func note(d domain.Divergence) string {
	switch {
	case !d.HasState:
		return "no stock row"
	case !d.HasHistory:
		return "no history"
	default:
		return ""
	}
}
