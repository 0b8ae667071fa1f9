package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/light-bringer/smt-console/internal/app/smt/usecases/export_workbook"
	"github.com/light-bringer/smt-console/internal/gateway"
	"github.com/light-bringer/smt-console/internal/store"
)

func buildExportCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "export <out.xlsx>",
		Short: "Snapshot every worksheet into an xlsx file",
		Long:  "Copies every worksheet the console uses into a local xlsx workbook. An existing file is updated in place.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(env, cmd.OutOrStdout(), args[0])
		},
	}
}

func runExport(env *cliEnv, out io.Writer, path string) error {
	ctx, cancel := commandContext()
	defer cancel()

	svc, cleanup, err := env.open(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	x, err := gateway.OpenXLSX(path)
	if err != nil {
		return err
	}
	defer x.Close()

	target := store.New(gateway.New(gateway.Static(x), svc.Logger.Named("export")), nil, svc.Logger.Named("export"))
	res, err := svc.ExportWorkbook.Execute(ctx, &export_workbook.Request{Target: target})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "exported %d worksheets, %d rows to %s\n", res.Sheets, res.Rows, path)
	return nil
}
