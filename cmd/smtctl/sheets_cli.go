package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func buildInitSheetsCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "init-sheets",
		Short: "Create every worksheet with its header row",
		Long:  "Creates the worksheets the console uses. Existing worksheets are left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitSheets(env, cmd.OutOrStdout())
		},
	}
}

func runInitSheets(env *cliEnv, out io.Writer) error {
	ctx, cancel := commandContext()
	defer cancel()

	svc, cleanup, err := env.open(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := svc.InitSheets.Execute(ctx)
	if err != nil {
		return err
	}

	for _, name := range res.Created {
		fmt.Fprintf(out, "created  %s\n", name)
	}
	for _, name := range res.Existing {
		fmt.Fprintf(out, "exists   %s\n", name)
	}
	return nil
}
