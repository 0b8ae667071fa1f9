package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/smt-console/internal/config"
	"github.com/light-bringer/smt-console/internal/pkg/logger"
	"github.com/light-bringer/smt-console/internal/services"
)

// commandTimeout bounds a single CLI invocation.
const commandTimeout = 2 * time.Minute

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "smtctl",
		Short:         "SMT console maintenance tool",
		Long:          `smtctl prepares, checks and exports the spreadsheet workbook behind the SMT console.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml")

	env := &cliEnv{configPath: &configPath}
	rootCmd.AddCommand(buildInitSheetsCommand(env))
	rootCmd.AddCommand(buildReconcileCommand(env))
	rootCmd.AddCommand(buildExportCommand(env))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "smtctl: %v\n", err)
		os.Exit(1)
	}
}

// cliEnv resolves configuration once the flags are parsed.
type cliEnv struct {
	configPath *string
}

// open loads configuration, builds the logger and wires the services. The
// returned cleanup closes both.
func (e *cliEnv) open(ctx context.Context) (*services.ServiceOptions, func(), error) {
	cfg, err := config.Load(*e.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	svc, err := services.NewServiceOptions(ctx, cfg, lg)
	if err != nil {
		_ = lg.Sync()
		return nil, nil, fmt.Errorf("failed to initialize service: %w", err)
	}

	cleanup := func() {
		svc.Close()
		if err := lg.Sync(); err != nil {
			lg.Debug("logger sync failed", zap.Error(err))
		}
	}
	return svc, cleanup, nil
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}
