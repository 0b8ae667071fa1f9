package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/smt-console/internal/app/smt/queries/daily_check_sheet"
	"github.com/light-bringer/smt-console/internal/app/smt/queries/load_table"
	"github.com/light-bringer/smt-console/internal/app/smt/queries/maintenance_summary"
	"github.com/light-bringer/smt-console/internal/app/smt/queries/reconcile_inventory"
	"github.com/light-bringer/smt-console/internal/app/smt/repo"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/edit_records"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/export_workbook"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/init_sheets"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/rebuild_inventory"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/record_daily_check"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/record_maintenance"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/record_production"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/sign_daily_check"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/update_inventory"
	"github.com/light-bringer/smt-console/internal/config"
	"github.com/light-bringer/smt-console/internal/console"
	"github.com/light-bringer/smt-console/internal/gateway"
	"github.com/light-bringer/smt-console/internal/pkg/cache"
	"github.com/light-bringer/smt-console/internal/pkg/clock"
	"github.com/light-bringer/smt-console/internal/store"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Logger  *zap.Logger
	Clock   clock.Clock
	Gateway *gateway.Gateway
	Store   *store.Store

	// Commands
	RecordProduction  *record_production.Interactor
	RecordMaintenance *record_maintenance.Interactor
	EditRecords       *edit_records.Interactor
	UpdateInventory   *update_inventory.Interactor
	RebuildInventory  *rebuild_inventory.Interactor
	RecordDailyCheck  *record_daily_check.Interactor
	SignDailyCheck    *sign_daily_check.Interactor
	InitSheets        *init_sheets.Interactor
	ExportWorkbook    *export_workbook.Interactor

	// Queries
	LoadTable          *load_table.Query
	ReconcileInventory *reconcile_inventory.Query
	DailyCheckSheet    *daily_check_sheet.Query
	MaintenanceSummary *maintenance_summary.Query

	// Console is the fail-closed facade over the operations above.
	Console *console.Console

	closers []func() error
}

// NewServiceOptions creates and wires up all application dependencies from
// configuration. The backend is connected lazily on first use.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// 1. Resolve time zone
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	// 2. Select backend
	var closers []func() error
	var connect gateway.Connector
	switch cfg.Backend {
	case config.BackendGoogle:
		creds, err := cfg.CredentialsJSON()
		if err != nil {
			return nil, err
		}
		connect = gateway.NewSheetsConnector(gateway.SheetsConfig{
			WorkbookName:  cfg.WorkbookName,
			SpreadsheetID: cfg.SpreadsheetID,
			Credentials:   creds,
		})
	case config.BackendXLSX:
		x, err := gateway.OpenXLSX(cfg.XLSXPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		closers = append(closers, x.Close)
		connect = gateway.Static(x)
	case config.BackendMemory:
		connect = gateway.Static(gateway.NewMemoryBackend())
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	opts := Wire(connect, cfg.CacheTTL(), clock.NewRealClock(loc), logger)
	opts.closers = closers
	logger.Info("services wired",
		zap.String("backend", cfg.Backend),
		zap.Duration("cache_ttl", cfg.CacheTTL()),
		zap.String("timezone", loc.String()))
	return opts, nil
}

// Wire builds the dependency graph over a connector. Tests call it with an
// in-memory backend and a mock clock.
func Wire(connect gateway.Connector, ttl time.Duration, clk clock.Clock, logger *zap.Logger) *ServiceOptions {
	if logger == nil {
		logger = zap.NewNop()
	}

	// 1. Create infrastructure components
	gw := gateway.New(connect, logger.Named("gateway"))
	st := store.New(gw, cache.New(ttl), logger.Named("store"))

	// 2. Create repositories
	productionRepo := repo.NewProductionRepository(st)
	maintenanceRepo := repo.NewMaintenanceRepository(st)
	inventoryRepo := repo.NewInventoryRepository(st)
	checkRepo := repo.NewCheckRepository(st)
	catalogRepo := repo.NewCatalogRepository(st)

	// 3. Create command use cases (write operations)
	recordProduction := record_production.NewInteractor(productionRepo, catalogRepo, clk)
	recordMaintenance := record_maintenance.NewInteractor(maintenanceRepo, catalogRepo, clk)
	editRecords := edit_records.NewInteractor(clk, productionRepo, maintenanceRepo)
	updateInventory := update_inventory.NewInteractor(inventoryRepo, catalogRepo, clk)
	rebuildInventory := rebuild_inventory.NewInteractor(inventoryRepo)
	recordDailyCheck := record_daily_check.NewInteractor(checkRepo, clk)
	signDailyCheck := sign_daily_check.NewInteractor(checkRepo, clk)
	initSheets := init_sheets.NewInteractor(st)
	exportWorkbook := export_workbook.NewInteractor(st)

	// 4. Create query use cases (read operations)
	loadTable := load_table.NewQuery(st)
	reconcileInventory := reconcile_inventory.NewQuery(inventoryRepo)
	dailyCheckSheet := daily_check_sheet.NewQuery(checkRepo, clk)
	maintenanceSummary := maintenance_summary.NewQuery(maintenanceRepo)

	// 5. Create the console facade
	con := console.New(
		st,
		loadTable,
		recordProduction,
		recordMaintenance,
		updateInventory,
		recordDailyCheck,
		signDailyCheck,
		logger.Named("console"),
	)

	return &ServiceOptions{
		Logger:             logger,
		Clock:              clk,
		Gateway:            gw,
		Store:              st,
		RecordProduction:   recordProduction,
		RecordMaintenance:  recordMaintenance,
		EditRecords:        editRecords,
		UpdateInventory:    updateInventory,
		RebuildInventory:   rebuildInventory,
		RecordDailyCheck:   recordDailyCheck,
		SignDailyCheck:     signDailyCheck,
		InitSheets:         initSheets,
		ExportWorkbook:     exportWorkbook,
		LoadTable:          loadTable,
		ReconcileInventory: reconcileInventory,
		DailyCheckSheet:    dailyCheckSheet,
		MaintenanceSummary: maintenanceSummary,
		Console:            con,
	}
}

// Available reports whether the backend session can be established.
func (s *ServiceOptions) Available(ctx context.Context) bool {
	_, err := s.Gateway.Session(ctx)
	return err == nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	for _, c := range s.closers {
		if err := c(); err != nil {
			s.Logger.Warn("failed to close resource", zap.Error(err))
		}
	}
}
