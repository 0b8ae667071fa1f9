// Package console is the API the operator UI calls.
//
// No operation returns an error. Reads return an empty, schema-shaped table
// when the backend cannot be reached; writes return false. The underlying
// cause is logged.
package console

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/app/smt/queries/load_table"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/record_daily_check"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/record_maintenance"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/record_production"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/sign_daily_check"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/update_inventory"
	"github.com/light-bringer/smt-console/internal/models"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// Console exposes the operator operations.
type Console struct {
	store       contracts.TableStore
	loadTable   *load_table.Query
	production  *record_production.Interactor
	maintenance *record_maintenance.Interactor
	inventory   *update_inventory.Interactor
	checks      *record_daily_check.Interactor
	signatures  *sign_daily_check.Interactor
	logger      *zap.Logger
}

// New creates a Console.
func New(
	store contracts.TableStore,
	loadTable *load_table.Query,
	production *record_production.Interactor,
	maintenance *record_maintenance.Interactor,
	inventory *update_inventory.Interactor,
	checks *record_daily_check.Interactor,
	signatures *sign_daily_check.Interactor,
	logger *zap.Logger,
) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		store:       store,
		loadTable:   loadTable,
		production:  production,
		maintenance: maintenance,
		inventory:   inventory,
		checks:      checks,
		signatures:  signatures,
		logger:      logger,
	}
}

// LoadTable reads a worksheet. A nil schema selects the declared one. On
// failure the empty table of the schema is returned.
func (c *Console) LoadTable(ctx context.Context, name string, schema table.Schema) *table.Table {
	t, err := c.loadTable.Execute(ctx, &load_table.Request{Name: name, Schema: schema})
	if err != nil {
		c.fail("load table", err, zap.String("worksheet", name))
		if t == nil {
			if schema == nil {
				schema, _ = models.Lookup(name)
			}
			t = table.Empty(schema)
		}
	}
	return t
}

// AppendProduction records one production event.
func (c *Console) AppendProduction(ctx context.Context, req *record_production.Request) bool {
	return c.ok("append production", c.production.Execute(ctx, req), zap.String("item_code", req.ItemCode))
}

// AppendMaintenance records one maintenance event.
func (c *Console) AppendMaintenance(ctx context.Context, req *record_maintenance.Request) bool {
	return c.ok("append maintenance", c.maintenance.Execute(ctx, req), zap.String("equip_id", req.EquipID))
}

// UpdateInventory applies a signed stock movement and appends it to the
// ledger. A partial write reports false; reconciliation recovers it.
func (c *Console) UpdateInventory(ctx context.Context, itemCode, itemName string, delta int64, reason, author string) bool {
	_, err := c.inventory.Execute(ctx, &update_inventory.Request{
		ItemCode: itemCode,
		ItemName: itemName,
		Delta:    delta,
		Reason:   reason,
		Author:   author,
	})
	if errors.Is(err, domain.ErrPartialWrite) {
		c.logger.Error("stock and ledger diverged, run reconciliation",
			zap.String("item_code", itemCode), zap.Int64("delta", delta), zap.Error(err))
		return false
	}
	return c.ok("update inventory", err, zap.String("item_code", itemCode))
}

// AppendCheckResults records a line's daily check results.
func (c *Console) AppendCheckResults(ctx context.Context, req *record_daily_check.Request) bool {
	_, err := c.checks.Execute(ctx, req)
	return c.ok("append check results", err, zap.String("line", req.Line), zap.Int("results", len(req.Results)))
}

// AppendSignature records a line leader signature.
func (c *Console) AppendSignature(ctx context.Context, req *sign_daily_check.Request) bool {
	return c.ok("append signature", c.signatures.Execute(ctx, req), zap.String("line", req.Line), zap.String("signer", req.Signer))
}

// ReplaceTable rewrites a worksheet with t (last writer wins).
func (c *Console) ReplaceTable(ctx context.Context, t *table.Table, name string) bool {
	return c.ok("replace table", c.store.SaveReplace(ctx, t, name), zap.String("worksheet", name))
}

// ClearCache drops every cached read.
func (c *Console) ClearCache() {
	c.store.Invalidate()
}

func (c *Console) ok(op string, err error, fields ...zap.Field) bool {
	if err != nil {
		c.fail(op, err, fields...)
		return false
	}
	return true
}

func (c *Console) fail(op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	c.logger.Warn(op+" failed", fields...)
}
