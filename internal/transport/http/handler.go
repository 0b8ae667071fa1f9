// Package http exposes the console operations as a JSON API for the line UI.
package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/app/smt/queries/daily_check_sheet"
	"github.com/light-bringer/smt-console/internal/app/smt/queries/load_table"
	"github.com/light-bringer/smt-console/internal/app/smt/queries/maintenance_summary"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/edit_records"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/record_daily_check"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/record_maintenance"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/record_production"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/sign_daily_check"
	"github.com/light-bringer/smt-console/internal/app/smt/usecases/update_inventory"
	"github.com/light-bringer/smt-console/internal/pkg/table"
	"github.com/light-bringer/smt-console/internal/services"
)

// Handler serves the console API.
type Handler struct {
	svc *services.ServiceOptions
}

// NewHandler creates a new console API handler.
func NewHandler(svc *services.ServiceOptions) *Handler {
	return &Handler{svc: svc}
}

// Health reports 200 when the spreadsheet backend can be reached.
func (h *Handler) Health(c *gin.Context) {
	if !h.svc.Available(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetTable returns a worksheet, optionally paged with ?offset= and ?limit=.
// On a backend failure the body still carries the declared columns with no rows.
func (h *Handler) GetTable(c *gin.Context) {
	offset, okOffset := pageParam(c, "offset")
	limit, okLimit := pageParam(c, "limit")
	if !okOffset || !okLimit {
		c.JSON(http.StatusBadRequest, OKResponse{OK: false, Error: domain.ErrInvalidPage.Error()})
		return
	}

	t, err := h.svc.LoadTable.Execute(c.Request.Context(), &load_table.Request{Name: c.Param("name"), Offset: offset, Limit: limit})
	if err != nil {
		_ = c.Error(err)
		code, msg := mapErrorToHTTP(err)
		c.JSON(code, gin.H{"ok": false, "error": msg, "table": t})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "table": t})
}

// pageParam reads an optional non-negative integer query parameter.
func pageParam(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// PutTable replaces an editable worksheet with an edited copy.
func (h *Handler) PutTable(c *gin.Context) {
	var req EditTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, OKResponse{OK: false, Error: err.Error()})
		return
	}

	edited := table.New(req.Columns...)
	for _, r := range req.Rows {
		edited.AppendRow(r)
	}

	resp, err := h.svc.EditRecords.Execute(c.Request.Context(), &edit_records.Request{
		Sheet:  c.Param("name"),
		Table:  edited,
		Editor: req.Editor,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	changed := resp.Changed
	c.JSON(http.StatusOK, OKResponse{OK: true, Changed: &changed})
}

// CreateProduction appends a production record.
func (h *Handler) CreateProduction(c *gin.Context) {
	var req ProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, OKResponse{OK: false, Error: err.Error()})
		return
	}

	err := h.svc.RecordProduction.Execute(c.Request.Context(), &record_production.Request{
		Date:     req.Date,
		Kind:     req.Kind,
		ItemCode: req.ItemCode,
		ItemName: req.ItemName,
		Quantity: req.Quantity,
		Author:   req.Author,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, OKResponse{OK: true})
}

// CreateMaintenance appends a maintenance event.
func (h *Handler) CreateMaintenance(c *gin.Context) {
	var req MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, OKResponse{OK: false, Error: err.Error()})
		return
	}

	err := h.svc.RecordMaintenance.Execute(c.Request.Context(), &record_maintenance.Request{
		Date:          req.Date,
		EquipID:       req.EquipID,
		EquipName:     req.EquipName,
		WorkKind:      req.WorkKind,
		Description:   req.Description,
		ReplacedParts: req.ReplacedParts,
		Cost:          req.Cost,
		Worker:        req.Worker,
		Downtime:      req.Downtime,
		Author:        req.Author,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, OKResponse{OK: true})
}

// CreateMovement applies a stock delta and records it in the ledger.
func (h *Handler) CreateMovement(c *gin.Context) {
	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, OKResponse{OK: false, Error: err.Error()})
		return
	}

	resp, err := h.svc.UpdateInventory.Execute(c.Request.Context(), &update_inventory.Request{
		ItemCode: req.ItemCode,
		ItemName: req.ItemName,
		Delta:    req.Delta,
		Reason:   req.Reason,
		Author:   req.Author,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MovementResponse{
		OK:        true,
		ItemCode:  resp.ItemCode,
		NewStock:  resp.NewStock,
		Direction: string(resp.Direction),
	})
}

// CreateCheckResults appends daily check results for a line.
func (h *Handler) CreateCheckResults(c *gin.Context) {
	var req CheckResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, OKResponse{OK: false, Error: err.Error()})
		return
	}

	results := make([]record_daily_check.Result, 0, len(req.Results))
	for _, r := range req.Results {
		results = append(results, record_daily_check.Result{
			EquipID:  r.EquipID,
			ItemName: r.ItemName,
			Value:    r.Value,
			OX:       r.OX,
			Checker:  r.Checker,
		})
	}

	resp, err := h.svc.RecordDailyCheck.Execute(c.Request.Context(), &record_daily_check.Request{
		Date:    req.Date,
		Line:    c.Param("line"),
		Checker: req.Checker,
		Results: results,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "appended": resp.Appended, "timestamp": resp.Timestamp})
}

// CreateSignature records a signer's signature for a line and date.
func (h *Handler) CreateSignature(c *gin.Context) {
	var req SignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, OKResponse{OK: false, Error: err.Error()})
		return
	}

	err := h.svc.SignDailyCheck.Execute(c.Request.Context(), &sign_daily_check.Request{
		Date:   req.Date,
		Line:   c.Param("line"),
		Signer: req.Signer,
		Data:   req.SignatureData,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, OKResponse{OK: true})
}

// GetCheckSheet returns the daily check sheet of a line. date defaults to today.
func (h *Handler) GetCheckSheet(c *gin.Context) {
	sheet, err := h.svc.DailyCheckSheet.Execute(c.Request.Context(), &daily_check_sheet.Request{
		Date: c.Query("date"),
		Line: c.Param("line"),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCheckSheetResponse(sheet))
}

// GetReconciliation compares stock levels against the movement ledger.
func (h *Handler) GetReconciliation(c *gin.Context) {
	r, err := h.svc.ReconcileInventory.Execute(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReconciliationResponse(r))
}

// GetMaintenanceSummary totals maintenance cost and downtime per equipment.
func (h *Handler) GetMaintenanceSummary(c *gin.Context) {
	s, err := h.svc.MaintenanceSummary.Execute(c.Request.Context(), &maintenance_summary.Request{
		From: c.Query("from"),
		To:   c.Query("to"),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMaintenanceSummaryResponse(s))
}

// ClearCache drops every cached worksheet read.
func (h *Handler) ClearCache(c *gin.Context) {
	h.svc.Console.ClearCache()
	c.JSON(http.StatusOK, OKResponse{OK: true})
}
