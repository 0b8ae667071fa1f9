package http

import (
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/app/smt/queries/daily_check_sheet"
	"github.com/light-bringer/smt-console/internal/app/smt/queries/maintenance_summary"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// ProductionRequest is the body of POST /production.
type ProductionRequest struct {
	Date     string `json:"date"`
	Kind     string `json:"kind"`
	ItemCode string `json:"item_code" binding:"required"`
	ItemName string `json:"item_name"`
	Quantity int64  `json:"quantity"`
	Author   string `json:"author" binding:"required"`
}

// MaintenanceRequest is the body of POST /maintenance. Cost and downtime
// are free text.
type MaintenanceRequest struct {
	Date          string `json:"date"`
	EquipID       string `json:"equip_id" binding:"required"`
	EquipName     string `json:"equip_name"`
	WorkKind      string `json:"work_kind"`
	Description   string `json:"description"`
	ReplacedParts string `json:"replaced_parts"`
	Cost          string `json:"cost"`
	Worker        string `json:"worker"`
	Downtime      string `json:"downtime"`
	Author        string `json:"author" binding:"required"`
}

// MovementRequest is the body of POST /inventory/movements.
type MovementRequest struct {
	ItemCode string `json:"item_code" binding:"required"`
	ItemName string `json:"item_name"`
	Delta    int64  `json:"delta"`
	Reason   string `json:"reason"`
	Author   string `json:"author" binding:"required"`
}

// MovementResponse reports the stock after a movement.
type MovementResponse struct {
	OK        bool   `json:"ok"`
	ItemCode  string `json:"item_code"`
	NewStock  int64  `json:"new_stock"`
	Direction string `json:"direction"`
}

// CheckResultsRequest is the body of POST /checks/:line/results.
type CheckResultsRequest struct {
	Date    string            `json:"date"`
	Checker string            `json:"checker"`
	Results []CheckResultItem `json:"results" binding:"required"`
}

// CheckResultItem is one observed item.
type CheckResultItem struct {
	EquipID  string `json:"equip_id"`
	ItemName string `json:"item_name"`
	Value    string `json:"value"`
	OX       string `json:"ox"`
	Checker  string `json:"checker"`
}

// SignatureRequest is the body of POST /checks/:line/signatures.
type SignatureRequest struct {
	Date          string `json:"date"`
	Signer        string `json:"signer" binding:"required"`
	SignatureData string `json:"signature_data" binding:"required"`
}

// EditTableRequest is the body of PUT /tables/:name.
type EditTableRequest struct {
	Editor  string      `json:"editor" binding:"required"`
	Columns []string    `json:"columns"`
	Rows    []table.Row `json:"rows"`
}

// OKResponse is the body of write endpoints.
type OKResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Changed *int   `json:"changed,omitempty"`
}

// CheckRow is one item of a daily check sheet.
type CheckRow struct {
	EquipID   string   `json:"equip_id"`
	EquipName string   `json:"equip_name"`
	ItemName  string   `json:"item_name"`
	Content   string   `json:"check_content"`
	Standard  string   `json:"standard"`
	CheckType string   `json:"check_type"`
	Min       *float64 `json:"min_val"`
	Max       *float64 `json:"max_val"`
	Unit      string   `json:"unit"`
	Value     string   `json:"value"`
	OX        string   `json:"ox"`
	Checker   string   `json:"checker"`
	Timestamp string   `json:"timestamp"`
}

// SignatureDTO is the current signature of a signer.
type SignatureDTO struct {
	Signer        string `json:"signer"`
	SignatureData string `json:"signature_data"`
	Timestamp     string `json:"timestamp"`
}

// CheckSheetResponse is the body of GET /checks/:line/sheet.
type CheckSheetResponse struct {
	Date       string         `json:"date"`
	Line       string         `json:"line"`
	Complete   bool           `json:"complete"`
	Checked    int            `json:"checked"`
	NG         int            `json:"ng"`
	Items      []CheckRow     `json:"items"`
	Unlisted   []CheckRow     `json:"unlisted"`
	Signatures []SignatureDTO `json:"signatures"`
}

// DivergenceDTO is one inconsistent item.
type DivergenceDTO struct {
	ItemCode   string `json:"item_code"`
	ItemName   string `json:"item_name"`
	StateStock int64  `json:"state_stock"`
	HistorySum int64  `json:"history_sum"`
	Delta      int64  `json:"delta"`
	HasState   bool   `json:"has_state"`
	HasHistory bool   `json:"has_history"`
}

// MislabelDTO is a ledger row whose direction label disagrees with its delta.
type MislabelDTO struct {
	Row      int    `json:"row"`
	ItemCode string `json:"item_code"`
	Label    string `json:"label"`
	Delta    int64  `json:"delta"`
	Known    bool   `json:"known_label"`
	Expected string `json:"expected"`
}

// ReconciliationResponse is the body of GET /inventory/reconciliation.
type ReconciliationResponse struct {
	Consistent   bool            `json:"consistent"`
	ItemsChecked int             `json:"items_checked"`
	Divergences  []DivergenceDTO `json:"divergences"`
	Mislabeled   []MislabelDTO   `json:"mislabeled"`
}

// EquipmentSummaryDTO is the maintenance total of one equipment.
type EquipmentSummaryDTO struct {
	EquipID         string  `json:"equip_id"`
	EquipName       string  `json:"equip_name"`
	Events          int     `json:"events"`
	TotalCost       string  `json:"total_cost"`
	DowntimeMinutes float64 `json:"downtime_minutes"`
}

// MaintenanceSummaryResponse is the body of GET /maintenance/summary.
type MaintenanceSummaryResponse struct {
	Events    int                   `json:"events"`
	TotalCost string                `json:"total_cost"`
	Equipment []EquipmentSummaryDTO `json:"equipment"`
}

func toCheckSheetResponse(s *daily_check_sheet.Sheet) *CheckSheetResponse {
	resp := &CheckSheetResponse{
		Date:       s.Date,
		Line:       s.Line,
		Complete:   s.Complete(),
		Checked:    s.Checked,
		NG:         s.NG,
		Items:      make([]CheckRow, 0, len(s.Rows)),
		Unlisted:   make([]CheckRow, 0, len(s.Unlisted)),
		Signatures: make([]SignatureDTO, 0, len(s.Signatures)),
	}
	for _, r := range s.Rows {
		row := CheckRow{
			EquipID:   r.Item.EquipID,
			EquipName: r.Item.EquipName,
			ItemName:  r.Item.ItemName,
			Content:   r.Item.Content,
			Standard:  r.Item.Standard,
			CheckType: string(r.Item.Type),
			Min:       r.Item.Min,
			Max:       r.Item.Max,
			Unit:      r.Item.Unit,
		}
		if r.Result != nil {
			fillResult(&row, *r.Result)
		}
		resp.Items = append(resp.Items, row)
	}
	for _, res := range s.Unlisted {
		row := CheckRow{EquipID: res.EquipID, ItemName: res.ItemName}
		fillResult(&row, res)
		resp.Unlisted = append(resp.Unlisted, row)
	}
	for _, sig := range s.Signatures {
		resp.Signatures = append(resp.Signatures, SignatureDTO{
			Signer:        sig.Signer,
			SignatureData: sig.Data,
			Timestamp:     sig.Timestamp,
		})
	}
	return resp
}

func fillResult(row *CheckRow, res domain.CheckResult) {
	row.Value = res.Value
	row.OX = string(res.OX)
	row.Checker = res.Checker
	row.Timestamp = res.Timestamp
}

func toReconciliationResponse(r *domain.Reconciliation) *ReconciliationResponse {
	resp := &ReconciliationResponse{
		Consistent:   r.Consistent(),
		ItemsChecked: r.ItemsChecked,
		Divergences:  make([]DivergenceDTO, 0, len(r.Divergences)),
		Mislabeled:   make([]MislabelDTO, 0, len(r.Mislabeled)),
	}
	for _, m := range r.Mislabeled {
		resp.Mislabeled = append(resp.Mislabeled, MislabelDTO{
			Row:      m.Row,
			ItemCode: m.ItemCode,
			Label:    m.Label,
			Delta:    m.Delta,
			Known:    m.Known,
			Expected: m.Expected.English(),
		})
	}
	for _, d := range r.Divergences {
		resp.Divergences = append(resp.Divergences, DivergenceDTO{
			ItemCode:   d.ItemCode,
			ItemName:   d.ItemName,
			StateStock: d.StateStock,
			HistorySum: d.HistorySum,
			Delta:      d.Delta(),
			HasState:   d.HasState,
			HasHistory: d.HasHistory,
		})
	}
	return resp
}

func toMaintenanceSummaryResponse(s *maintenance_summary.Summary) *MaintenanceSummaryResponse {
	resp := &MaintenanceSummaryResponse{
		Events:    s.Events,
		TotalCost: s.TotalCost.String(),
		Equipment: make([]EquipmentSummaryDTO, 0, len(s.Equipment)),
	}
	for _, e := range s.Equipment {
		resp.Equipment = append(resp.Equipment, EquipmentSummaryDTO{
			EquipID:         e.EquipID,
			EquipName:       e.EquipName,
			Events:          e.Events,
			TotalCost:       e.TotalCost.String(),
			DowntimeMinutes: e.DowntimeMinutes,
		})
	}
	return resp
}
