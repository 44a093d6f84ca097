package snapshot

import (
	"github.com/shopspring/decimal"

	"supplychain-backend/internal/models"
)

// Default returns the compiled-in reporting snapshot, the June 2025
// figures from the factory planning sheets. It stands in until a
// SNAPSHOT_PATH file is supplied.
func Default() *models.Snapshot {
	return &models.Snapshot{
		Production: []models.ProductionRecord{
			{Date: "10-Jun-2025", PlannedQty: 800, ActualQty: 936, Variance: 136, Reason: "2 Lines loading"},
			{Date: "11-Jun-2025", PlannedQty: 800, ActualQty: 1180, Variance: 380, Reason: "2 Lines loading/material issue"},
			{Date: "12-Jun-2025", PlannedQty: 800, ActualQty: 650, Variance: -150, Reason: "Loading end/feeding issue"},
			{Date: "13-Jun-2025", PlannedQty: 2000, ActualQty: 0, Variance: -2000, Reason: "FEEDING ISSUE FROM CUTTING"},
			{Date: "14-Jun-2025", PlannedQty: 2000, ActualQty: 0, Variance: -2000, Reason: "FEEDING ISSUE FROM CUTTING"},
			{Date: "16-Jun-2025", PlannedQty: 2000, ActualQty: 393, Variance: -1607, Reason: "FEEDING ISSUE FROM CUTTING"},
		},
		Capacity: []models.CapacityRecord{
			{Department: "Cutting", Capacity: 3000, PlannedLoad: 1823, ActualProd: 1800, UtilizationPct: 60, MonthToDate: 8763},
			{Department: "Stitching", Capacity: 2788, PlannedLoad: 0, ActualProd: 393, UtilizationPct: 14, MonthToDate: 7974},
			{Department: "Lasting", Capacity: 3462, PlannedLoad: 0, ActualProd: 0, UtilizationPct: 0, MonthToDate: 12100},
		},
		MrpOrders: []models.MrpOrder{
			{Order: "673", Ordered: true, Available: true, Status: models.MrpComplete},
			{Order: "675", Ordered: true, Available: true, Status: models.MrpComplete},
			{Order: "677", Ordered: true, Available: true, Status: models.MrpComplete},
			{Order: "679", Ordered: false, Available: false, Status: models.MrpCritical},
			{Order: "680", Ordered: true, Available: false, Status: models.MrpPending},
			{Order: "681", Ordered: false, Available: false, Status: models.MrpCritical},
		},
		Procurement: models.ProcurementSummary{
			Issued:   models.POBucket{Count: 92, Amount: decimal.NewFromFloat(114.77)},
			Received: models.POBucket{Count: 56, Amount: decimal.NewFromFloat(96.84)},
			Pending:  models.POBucket{Count: 36, Amount: decimal.NewFromFloat(17.93)},
		},
		Imports: models.ImportStatus{
			PI:      models.PreImportDocs{Total: 12, Received: 12, Approved: 12, Pending: 0},
			Payment: models.PaymentStatus{Done: 3, Pending: 4, Total: 7},
			Shipments: []models.MonthlyShipments{
				{Month: "May", Count: 1},
				{Month: "June", Count: 8},
				{Month: "July", Count: 1},
			},
		},
		Warehouse: models.WarehouseStatus{
			FGStock: []models.BrandStock{
				{Brand: "Elten", Pairs: 1090},
				{Brand: "Bata", Pairs: 0},
				{Brand: "S-Step", Pairs: 1500},
			},
			FGTotal: 2590,
			GRN:     models.GRNStatus{Total: 4, Done: 4, Pending: 0},
		},
	}
}
