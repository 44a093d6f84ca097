package models

// ProductionRecord: one day of plan-vs-actual factory output
type ProductionRecord struct {
	Date       string `json:"date"`        // day label, e.g. "10-Jun-2025"
	PlannedQty int    `json:"planned_qty"` // pairs planned
	ActualQty  int    `json:"actual_qty"`  // pairs produced
	Variance   int    `json:"variance"`    // actual - planned
	Reason     string `json:"reason"`      // free-text shortfall/overrun note
}
