package models

// CapacityRecord: utilization figures for one production department
type CapacityRecord struct {
	Department     string `json:"department"`      // unique within a snapshot
	Capacity       int    `json:"capacity"`        // daily capacity in pairs
	PlannedLoad    int    `json:"planned_load"`    // pairs scheduled
	ActualProd     int    `json:"actual_prod"`     // pairs produced
	UtilizationPct int    `json:"utilization_pct"` // unclamped percentage
	MonthToDate    int    `json:"month_to_date"`   // cumulative pairs this month
}
