package models

// Snapshot: one point-in-time view of the supply chain across all six
// domains. Built once per reporting run and read-only afterwards; every
// downstream computation takes it as a parameter.
type Snapshot struct {
	Production  []ProductionRecord `json:"production"`
	Capacity    []CapacityRecord   `json:"capacity"`
	MrpOrders   []MrpOrder         `json:"mrp_orders"`
	Procurement ProcurementSummary `json:"procurement"`
	Imports     ImportStatus       `json:"imports"`
	Warehouse   WarehouseStatus    `json:"warehouse"`
}
