package models

// BrandStock: finished-goods pairs held for one brand
type BrandStock struct {
	Brand string `json:"brand"`
	Pairs int    `json:"pairs"`
}

// GRNStatus: goods-received-note processing counts
type GRNStatus struct {
	Total   int `json:"total"`
	Done    int `json:"done"`
	Pending int `json:"pending"`
}

// WarehouseStatus: finished-goods inventory and GRN backlog
type WarehouseStatus struct {
	FGStock []BrandStock `json:"fg_stock"`
	FGTotal int          `json:"fg_total"` // stored total, validated against FGStock
	GRN     GRNStatus    `json:"grn"`
}
