package models

// PreImportDocs: proforma invoice document counts for inbound material
type PreImportDocs struct {
	Total    int `json:"total"`
	Received int `json:"received"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
}

// PaymentStatus: import payment progress counts
type PaymentStatus struct {
	Done    int `json:"done"`
	Pending int `json:"pending"`
	Total   int `json:"total"`
}

// MonthlyShipments: expected inbound shipments for one month
type MonthlyShipments struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// ImportStatus: inbound material pipeline for the snapshot period
type ImportStatus struct {
	PI        PreImportDocs      `json:"pi"`
	Payment   PaymentStatus      `json:"payment"`
	Shipments []MonthlyShipments `json:"shipments"`
}
