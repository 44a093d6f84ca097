package models

import "github.com/shopspring/decimal"

// POBucket: count and monetary value of purchase orders in one lifecycle
// state. Amount is a raw figure in millions PKR; the unit label is applied
// at render time only.
type POBucket struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// ProcurementSummary: purchase orders grouped by lifecycle state
type ProcurementSummary struct {
	Issued   POBucket `json:"issued"`
	Received POBucket `json:"received"`
	Pending  POBucket `json:"pending"`
}
