package models

type MrpStatus string

const (
	MrpComplete MrpStatus = "Complete" // material ordered and available
	MrpPending  MrpStatus = "Pending"  // ordered, not yet available
	MrpCritical MrpStatus = "Critical" // material unavailable
)

// MrpOrder: material availability for one production order.
// Status is supplied by planning and is the source of truth; the
// Ordered/Available flags are informational and not cross-checked.
type MrpOrder struct {
	Order     string    `json:"order"` // unique order identifier
	Ordered   bool      `json:"ordered"`
	Available bool      `json:"available"`
	Status    MrpStatus `json:"status"`
}
