package snapshot

import (
	"fmt"
	"time"

	"supplychain-backend/internal/models"
)

// RecordError: a snapshot record that violates a data-model invariant.
// Domain names the offending table, Ref the record within it.
type RecordError struct {
	Domain string
	Ref    string
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("malformed %s record %q: %s", e.Domain, e.Ref, e.Reason)
}

// Validate checks every invariant the data model states. It returns the
// first violation as a *RecordError; a snapshot that fails here must not
// reach the classifier or the exporters.
func Validate(s *models.Snapshot) error {
	for _, p := range s.Production {
		if p.Date == "" {
			return &RecordError{Domain: "production", Ref: p.Date, Reason: "date is empty"}
		}
		if _, err := time.Parse("2-Jan-2006", p.Date); err != nil {
			return &RecordError{Domain: "production", Ref: p.Date, Reason: "date is not a valid day label"}
		}
		if p.PlannedQty < 0 {
			return &RecordError{Domain: "production", Ref: p.Date, Reason: "planned quantity is negative"}
		}
		if p.ActualQty < 0 {
			return &RecordError{Domain: "production", Ref: p.Date, Reason: "actual quantity is negative"}
		}
		if p.Variance != p.ActualQty-p.PlannedQty {
			return &RecordError{Domain: "production", Ref: p.Date, Reason: "variance does not equal actual minus planned"}
		}
	}

	seenDepts := make(map[string]bool, len(s.Capacity))
	for _, c := range s.Capacity {
		if c.Department == "" {
			return &RecordError{Domain: "capacity", Ref: c.Department, Reason: "department name is empty"}
		}
		if seenDepts[c.Department] {
			return &RecordError{Domain: "capacity", Ref: c.Department, Reason: "duplicate department"}
		}
		seenDepts[c.Department] = true
		if c.Capacity <= 0 {
			return &RecordError{Domain: "capacity", Ref: c.Department, Reason: "capacity must be positive"}
		}
	}

	seenOrders := make(map[string]bool, len(s.MrpOrders))
	for _, o := range s.MrpOrders {
		if o.Order == "" {
			return &RecordError{Domain: "mrp", Ref: o.Order, Reason: "order identifier is empty"}
		}
		if seenOrders[o.Order] {
			return &RecordError{Domain: "mrp", Ref: o.Order, Reason: "duplicate order identifier"}
		}
		seenOrders[o.Order] = true
		switch o.Status {
		case models.MrpComplete, models.MrpPending, models.MrpCritical:
		default:
			return &RecordError{Domain: "mrp", Ref: o.Order, Reason: "unknown status " + string(o.Status)}
		}
	}

	for _, b := range []struct {
		name   string
		bucket models.POBucket
	}{
		{"Issued", s.Procurement.Issued},
		{"Received", s.Procurement.Received},
		{"Pending", s.Procurement.Pending},
	} {
		if b.bucket.Count < 0 {
			return &RecordError{Domain: "procurement", Ref: b.name, Reason: "count is negative"}
		}
		if b.bucket.Amount.IsNegative() {
			return &RecordError{Domain: "procurement", Ref: b.name, Reason: "amount is negative"}
		}
	}

	if err := validateImports(&s.Imports); err != nil {
		return err
	}
	return validateWarehouse(&s.Warehouse)
}

func validateImports(im *models.ImportStatus) error {
	if im.PI.Total < 0 || im.PI.Received < 0 || im.PI.Approved < 0 || im.PI.Pending < 0 {
		return &RecordError{Domain: "imports", Ref: "PI", Reason: "document count is negative"}
	}
	if im.Payment.Done < 0 || im.Payment.Pending < 0 || im.Payment.Total < 0 {
		return &RecordError{Domain: "imports", Ref: "Payment", Reason: "payment count is negative"}
	}
	for _, sh := range im.Shipments {
		if sh.Month == "" {
			return &RecordError{Domain: "imports", Ref: sh.Month, Reason: "shipment month is empty"}
		}
		if sh.Count < 0 {
			return &RecordError{Domain: "imports", Ref: sh.Month, Reason: "shipment count is negative"}
		}
	}
	return nil
}

func validateWarehouse(w *models.WarehouseStatus) error {
	sum := 0
	for _, b := range w.FGStock {
		if b.Brand == "" {
			return &RecordError{Domain: "warehouse", Ref: b.Brand, Reason: "brand name is empty"}
		}
		if b.Pairs < 0 {
			return &RecordError{Domain: "warehouse", Ref: b.Brand, Reason: "stock is negative"}
		}
		sum += b.Pairs
	}
	if w.FGTotal != sum {
		return &RecordError{Domain: "warehouse", Ref: "Total", Reason: "FG total does not equal sum of brand stock"}
	}
	if w.GRN.Total < 0 || w.GRN.Done < 0 || w.GRN.Pending < 0 {
		return &RecordError{Domain: "warehouse", Ref: "GRN", Reason: "GRN count is negative"}
	}
	return nil
}
