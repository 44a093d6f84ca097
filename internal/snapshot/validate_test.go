package snapshot

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"supplychain-backend/internal/models"
)

func TestValidateDefaultSnapshot(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("compiled-in snapshot failed validation: %v", err)
	}
}

func assertRecordError(t *testing.T, err error, domain string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected a validation error, got nil")
	}
	var re *RecordError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RecordError, got %T: %v", err, err)
	}
	if re.Domain != domain {
		t.Fatalf("expected %s domain error, got %q (%v)", domain, re.Domain, re)
	}
}

func TestValidateVarianceMismatch(t *testing.T) {
	s := Default()
	s.Production[0].Variance = 999
	assertRecordError(t, Validate(s), "production")
}

func TestValidateBadDateLabel(t *testing.T) {
	s := Default()
	s.Production[0].Date = "June 10th"
	assertRecordError(t, Validate(s), "production")
}

func TestValidateNegativeQuantity(t *testing.T) {
	s := Default()
	s.Production[2].ActualQty = -650
	assertRecordError(t, Validate(s), "production")
}

func TestValidateDuplicateDepartment(t *testing.T) {
	s := Default()
	s.Capacity[1].Department = "Cutting"
	assertRecordError(t, Validate(s), "capacity")
}

func TestValidateNonPositiveCapacity(t *testing.T) {
	s := Default()
	s.Capacity[0].Capacity = 0
	assertRecordError(t, Validate(s), "capacity")
}

func TestValidateDuplicateOrder(t *testing.T) {
	s := Default()
	s.MrpOrders[1].Order = "673"
	assertRecordError(t, Validate(s), "mrp")
}

func TestValidateUnknownMrpStatus(t *testing.T) {
	s := Default()
	s.MrpOrders[0].Status = "Stalled"
	assertRecordError(t, Validate(s), "mrp")
}

func TestValidateNegativePOFields(t *testing.T) {
	s := Default()
	s.Procurement.Pending.Count = -1
	assertRecordError(t, Validate(s), "procurement")

	s = Default()
	s.Procurement.Issued.Amount = decimal.NewFromFloat(-114.77)
	assertRecordError(t, Validate(s), "procurement")
}

func TestValidateNegativeImportCounts(t *testing.T) {
	s := Default()
	s.Imports.Payment.Pending = -4
	assertRecordError(t, Validate(s), "imports")
}

func TestValidateFGTotalMismatch(t *testing.T) {
	s := Default()
	s.Warehouse.FGTotal = 9999
	assertRecordError(t, Validate(s), "warehouse")
}

func TestValidateNegativeBrandStock(t *testing.T) {
	s := Default()
	s.Warehouse.FGStock[0].Pairs = -1
	s.Warehouse.FGTotal = 1499
	assertRecordError(t, Validate(s), "warehouse")
}

func TestValidateEmptySnapshot(t *testing.T) {
	// An empty snapshot violates nothing; the classifier and KPI guards
	// handle the zero denominators it implies.
	if err := Validate(&models.Snapshot{}); err != nil {
		t.Fatalf("empty snapshot should validate, got %v", err)
	}
}

func TestRecordErrorMessage(t *testing.T) {
	err := &RecordError{Domain: "production", Ref: "13-Jun-2025", Reason: "variance does not equal actual minus planned"}
	want := `malformed production record "13-Jun-2025": variance does not equal actual minus planned`
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}
