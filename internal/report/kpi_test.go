package report

import (
	"math"
	"testing"

	"supplychain-backend/internal/models"
	"supplychain-backend/internal/snapshot"
)

func almostEqual(got, want float64) bool {
	return math.Abs(got-want) < 0.05
}

func TestComputeKPIsDefaultSnapshot(t *testing.T) {
	k := ComputeKPIs(snapshot.Default())

	if k.ProductionEfficiencyPct == nil {
		t.Fatal("expected production efficiency, got nil")
	}
	if !almostEqual(*k.ProductionEfficiencyPct, 37.6) {
		t.Errorf("production efficiency = %.3f, want 37.6", *k.ProductionEfficiencyPct)
	}

	if k.TotalVariance != -5241 {
		t.Errorf("total variance = %d, want -5241", k.TotalVariance)
	}

	if k.AvgUtilizationPct == nil {
		t.Fatal("expected average utilization, got nil")
	}
	if !almostEqual(*k.AvgUtilizationPct, 24.7) {
		t.Errorf("average utilization = %.3f, want 24.7", *k.AvgUtilizationPct)
	}

	if k.POCompletionPct == nil {
		t.Fatal("expected PO completion rate, got nil")
	}
	if !almostEqual(*k.POCompletionPct, 60.9) {
		t.Errorf("PO completion rate = %.3f, want 60.9", *k.POCompletionPct)
	}

	if k.FGInventory != 2590 {
		t.Errorf("FG inventory = %d, want 2590", k.FGInventory)
	}
}

func TestComputeKPIsZeroDenominators(t *testing.T) {
	// No production, no departments, no issued POs: every ratio must be
	// absent rather than computed.
	k := ComputeKPIs(&models.Snapshot{
		Warehouse: models.WarehouseStatus{FGTotal: 120},
	})

	if k.ProductionEfficiencyPct != nil {
		t.Errorf("production efficiency should be nil, got %.3f", *k.ProductionEfficiencyPct)
	}
	if k.AvgUtilizationPct != nil {
		t.Errorf("average utilization should be nil, got %.3f", *k.AvgUtilizationPct)
	}
	if k.POCompletionPct != nil {
		t.Errorf("PO completion rate should be nil, got %.3f", *k.POCompletionPct)
	}
	if k.TotalVariance != 0 {
		t.Errorf("total variance = %d, want 0", k.TotalVariance)
	}
	if k.FGInventory != 120 {
		t.Errorf("FG inventory = %d, want 120", k.FGInventory)
	}
}

func TestComputeKPIsZeroPlannedWithActual(t *testing.T) {
	// Planned total of zero still guards the division even when actual
	// output exists.
	k := ComputeKPIs(&models.Snapshot{
		Production: []models.ProductionRecord{
			{Date: "10-Jun-2025", PlannedQty: 0, ActualQty: 50, Variance: 50, Reason: "Unplanned run"},
		},
	})
	if k.ProductionEfficiencyPct != nil {
		t.Errorf("production efficiency should be nil, got %.3f", *k.ProductionEfficiencyPct)
	}
	if k.TotalVariance != 50 {
		t.Errorf("total variance = %d, want 50", k.TotalVariance)
	}
}
