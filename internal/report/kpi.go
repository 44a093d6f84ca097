package report

import (
	"supplychain-backend/internal/models"
)

// KPISet: the five derived dashboard scalars. Ratio fields are nil when
// their denominator is zero, which renders as "N/A" instead of a number.
type KPISet struct {
	ProductionEfficiencyPct *float64 `json:"production_efficiency_pct"`
	TotalVariance           int      `json:"total_variance"`
	AvgUtilizationPct       *float64 `json:"avg_utilization_pct"`
	POCompletionPct         *float64 `json:"po_completion_pct"`
	FGInventory             int      `json:"fg_inventory"`
}

// ComputeKPIs derives the headline metrics straight from the snapshot.
func ComputeKPIs(s *models.Snapshot) KPISet {
	var planned, actual, variance int
	for _, p := range s.Production {
		planned += p.PlannedQty
		actual += p.ActualQty
		variance += p.Variance
	}

	k := KPISet{
		TotalVariance: variance,
		FGInventory:   s.Warehouse.FGTotal,
	}

	if planned > 0 {
		eff := float64(actual) / float64(planned) * 100
		k.ProductionEfficiencyPct = &eff
	}
	if n := len(s.Capacity); n > 0 {
		sum := 0
		for _, c := range s.Capacity {
			sum += c.UtilizationPct
		}
		avg := float64(sum) / float64(n)
		k.AvgUtilizationPct = &avg
	}
	if issued := s.Procurement.Issued.Count; issued > 0 {
		rate := float64(s.Procurement.Received.Count) / float64(issued) * 100
		k.POCompletionPct = &rate
	}

	return k
}
