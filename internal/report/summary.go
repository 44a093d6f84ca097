package report

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"supplychain-backend/internal/analysis"
	"supplychain-backend/internal/models"
)

const reportDateLayout = "02-Jan-2006 15:04"

var npr = message.NewPrinter(language.English)

// RenderSummary produces the executive summary as structured markdown
// text. It is a pure function of the snapshot, the classified issues and
// the supplied clock value; callers pass time.Now() in production and a
// fixed time in tests.
func RenderSummary(s *models.Snapshot, issues []analysis.Issue, now time.Time) string {
	critical := analysis.Messages(issues, analysis.SeverityCritical)
	high := analysis.Messages(issues, analysis.SeverityHigh)
	kpis := ComputeKPIs(s)

	var b strings.Builder
	b.WriteString("# SUPPLY CHAIN EXECUTIVE SUMMARY\n")
	fmt.Fprintf(&b, "**Report Date:** %s\n", now.Format(reportDateLayout))

	fmt.Fprintf(&b, "\n## CRITICAL ALERTS (%d)\n", len(critical))
	for _, m := range critical {
		fmt.Fprintf(&b, "- %s\n", m)
	}

	fmt.Fprintf(&b, "\n## HIGH PRIORITY (%d)\n", len(high))
	for _, m := range high {
		fmt.Fprintf(&b, "- %s\n", m)
	}

	b.WriteString("\n## KEY METRICS\n")
	fmt.Fprintf(&b, "- **Production Efficiency:** %s\n", fmtPct(kpis.ProductionEfficiencyPct))
	fmt.Fprintf(&b, "- **Total Production Variance:** %s units\n", npr.Sprintf("%d", kpis.TotalVariance))
	fmt.Fprintf(&b, "- **Average Capacity Utilization:** %s\n", fmtPct(kpis.AvgUtilizationPct))
	fmt.Fprintf(&b, "- **PO Completion Rate:** %s\n", fmtPct(kpis.POCompletionPct))
	fmt.Fprintf(&b, "- **Total FG Inventory:** %s pairs\n", npr.Sprintf("%d", kpis.FGInventory))

	b.WriteString("\n## RECOMMENDATIONS\n")
	b.WriteString("1. **URGENT:** Address feeding issues from cutting department\n")
	b.WriteString("2. **HIGH:** Increase stitching and lasting capacity utilization\n")
	b.WriteString("3. **MEDIUM:** Expedite pending material orders (679, 681)\n")
	fmt.Fprintf(&b, "4. **MEDIUM:** Follow up on %d pending POs worth PKR %sM\n",
		s.Procurement.Pending.Count, s.Procurement.Pending.Amount.String())

	return b.String()
}

// fmtPct renders a guarded ratio, falling back to N/A when the
// denominator was zero.
func fmtPct(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", *v)
}
