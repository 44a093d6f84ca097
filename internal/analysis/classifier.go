package analysis

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"supplychain-backend/internal/models"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
)

// Issue: one threshold violation found in a snapshot. The severity lives
// in the tag, never in the message text.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Alerting thresholds agreed with the planning team. Fixed on purpose;
// there is no configuration surface for them.
const (
	varianceCriticalFloor  = -3000 // summed production variance below this is critical
	feedingIssueMinDays    = 3     // days of cutting feed failures before escalation
	utilizationCriticalPct = 20
	utilizationLowPct      = 40
	pendingRatioThreshold  = 0.3 // pending vs issued POs, strict >
)

// feedingIssueMarker is matched case-sensitively, the way the planning
// sheets spell it.
const feedingIssueMarker = "FEEDING ISSUE"

var npr = message.NewPrinter(language.English)

// Classify evaluates the fixed threshold rules against a snapshot and
// returns the violations in rule order: production, capacity, MRP,
// procurement. The snapshot is never mutated, so repeated calls yield
// identical sequences.
func Classify(s *models.Snapshot) []Issue {
	var issues []Issue

	totalVariance := 0
	feedingDays := 0
	for _, p := range s.Production {
		totalVariance += p.Variance
		if strings.Contains(p.Reason, feedingIssueMarker) {
			feedingDays++
		}
	}
	if totalVariance < varianceCriticalFloor {
		issues = append(issues, Issue{
			Severity: SeverityCritical,
			Message:  npr.Sprintf("Production shortfall of %d units", -totalVariance),
		})
	}
	if feedingDays >= feedingIssueMinDays {
		issues = append(issues, Issue{
			Severity: SeverityCritical,
			Message:  fmt.Sprintf("%d days of feeding issues from cutting", feedingDays),
		})
	}

	for _, c := range s.Capacity {
		if c.UtilizationPct < utilizationCriticalPct {
			issues = append(issues, Issue{
				Severity: SeverityCritical,
				Message:  fmt.Sprintf("%s capacity at %d%%", c.Department, c.UtilizationPct),
			})
		} else if c.UtilizationPct < utilizationLowPct {
			issues = append(issues, Issue{
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("%s underutilized at %d%%", c.Department, c.UtilizationPct),
			})
		}
	}

	criticalOrders := 0
	for _, o := range s.MrpOrders {
		if o.Status == models.MrpCritical {
			criticalOrders++
		}
	}
	if criticalOrders > 0 {
		issues = append(issues, Issue{
			Severity: SeverityHigh,
			Message:  fmt.Sprintf("%d orders with material unavailability", criticalOrders),
		})
	}

	// A snapshot with no issued POs has no pending ratio to speak of.
	if issued := s.Procurement.Issued.Count; issued > 0 {
		ratio := float64(s.Procurement.Pending.Count) / float64(issued)
		if ratio > pendingRatioThreshold {
			issues = append(issues, Issue{
				Severity: SeverityMedium,
				Message:  fmt.Sprintf("%.1f%% of POs pending", ratio*100),
			})
		}
	}

	return issues
}

// Messages filters the issue sequence down to the message texts of one
// severity, preserving classification order.
func Messages(issues []Issue, sev Severity) []string {
	var out []string
	for _, is := range issues {
		if is.Severity == sev {
			out = append(out, is.Message)
		}
	}
	return out
}
