package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"supplychain-backend/internal/analysis"
	"supplychain-backend/internal/models"
	"supplychain-backend/internal/report"
)

type IssueGroups struct {
	Critical []string `json:"critical"`
	High     []string `json:"high"`
	Medium   []string `json:"medium"`
}

type OverviewResponse struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Healthy     bool          `json:"healthy"` // true when no threshold rule fired
	Issues      IssueGroups   `json:"issues"`
	KPIs        report.KPISet `json:"kpis"`
}

// groupIssues splits the ordered issue sequence by severity tag for the
// dashboard payload. Groups are always arrays, never null.
func groupIssues(issues []analysis.Issue) IssueGroups {
	g := IssueGroups{
		Critical: []string{},
		High:     []string{},
		Medium:   []string{},
	}
	for _, is := range issues {
		switch is.Severity {
		case analysis.SeverityCritical:
			g.Critical = append(g.Critical, is.Message)
		case analysis.SeverityHigh:
			g.High = append(g.High, is.Message)
		case analysis.SeverityMedium:
			g.Medium = append(g.Medium, is.Message)
		}
	}
	return g
}

// GET /api/dashboard
func OverviewHandler(snap *models.Snapshot) fiber.Handler {
	return func(c *fiber.Ctx) error {
		issues := analysis.Classify(snap)
		resp := OverviewResponse{
			GeneratedAt: time.Now(),
			Healthy:     len(issues) == 0,
			Issues:      groupIssues(issues),
			KPIs:        report.ComputeKPIs(snap),
		}
		return c.JSON(resp)
	}
}

// GET /api/dashboard/issues
func IssuesHandler(snap *models.Snapshot) fiber.Handler {
	return func(c *fiber.Ctx) error {
		issues := analysis.Classify(snap)
		if issues == nil {
			issues = []analysis.Issue{}
		}
		return c.JSON(issues)
	}
}

// GET /api/dashboard/kpis
func KPIsHandler(snap *models.Snapshot) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(report.ComputeKPIs(snap))
	}
}

// GET /api/snapshot
// Raw snapshot records for tabular display.
func SnapshotHandler(snap *models.Snapshot) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(snap)
	}
}
