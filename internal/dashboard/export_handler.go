package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"supplychain-backend/internal/analysis"
	"supplychain-backend/internal/export"
	"supplychain-backend/internal/models"
	"supplychain-backend/internal/report"
	"supplychain-backend/internal/snapshot"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GET /api/reports/summary
// Renders the executive summary and serves it as a timestamped markdown
// download.
func SummaryReportHandler(snap *models.Snapshot) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		issues := analysis.Classify(snap)
		summary := report.RenderSummary(snap, issues, now)

		c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.SummaryFilename(now)))
		return c.SendString(summary)
	}
}

// GET /api/reports/workbook
// Builds the multi-sheet report workbook and serves it as a timestamped
// xlsx download.
func WorkbookReportHandler(snap *models.Snapshot) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		issues := analysis.Classify(snap)
		summary := report.RenderSummary(snap, issues, now)

		f, err := export.BuildWorkbook(snap, summary)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Workbook could not be generated: "+err.Error())
		}
		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Workbook could not be serialized: "+err.Error())
		}

		c.Set(fiber.HeaderContentType, xlsxContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.WorkbookFilename(now)))
		return c.Send(buf.Bytes())
	}
}

// POST /api/reports/workbook/validate
// Accepts an edited report workbook, parses its five domain sheets and
// reports whether the records still satisfy the data-model invariants.
// Nothing is stored; the server keeps serving its own snapshot.
func ValidateWorkbookHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "File upload failed: "+err.Error())
		}
		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "Only .xlsx files are accepted")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "File could not be opened: "+err.Error())
		}
		defer file.Close()

		data, err := export.ReadWorkbook(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Workbook could not be parsed: "+err.Error())
		}

		// Imports has no sheet; validate the five sheet-backed domains.
		parsed := &models.Snapshot{
			Production:  data.Production,
			Capacity:    data.Capacity,
			MrpOrders:   data.MrpOrders,
			Procurement: data.Procurement,
			Warehouse:   data.Warehouse,
		}
		if err := snapshot.Validate(parsed); err != nil {
			return c.JSON(fiber.Map{
				"valid": false,
				"error": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"valid": true,
			"data":  data,
		})
	}
}
