package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"supplychain-backend/internal/models"
)

// Sheet names mirror the manual report the factory used to circulate.
const (
	sheetSummary     = "Executive Summary"
	sheetProduction  = "Production"
	sheetCapacity    = "Capacity"
	sheetMRP         = "MRP"
	sheetProcurement = "Procurement"
	sheetWarehouse   = "Warehouse"
)

var (
	productionHeaders  = []string{"Date", "Planned_Qty", "Actual_Qty", "Variance", "Reason"}
	capacityHeaders    = []string{"Department", "Capacity", "Planned_Load", "Actual_Prod", "Utilization", "MTD"}
	mrpHeaders         = []string{"Order", "Ordered", "Available", "Status"}
	procurementHeaders = []string{"Status", "Count", "Amount (M)"}
	warehouseHeaders   = []string{"Brand", "Stock (Pairs)"}
	grnHeaders         = []string{"GRN", "Count"}
)

// BuildWorkbook serializes the snapshot and the rendered summary into a
// multi-sheet workbook: the summary text on the first sheet, one sheet
// per data domain after it. Cell values are raw snapshot passthrough.
func BuildWorkbook(s *models.Snapshot, summary string) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetSummary)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	writeSummarySheet(f, headerStyle, summary)
	writeProductionSheet(f, headerStyle, s.Production)
	writeCapacitySheet(f, headerStyle, s.Capacity)
	writeMRPSheet(f, headerStyle, s.MrpOrders)
	writeProcurementSheet(f, headerStyle, &s.Procurement)
	writeWarehouseSheet(f, headerStyle, &s.Warehouse)

	return f, nil
}

func writeHeaders(f *excelize.File, sheet string, headers []string, style int, row int) {
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, row)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func setColWidths(f *excelize.File, sheet string, widths []float64) {
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}
}

func writeSummarySheet(f *excelize.File, style int, summary string) {
	writeHeaders(f, sheetSummary, []string{"Executive Summary"}, style, 1)
	f.SetCellValue(sheetSummary, "A2", summary)
	setColWidths(f, sheetSummary, []float64{120})
}

func writeProductionSheet(f *excelize.File, style int, records []models.ProductionRecord) {
	f.NewSheet(sheetProduction)
	writeHeaders(f, sheetProduction, productionHeaders, style, 1)
	for i, p := range records {
		row := i + 2
		f.SetCellValue(sheetProduction, fmt.Sprintf("A%d", row), p.Date)
		f.SetCellValue(sheetProduction, fmt.Sprintf("B%d", row), p.PlannedQty)
		f.SetCellValue(sheetProduction, fmt.Sprintf("C%d", row), p.ActualQty)
		f.SetCellValue(sheetProduction, fmt.Sprintf("D%d", row), p.Variance)
		f.SetCellValue(sheetProduction, fmt.Sprintf("E%d", row), p.Reason)
	}
	setColWidths(f, sheetProduction, []float64{14, 12, 12, 10, 36})
}

func writeCapacitySheet(f *excelize.File, style int, records []models.CapacityRecord) {
	f.NewSheet(sheetCapacity)
	writeHeaders(f, sheetCapacity, capacityHeaders, style, 1)
	for i, c := range records {
		row := i + 2
		f.SetCellValue(sheetCapacity, fmt.Sprintf("A%d", row), c.Department)
		f.SetCellValue(sheetCapacity, fmt.Sprintf("B%d", row), c.Capacity)
		f.SetCellValue(sheetCapacity, fmt.Sprintf("C%d", row), c.PlannedLoad)
		f.SetCellValue(sheetCapacity, fmt.Sprintf("D%d", row), c.ActualProd)
		f.SetCellValue(sheetCapacity, fmt.Sprintf("E%d", row), c.UtilizationPct)
		f.SetCellValue(sheetCapacity, fmt.Sprintf("F%d", row), c.MonthToDate)
	}
	setColWidths(f, sheetCapacity, []float64{14, 10, 12, 12, 10, 10})
}

func writeMRPSheet(f *excelize.File, style int, orders []models.MrpOrder) {
	f.NewSheet(sheetMRP)
	writeHeaders(f, sheetMRP, mrpHeaders, style, 1)
	for i, o := range orders {
		row := i + 2
		f.SetCellValue(sheetMRP, fmt.Sprintf("A%d", row), o.Order)
		f.SetCellValue(sheetMRP, fmt.Sprintf("B%d", row), yesNo(o.Ordered))
		f.SetCellValue(sheetMRP, fmt.Sprintf("C%d", row), yesNo(o.Available))
		f.SetCellValue(sheetMRP, fmt.Sprintf("D%d", row), string(o.Status))
	}
	setColWidths(f, sheetMRP, []float64{10, 10, 10, 12})
}

func writeProcurementSheet(f *excelize.File, style int, proc *models.ProcurementSummary) {
	f.NewSheet(sheetProcurement)
	writeHeaders(f, sheetProcurement, procurementHeaders, style, 1)
	rows := []struct {
		label  string
		bucket models.POBucket
	}{
		{"PO Issued", proc.Issued},
		{"PO Received", proc.Received},
		{"PO Pending", proc.Pending},
	}
	for i, r := range rows {
		row := i + 2
		f.SetCellValue(sheetProcurement, fmt.Sprintf("A%d", row), r.label)
		f.SetCellValue(sheetProcurement, fmt.Sprintf("B%d", row), r.bucket.Count)
		f.SetCellValue(sheetProcurement, fmt.Sprintf("C%d", row), r.bucket.Amount.InexactFloat64())
	}
	setColWidths(f, sheetProcurement, []float64{14, 8, 12})
}

// writeWarehouseSheet lays out the finished-goods table first, then the
// GRN counts below it so the whole warehouse domain survives a re-read.
func writeWarehouseSheet(f *excelize.File, style int, w *models.WarehouseStatus) {
	f.NewSheet(sheetWarehouse)
	writeHeaders(f, sheetWarehouse, warehouseHeaders, style, 1)
	row := 2
	for _, b := range w.FGStock {
		f.SetCellValue(sheetWarehouse, fmt.Sprintf("A%d", row), b.Brand)
		f.SetCellValue(sheetWarehouse, fmt.Sprintf("B%d", row), b.Pairs)
		row++
	}
	f.SetCellValue(sheetWarehouse, fmt.Sprintf("A%d", row), "Total")
	f.SetCellValue(sheetWarehouse, fmt.Sprintf("B%d", row), w.FGTotal)
	row += 2

	writeHeaders(f, sheetWarehouse, grnHeaders, style, row)
	grnRows := []struct {
		label string
		count int
	}{
		{"Total", w.GRN.Total},
		{"Done", w.GRN.Done},
		{"Pending", w.GRN.Pending},
	}
	for i, g := range grnRows {
		f.SetCellValue(sheetWarehouse, fmt.Sprintf("A%d", row+1+i), g.label)
		f.SetCellValue(sheetWarehouse, fmt.Sprintf("B%d", row+1+i), g.count)
	}
	setColWidths(f, sheetWarehouse, []float64{14, 14})
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
