package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"supplychain-backend/internal/models"
)

// WorkbookData: the five sheet-backed domains read from a report
// workbook. Imports has no sheet, so it does not appear here.
type WorkbookData struct {
	Production  []models.ProductionRecord `json:"production"`
	Capacity    []models.CapacityRecord   `json:"capacity"`
	MrpOrders   []models.MrpOrder         `json:"mrp_orders"`
	Procurement models.ProcurementSummary `json:"procurement"`
	Warehouse   models.WarehouseStatus    `json:"warehouse"`
}

// ReadWorkbook parses a report workbook back into domain records. It is
// the inverse of BuildWorkbook and doubles as the import contract for
// externally produced files: sheet names, headers and cell shapes must
// match the export layout exactly.
func ReadWorkbook(r io.Reader) (*WorkbookData, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	data := &WorkbookData{}
	if data.Production, err = readProductionSheet(f); err != nil {
		return nil, err
	}
	if data.Capacity, err = readCapacitySheet(f); err != nil {
		return nil, err
	}
	if data.MrpOrders, err = readMRPSheet(f); err != nil {
		return nil, err
	}
	if data.Procurement, err = readProcurementSheet(f); err != nil {
		return nil, err
	}
	if data.Warehouse, err = readWarehouseSheet(f); err != nil {
		return nil, err
	}
	return data, nil
}

func readProductionSheet(f *excelize.File) ([]models.ProductionRecord, error) {
	rows, err := sheetRows(f, sheetProduction, productionHeaders)
	if err != nil {
		return nil, err
	}
	var out []models.ProductionRecord
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		planned, err := cellInt(row, 1)
		if err != nil {
			return nil, rowErr(sheetProduction, i, err)
		}
		actual, err := cellInt(row, 2)
		if err != nil {
			return nil, rowErr(sheetProduction, i, err)
		}
		variance, err := cellInt(row, 3)
		if err != nil {
			return nil, rowErr(sheetProduction, i, err)
		}
		out = append(out, models.ProductionRecord{
			Date:       cellAt(row, 0),
			PlannedQty: planned,
			ActualQty:  actual,
			Variance:   variance,
			Reason:     cellAt(row, 4),
		})
	}
	return out, nil
}

func readCapacitySheet(f *excelize.File) ([]models.CapacityRecord, error) {
	rows, err := sheetRows(f, sheetCapacity, capacityHeaders)
	if err != nil {
		return nil, err
	}
	var out []models.CapacityRecord
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		vals := make([]int, 5)
		for j := range vals {
			v, err := cellInt(row, j+1)
			if err != nil {
				return nil, rowErr(sheetCapacity, i, err)
			}
			vals[j] = v
		}
		out = append(out, models.CapacityRecord{
			Department:     cellAt(row, 0),
			Capacity:       vals[0],
			PlannedLoad:    vals[1],
			ActualProd:     vals[2],
			UtilizationPct: vals[3],
			MonthToDate:    vals[4],
		})
	}
	return out, nil
}

func readMRPSheet(f *excelize.File) ([]models.MrpOrder, error) {
	rows, err := sheetRows(f, sheetMRP, mrpHeaders)
	if err != nil {
		return nil, err
	}
	var out []models.MrpOrder
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		ordered, err := cellYesNo(row, 1)
		if err != nil {
			return nil, rowErr(sheetMRP, i, err)
		}
		available, err := cellYesNo(row, 2)
		if err != nil {
			return nil, rowErr(sheetMRP, i, err)
		}
		status := models.MrpStatus(cellAt(row, 3))
		switch status {
		case models.MrpComplete, models.MrpPending, models.MrpCritical:
		default:
			return nil, rowErr(sheetMRP, i, fmt.Errorf("unknown status %q", string(status)))
		}
		out = append(out, models.MrpOrder{
			Order:     cellAt(row, 0),
			Ordered:   ordered,
			Available: available,
			Status:    status,
		})
	}
	return out, nil
}

func readProcurementSheet(f *excelize.File) (models.ProcurementSummary, error) {
	var proc models.ProcurementSummary
	rows, err := sheetRows(f, sheetProcurement, procurementHeaders)
	if err != nil {
		return proc, err
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		count, err := cellInt(row, 1)
		if err != nil {
			return proc, rowErr(sheetProcurement, i, err)
		}
		amount, err := decimal.NewFromString(cellAt(row, 2))
		if err != nil {
			return proc, rowErr(sheetProcurement, i, err)
		}
		bucket := models.POBucket{Count: count, Amount: amount}
		switch label := cellAt(row, 0); label {
		case "PO Issued":
			proc.Issued = bucket
		case "PO Received":
			proc.Received = bucket
		case "PO Pending":
			proc.Pending = bucket
		default:
			return proc, rowErr(sheetProcurement, i, fmt.Errorf("unknown status %q", label))
		}
	}
	return proc, nil
}

func readWarehouseSheet(f *excelize.File) (models.WarehouseStatus, error) {
	var w models.WarehouseStatus
	rows, err := sheetRows(f, sheetWarehouse, warehouseHeaders)
	if err != nil {
		return w, err
	}

	// Finished-goods table runs until its Total row.
	i := 0
	for ; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}
		pairs, err := cellInt(row, 1)
		if err != nil {
			return w, rowErr(sheetWarehouse, i, err)
		}
		label := cellAt(row, 0)
		if label == "Total" {
			w.FGTotal = pairs
			i++
			break
		}
		w.FGStock = append(w.FGStock, models.BrandStock{Brand: label, Pairs: pairs})
	}

	for i < len(rows) && len(rows[i]) == 0 {
		i++
	}
	if i >= len(rows) || cellAt(rows[i], 0) != "GRN" {
		return w, fmt.Errorf("%s sheet: GRN block not found", sheetWarehouse)
	}
	for i++; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}
		count, err := cellInt(row, 1)
		if err != nil {
			return w, rowErr(sheetWarehouse, i, err)
		}
		switch label := cellAt(row, 0); label {
		case "Total":
			w.GRN.Total = count
		case "Done":
			w.GRN.Done = count
		case "Pending":
			w.GRN.Pending = count
		default:
			return w, rowErr(sheetWarehouse, i, fmt.Errorf("unknown GRN row %q", label))
		}
	}
	return w, nil
}

// sheetRows fetches a sheet, checks its header row and returns the data
// rows after it.
func sheetRows(f *excelize.File, sheet string, headers []string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read %s sheet: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s sheet is empty", sheet)
	}
	for i, h := range headers {
		if got := cellAt(rows[0], i); got != h {
			return nil, fmt.Errorf("%s sheet: expected header %q in column %d, got %q", sheet, h, i+1, got)
		}
	}
	return rows[1:], nil
}

func rowErr(sheet string, dataRow int, err error) error {
	return fmt.Errorf("%s sheet row %d: %w", sheet, dataRow+2, err)
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func cellInt(row []string, i int) (int, error) {
	v, err := strconv.Atoi(cellAt(row, i))
	if err != nil {
		return 0, fmt.Errorf("column %d: %w", i+1, err)
	}
	return v, nil
}

func cellYesNo(row []string, i int) (bool, error) {
	switch v := cellAt(row, i); v {
	case "Yes":
		return true, nil
	case "No":
		return false, nil
	default:
		return false, fmt.Errorf("column %d: expected Yes or No, got %q", i+1, v)
	}
}
