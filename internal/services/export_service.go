package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gramiq/farmreport-api/internal/models"
)

// ExportService renders the same report data as flat CSV and XLSX
// downloads, for farmers who want the numbers in a spreadsheet rather
// than the formatted PDF.
type ExportService struct {
	financeSvc *FinanceService
}

func NewExportService(financeSvc *FinanceService) *ExportService {
	return &ExportService{financeSvc: financeSvc}
}

func (s *ExportService) ExportCSV(ctx context.Context, req *models.ReportRequest) ([]byte, string, error) {
	summary, err := s.financeSvc.Summarize(req)
	if err != nil {
		return nil, "", err
	}
	ledger := s.financeSvc.MergedLedger(req)

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	// Header
	_ = writer.Write([]string{"Farm Finance Report", req.Profile.ReportTitle()})
	_ = writer.Write([]string{"Generated", time.Now().Format("2006-01-02 15:04")})
	_ = writer.Write([]string{"Farmer", req.Profile.FarmerName})
	if loc := req.Profile.Location(); loc != "" {
		_ = writer.Write([]string{"Location", loc})
	}
	_ = writer.Write([]string{""})

	// Summary Section
	_ = writer.Write([]string{"Summary"})
	_ = writer.Write([]string{"Metric", "Value"})
	_ = writer.Write([]string{"Total Income", fmt.Sprintf("%.2f", summary.TotalIncome)})
	_ = writer.Write([]string{"Total Expense", fmt.Sprintf("%.2f", summary.TotalExpense)})
	if req.Profile.TotalProduction != nil {
		_ = writer.Write([]string{"Total Production", fmt.Sprintf("%.2f", *req.Profile.TotalProduction)})
	}
	_ = writer.Write([]string{"Profit or Loss", fmt.Sprintf("%.2f", summary.ProfitLoss)})
	_ = writer.Write([]string{"Cost of cultivation per acre", fmt.Sprintf("%.2f", summary.CostPerAcre)})
	_ = writer.Write([]string{""})

	writeEntrySection := func(heading string, entries []models.LedgerEntry, total float64) {
		_ = writer.Write([]string{heading})
		_ = writer.Write([]string{"Category", "Amount", "Date", "Description"})
		for _, e := range entries {
			_ = writer.Write([]string{e.Category, fmt.Sprintf("%.2f", e.Amount), FormatDate(e.Date), e.Description})
		}
		_ = writer.Write([]string{"Total", fmt.Sprintf("%.2f", total)})
		_ = writer.Write([]string{""})
	}
	writeEntrySection("Expense Breakdown", req.Expenses, summary.TotalExpense)
	writeEntrySection("Income Breakdown", req.Incomes, summary.TotalIncome)

	// Ledger Section
	_ = writer.Write([]string{"Ledger"})
	_ = writer.Write([]string{"Date", "Particulars", "Type", "Description", "Amount"})
	for _, e := range ledger {
		_ = writer.Write([]string{FormatDate(e.Date), e.Category, e.KindLabel(), e.Description, fmt.Sprintf("%.2f", e.Amount)})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), req.Profile.FileBase() + ".csv", nil
}

func (s *ExportService) ExportXLSX(ctx context.Context, req *models.ReportRequest) ([]byte, string, error) {
	summary, err := s.financeSvc.Summarize(req)
	if err != nil {
		return nil, "", err
	}
	ledger := s.financeSvc.MergedLedger(req)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Report"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4A90E2"}, Pattern: 1},
	})
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})

	row := 1
	cell := func(col string) string { return fmt.Sprintf("%s%d", col, row) }

	_ = f.SetCellValue(sheet, cell("A"), req.Profile.ReportTitle())
	_ = f.SetCellStyle(sheet, cell("A"), cell("A"), titleStyle)
	row++
	_ = f.SetCellValue(sheet, cell("A"), "Generated")
	_ = f.SetCellValue(sheet, cell("B"), time.Now().Format("2006-01-02 15:04"))
	row++
	_ = f.SetCellValue(sheet, cell("A"), "Farmer")
	_ = f.SetCellValue(sheet, cell("B"), req.Profile.FarmerName)
	row++
	if loc := req.Profile.Location(); loc != "" {
		_ = f.SetCellValue(sheet, cell("A"), "Location")
		_ = f.SetCellValue(sheet, cell("B"), loc)
		row++
	}
	row++

	// Summary
	_ = f.SetCellValue(sheet, cell("A"), "Summary")
	_ = f.SetCellStyle(sheet, cell("A"), cell("A"), titleStyle)
	row++
	summaryRows := [][2]interface{}{
		{"Total Income", summary.TotalIncome},
		{"Total Expense", summary.TotalExpense},
	}
	if req.Profile.TotalProduction != nil {
		summaryRows = append(summaryRows, [2]interface{}{"Total Production", *req.Profile.TotalProduction})
	}
	summaryRows = append(summaryRows,
		[2]interface{}{"Profit or Loss", summary.ProfitLoss},
		[2]interface{}{"Cost of cultivation per acre", summary.CostPerAcre},
	)
	for _, r := range summaryRows {
		_ = f.SetCellValue(sheet, cell("A"), r[0])
		_ = f.SetCellValue(sheet, cell("B"), r[1])
		row++
	}
	row++

	writeEntrySection := func(heading string, entries []models.LedgerEntry, total float64) {
		_ = f.SetCellValue(sheet, cell("A"), heading)
		_ = f.SetCellStyle(sheet, cell("A"), cell("A"), titleStyle)
		row++
		for i, h := range []string{"Category", "Amount", "Date", "Description"} {
			col := string(rune('A' + i))
			_ = f.SetCellValue(sheet, cell(col), h)
		}
		_ = f.SetCellStyle(sheet, cell("A"), cell("D"), headerStyle)
		row++
		for _, e := range entries {
			_ = f.SetCellValue(sheet, cell("A"), e.Category)
			_ = f.SetCellValue(sheet, cell("B"), e.Amount)
			_ = f.SetCellValue(sheet, cell("C"), FormatDate(e.Date))
			_ = f.SetCellValue(sheet, cell("D"), e.Description)
			row++
		}
		_ = f.SetCellValue(sheet, cell("A"), "Total")
		_ = f.SetCellValue(sheet, cell("B"), total)
		row += 2
	}
	writeEntrySection("Expense Breakdown", req.Expenses, summary.TotalExpense)
	writeEntrySection("Income Breakdown", req.Incomes, summary.TotalIncome)

	// Ledger
	_ = f.SetCellValue(sheet, cell("A"), "Ledger")
	_ = f.SetCellStyle(sheet, cell("A"), cell("A"), titleStyle)
	row++
	for i, h := range []string{"Date", "Particulars", "Type", "Description", "Amount"} {
		col := string(rune('A' + i))
		_ = f.SetCellValue(sheet, cell(col), h)
	}
	_ = f.SetCellStyle(sheet, cell("A"), cell("E"), headerStyle)
	row++
	for _, e := range ledger {
		_ = f.SetCellValue(sheet, cell("A"), FormatDate(e.Date))
		_ = f.SetCellValue(sheet, cell("B"), e.Category)
		_ = f.SetCellValue(sheet, cell("C"), e.KindLabel())
		_ = f.SetCellValue(sheet, cell("D"), e.Description)
		_ = f.SetCellValue(sheet, cell("E"), e.Amount)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), req.Profile.FileBase() + ".xlsx", nil
}
