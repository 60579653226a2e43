package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/gramiq/farmreport-api/internal/assets"
	"github.com/gramiq/farmreport-api/internal/config"
	"github.com/gramiq/farmreport-api/internal/models"
)

// Page layout constants (A4 portrait, mm).
const (
	pageMarginSide   = 20.0
	pageMarginTop    = 40.0
	pageMarginBottom = 25.0
	contentWidth     = 170.0 // 210 - 2 * pageMarginSide
	maxLogoWidth     = 30.0
	maxLogoHeight    = 12.0
)

var pngImageOptions = gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}

// ReportService assembles the farm finance report document. It owns the
// full pipeline for one request: aggregate, render the chart, lay out the
// PDF. Either a complete document is returned or an error; a partial
// buffer is never handed back.
type ReportService struct {
	financeSvc *FinanceService
	chartSvc   *ChartService
	store      *assets.Store
	cfg        *config.Config
}

func NewReportService(financeSvc *FinanceService, chartSvc *ChartService, store *assets.Store, cfg *config.Config) *ReportService {
	return &ReportService{
		financeSvc: financeSvc,
		chartSvc:   chartSvc,
		store:      store,
		cfg:        cfg,
	}
}

// GeneratePDF builds the multi-page PDF report for a validated request.
// Returns the document bytes and the download filename.
func (s *ReportService) GeneratePDF(ctx context.Context, req *models.ReportRequest) ([]byte, string, error) {
	summary, err := s.financeSvc.Summarize(req)
	if err != nil {
		return nil, "", err
	}
	ledger := s.financeSvc.MergedLedger(req)

	chartPNG, err := s.chartSvc.Render(summary.TotalIncome, summary.TotalExpense)
	if err != nil {
		return nil, "", err
	}

	logo, err := s.store.Logo()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrLogoNotFound, err)
	}

	title := req.Profile.ReportTitle()
	generatedAt := time.Now()

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(title, true)
	pdf.SetAuthor(s.cfg.ReportAuthor, true)
	pdf.SetSubject("Farm Finance Report", true)
	pdf.SetKeywords("GramIQ, Farm Report, Finance, Agriculture", true)

	pdf.SetMargins(pageMarginSide, pageMarginTop, pageMarginSide)
	pdf.SetAutoPageBreak(true, pageMarginBottom)

	logoInfo := pdf.RegisterImageOptionsReader("report_logo", pngImageOptions, bytes.NewReader(logo))
	if pdf.Err() {
		return nil, "", fmt.Errorf("%w: %v", ErrLogoNotFound, pdf.Error())
	}

	// The header repeats identically on every page: logo left, title
	// centered, generation timestamp right.
	pdf.SetHeaderFunc(func() {
		ratio := min(maxLogoWidth/logoInfo.Width(), maxLogoHeight/logoInfo.Height(), 1.0)
		pdf.ImageOptions("report_logo", pageMarginSide, 9, logoInfo.Width()*ratio, logoInfo.Height()*ratio, false, pngImageOptions, 0, "")

		pdf.SetY(10)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 10, tr(title), "", 0, "C", false, 0, "")

		pageWidth, _ := pdf.GetPageSize()
		pdf.SetXY(pageWidth-pageMarginSide-60, 10)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(60, 10, "Generated: "+generatedAt.Format("02-01-2006 15:04:05"), "", 0, "R", false, 0, "")
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 10, tr(s.cfg.ReportFooter), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr("Farmer: "+req.Profile.FarmerName), "", 1, "L", false, 0, "")
	if loc := req.Profile.Location(); loc != "" {
		pdf.CellFormat(0, 7, tr("Location: "+loc), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	s.writeSummaryTable(pdf, tr, req.Profile.TotalProduction, summary)

	// Chart, centered below the summary
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, "Income vs Expense Chart", "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.RegisterImageOptionsReader("season_chart", pngImageOptions, bytes.NewReader(chartPNG))
	if pdf.Err() {
		return nil, "", fmt.Errorf("failed to embed chart: %w", pdf.Error())
	}
	chartWidth := 120.0
	pdf.ImageOptions("season_chart", pageMarginSide+(contentWidth-chartWidth)/2, pdf.GetY(), chartWidth, 0, true, pngImageOptions, 0, "")

	pdf.AddPage()

	s.writeEntryTable(pdf, tr, "Expense Breakdown", req.Expenses, summary.TotalExpense)
	pdf.Ln(8)
	s.writeEntryTable(pdf, tr, "Income Breakdown", req.Incomes, summary.TotalIncome)
	pdf.Ln(8)
	s.writeLedgerTable(pdf, tr, ledger)

	if pdf.Err() {
		return nil, "", fmt.Errorf("failed to assemble report: %w", pdf.Error())
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", fmt.Errorf("failed to write report: %w", err)
	}

	return buf.Bytes(), req.Profile.FileBase() + ".pdf", nil
}

// writeSummaryTable lays out the financial summary rows. An absent total
// production renders as a blank cell, not as zero.
func (s *ReportService) writeSummaryTable(pdf *gofpdf.Fpdf, tr func(string) string, production *float64, summary *models.FinancialSummary) {
	productionDisplay := ""
	if production != nil {
		productionDisplay = FormatAmount(*production)
	}

	rows := [][2]string{
		{"Total Income", FormatAmount(summary.TotalIncome)},
		{"Total Expense", FormatAmount(summary.TotalExpense)},
		{"Total Production", productionDisplay},
		{"Profit or Loss", FormatAmount(summary.ProfitLoss)},
		{"Cost of cultivation per acre", FormatAmount(summary.CostPerAcre)},
	}

	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.2)
	pdf.SetFont("Helvetica", "", 10)
	for i, row := range rows {
		pdf.SetFillColor(245, 245, 245) // whitesmoke on the first row only
		fill := i == 0
		pdf.CellFormat(120, 8, tr(row[0]), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(50, 8, row[1], "1", 1, "R", fill, 0, "")
	}
}

// writeEntryTable lays out one breakdown table (expenses or incomes) in
// submission order, followed by a total row.
func (s *ReportService) writeEntryTable(pdf *gofpdf.Fpdf, tr func(string) string, heading string, entries []models.LedgerEntry, total float64) {
	widths := []float64{60, 30, 35, 45}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, heading, "", 1, "L", false, 0, "")

	s.writeTableHeader(pdf, widths, []string{"Category", "Amount", "Date", "Description"})

	pdf.SetFont("Helvetica", "", 10)
	for i, e := range entries {
		fill := i%2 == 1
		pdf.CellFormat(widths[0], 7, tr(e.Category), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[1], 7, FormatAmount(e.Amount), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[2], 7, FormatDate(e.Date), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[3], 7, tr(e.Description), "1", 1, "C", fill, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0], 7, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[1], 7, FormatAmount(total), "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[2]+widths[3], 7, "", "1", 1, "C", false, 0, "")
}

// writeLedgerTable lays out the merged date-sorted ledger, each row
// tagged by kind.
func (s *ReportService) writeLedgerTable(pdf *gofpdf.Fpdf, tr func(string) string, ledger []models.LedgerEntry) {
	widths := []float64{28, 50, 26, 42, 24}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, "Ledger", "", 1, "L", false, 0, "")

	s.writeTableHeader(pdf, widths, []string{"Date", "Particulars", "Type", "Description", "Amount"})

	pdf.SetFont("Helvetica", "", 10)
	for i, e := range ledger {
		fill := i%2 == 1
		pdf.CellFormat(widths[0], 7, FormatDate(e.Date), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[1], 7, tr(e.Category), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[2], 7, e.KindLabel(), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[3], 7, tr(e.Description), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[4], 7, FormatAmount(e.Amount), "1", 1, "C", fill, 0, "")
	}
}

// writeTableHeader draws a white-on-blue header row and resets the fill
// colors for the data rows that follow.
func (s *ReportService) writeTableHeader(pdf *gofpdf.Fpdf, widths []float64, headers []string) {
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.2)
	pdf.SetFillColor(74, 144, 226) // #4A90E2
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		ln := 0
		if i == len(headers)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 8, h, "1", ln, "C", true, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(245, 245, 245)
}
