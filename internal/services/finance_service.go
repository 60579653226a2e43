package services

import (
	"sort"

	"github.com/gramiq/farmreport-api/internal/models"
)

// FinanceService computes the derived financial aggregates for a report
// request. All methods are pure: no side effects, deterministic for a
// given request.
type FinanceService struct{}

func NewFinanceService() *FinanceService {
	return &FinanceService{}
}

// Summarize computes the season totals, profit/loss and cost of
// cultivation per acre. Returns ErrZeroAcreage when the profile has a
// non-positive acreage; the cost-per-acre division is never attempted in
// that case.
func (s *FinanceService) Summarize(req *models.ReportRequest) (*models.FinancialSummary, error) {
	if req.Profile.TotalAcres <= 0 {
		return nil, ErrZeroAcreage
	}

	summary := &models.FinancialSummary{}
	for _, e := range req.Expenses {
		summary.TotalExpense += e.Amount
	}
	for _, i := range req.Incomes {
		summary.TotalIncome += i.Amount
	}

	// Profit may be negative; it is never clamped.
	summary.ProfitLoss = summary.TotalIncome - summary.TotalExpense
	summary.CostPerAcre = summary.TotalExpense / req.Profile.TotalAcres

	return summary, nil
}

// MergedLedger returns all expense and income entries in one slice,
// stably sorted by date ascending. Entries sharing a date keep submission
// order, expenses before incomes.
func (s *FinanceService) MergedLedger(req *models.ReportRequest) []models.LedgerEntry {
	merged := make([]models.LedgerEntry, 0, len(req.Expenses)+len(req.Incomes))
	merged = append(merged, req.Expenses...)
	merged = append(merged, req.Incomes...)

	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].Date.Before(merged[b].Date)
	})

	return merged
}
