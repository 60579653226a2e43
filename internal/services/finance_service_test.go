package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramiq/farmreport-api/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func wheatSeasonRequest() *models.ReportRequest {
	return &models.ReportRequest{
		Profile: models.FarmProfile{
			FarmerName:  "Ramesh Patil",
			CropName:    "Wheat",
			Season:      "Rabi",
			TotalAcres:  10,
			SowingDate:  day(2024, time.November, 1),
			HarvestDate: day(2025, time.March, 15),
		},
		Expenses: []models.LedgerEntry{
			{Kind: models.EntryKindExpense, Date: day(2024, time.November, 5), Category: "Seeds", Amount: 5000},
			{Kind: models.EntryKindExpense, Date: day(2024, time.December, 1), Category: "Fertilizer", Amount: 3000},
		},
		Incomes: []models.LedgerEntry{
			{Kind: models.EntryKindIncome, Date: day(2025, time.March, 20), Category: "Sale", Amount: 25000},
		},
	}
}

func TestSummarizeWheatSeason(t *testing.T) {
	service := NewFinanceService()

	summary, err := service.Summarize(wheatSeasonRequest())
	require.NoError(t, err)

	assert.Equal(t, 25000.0, summary.TotalIncome)
	assert.Equal(t, 8000.0, summary.TotalExpense)
	assert.Equal(t, 17000.0, summary.ProfitLoss)
	assert.Equal(t, 800.0, summary.CostPerAcre)
}

func TestSummarizeEmptyLedger(t *testing.T) {
	service := NewFinanceService()

	req := wheatSeasonRequest()
	req.Expenses = nil
	req.Incomes = nil

	// No entries with positive acreage is valid: everything is zero,
	// including cost per acre.
	summary, err := service.Summarize(req)
	require.NoError(t, err)

	assert.Zero(t, summary.TotalIncome)
	assert.Zero(t, summary.TotalExpense)
	assert.Zero(t, summary.ProfitLoss)
	assert.Zero(t, summary.CostPerAcre)
}

func TestSummarizeZeroAcreage(t *testing.T) {
	service := NewFinanceService()

	req := wheatSeasonRequest()
	req.Profile.TotalAcres = 0

	summary, err := service.Summarize(req)
	assert.ErrorIs(t, err, ErrZeroAcreage)
	assert.Nil(t, summary)
}

func TestSummarizeLossIsNotClamped(t *testing.T) {
	service := NewFinanceService()

	req := wheatSeasonRequest()
	req.Incomes = []models.LedgerEntry{
		{Kind: models.EntryKindIncome, Date: day(2025, time.March, 20), Category: "Sale", Amount: 3000},
	}

	summary, err := service.Summarize(req)
	require.NoError(t, err)
	assert.Equal(t, -5000.0, summary.ProfitLoss)
}

func TestSummarizeOrderIndependent(t *testing.T) {
	service := NewFinanceService()

	req := wheatSeasonRequest()
	reversed := wheatSeasonRequest()
	reversed.Expenses[0], reversed.Expenses[1] = reversed.Expenses[1], reversed.Expenses[0]

	a, err := service.Summarize(req)
	require.NoError(t, err)
	b, err := service.Summarize(reversed)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMergedLedgerSortsByDate(t *testing.T) {
	service := NewFinanceService()

	ledger := service.MergedLedger(wheatSeasonRequest())
	require.Len(t, ledger, 3)

	assert.Equal(t, "Seeds", ledger[0].Category)
	assert.Equal(t, "Fertilizer", ledger[1].Category)
	assert.Equal(t, "Sale", ledger[2].Category)
}

func TestMergedLedgerStableOnEqualDates(t *testing.T) {
	service := NewFinanceService()

	sameDay := day(2025, time.January, 10)
	req := &models.ReportRequest{
		Profile: models.FarmProfile{TotalAcres: 1},
		Expenses: []models.LedgerEntry{
			{Kind: models.EntryKindExpense, Date: sameDay, Category: "Labour", Amount: 100},
			{Kind: models.EntryKindExpense, Date: sameDay, Category: "Diesel", Amount: 200},
		},
		Incomes: []models.LedgerEntry{
			{Kind: models.EntryKindIncome, Date: sameDay, Category: "Sale", Amount: 300},
		},
	}

	ledger := service.MergedLedger(req)
	require.Len(t, ledger, 3)

	// Submission order is the tie-break: expenses first, in order.
	assert.Equal(t, "Labour", ledger[0].Category)
	assert.Equal(t, "Diesel", ledger[1].Category)
	assert.Equal(t, "Sale", ledger[2].Category)
}

func TestMergedLedgerDoesNotMutateRequest(t *testing.T) {
	service := NewFinanceService()

	req := wheatSeasonRequest()
	_ = service.MergedLedger(req)

	assert.Equal(t, "Seeds", req.Expenses[0].Category)
	assert.Equal(t, "Fertilizer", req.Expenses[1].Category)
}
