package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportCSV(t *testing.T) {
	service := NewExportService(NewFinanceService())

	data, filename, err := service.ExportCSV(context.Background(), wheatSeasonRequest())
	require.NoError(t, err)
	assert.Equal(t, "Wheat_10_Rabi_2025.csv", filename)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	rows := make(map[string][]string)
	for _, rec := range records {
		if len(rec) > 0 {
			rows[rec[0]] = rec
		}
	}

	assert.Equal(t, []string{"Total Income", "25000.00"}, rows["Total Income"])
	assert.Equal(t, []string{"Total Expense", "8000.00"}, rows["Total Expense"])
	assert.Equal(t, []string{"Profit or Loss", "17000.00"}, rows["Profit or Loss"])
	assert.Equal(t, []string{"Cost of cultivation per acre", "800.00"}, rows["Cost of cultivation per acre"])
	assert.Contains(t, rows, "Expense Breakdown")
	assert.Contains(t, rows, "Income Breakdown")
	assert.Contains(t, rows, "Ledger")
	assert.Contains(t, rows, "Seeds")
	assert.Contains(t, rows, "Sale")
}

func TestExportCSVZeroAcreage(t *testing.T) {
	service := NewExportService(NewFinanceService())

	req := wheatSeasonRequest()
	req.Profile.TotalAcres = 0

	data, _, err := service.ExportCSV(context.Background(), req)
	assert.ErrorIs(t, err, ErrZeroAcreage)
	assert.Nil(t, data)
}

func TestExportXLSX(t *testing.T) {
	service := NewExportService(NewFinanceService())

	data, filename, err := service.ExportXLSX(context.Background(), wheatSeasonRequest())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "Wheat_10_Rabi_2025.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Wheat_10_Rabi_2025", title)

	cells, err := f.GetRows("Report")
	require.NoError(t, err)

	flat := make(map[string]bool)
	for _, row := range cells {
		for _, cell := range row {
			flat[cell] = true
		}
	}
	assert.True(t, flat["Summary"])
	assert.True(t, flat["Expense Breakdown"])
	assert.True(t, flat["Income Breakdown"])
	assert.True(t, flat["Ledger"])
	assert.True(t, flat["Seeds"])
	assert.True(t, flat["Fertilizer"])
	assert.True(t, flat["Sale"])
}
