package handlers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramiq/farmreport-api/internal/models"
)

func formContext(t *testing.T, form url.Values) *gin.Context {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/reports/farm", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c
}

func validForm() url.Values {
	return url.Values{
		"farmer_name":  {"Ramesh Patil"},
		"crop_name":    {"Wheat"},
		"season":       {"Rabi"},
		"total_acres":  {"10"},
		"sowing_date":  {"2024-11-01"},
		"harvest_date": {"2025-03-15"},
		"village":      {"Shirur"},
		"district":     {"Pune"},
		"state":        {"Maharashtra"},

		"expense_date":        {"2024-11-05", "2024-12-01"},
		"expense_category":    {"Seeds", "Fertilizer"},
		"expense_amount":      {"5000", "3000"},
		"expense_description": {"", "DAP"},

		"income_date":     {"2025-03-20"},
		"income_category": {"Sale"},
		"income_amount":   {"25000"},
	}
}

func TestBindReportRequestValid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	req, errs := BindReportRequest(formContext(t, validForm()))
	require.Empty(t, errs)
	require.NotNil(t, req)

	assert.Equal(t, "Ramesh Patil", req.Profile.FarmerName)
	assert.Equal(t, "Wheat", req.Profile.CropName)
	assert.Equal(t, 10.0, req.Profile.TotalAcres)
	assert.Nil(t, req.Profile.TotalProduction)
	assert.Equal(t, "Shirur, Pune, Maharashtra", req.Profile.Location())
	assert.Equal(t, time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC), req.Profile.SowingDate)

	require.Len(t, req.Expenses, 2)
	assert.Equal(t, models.EntryKindExpense, req.Expenses[0].Kind)
	assert.Equal(t, "Seeds", req.Expenses[0].Category)
	assert.Equal(t, 5000.0, req.Expenses[0].Amount)
	assert.Equal(t, "DAP", req.Expenses[1].Description)

	require.Len(t, req.Incomes, 1)
	assert.Equal(t, models.EntryKindIncome, req.Incomes[0].Kind)
}

func TestBindReportRequestOptionalProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	form := validForm()
	form.Set("total_production", "42.5")

	req, errs := BindReportRequest(formContext(t, form))
	require.Empty(t, errs)
	require.NotNil(t, req.Profile.TotalProduction)
	assert.Equal(t, 42.5, *req.Profile.TotalProduction)
}

func TestBindReportRequestAcceptsLegacyDateFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	form := validForm()
	form.Set("sowing_date", "01-11-2024")

	req, errs := BindReportRequest(formContext(t, form))
	require.Empty(t, errs)
	assert.Equal(t, time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC), req.Profile.SowingDate)
}

func TestBindReportRequestFieldErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		mutate        func(url.Values)
		expectedField string
	}{
		{
			name:          "missing farmer name",
			mutate:        func(f url.Values) { f.Del("farmer_name") },
			expectedField: "farmer_name",
		},
		{
			name:          "missing crop name",
			mutate:        func(f url.Values) { f.Set("crop_name", "  ") },
			expectedField: "crop_name",
		},
		{
			name:          "non-numeric acres",
			mutate:        func(f url.Values) { f.Set("total_acres", "ten") },
			expectedField: "total_acres",
		},
		{
			name:          "zero acres",
			mutate:        func(f url.Values) { f.Set("total_acres", "0") },
			expectedField: "total_acres",
		},
		{
			name:          "malformed sowing date",
			mutate:        func(f url.Values) { f.Set("sowing_date", "2024-13-45") },
			expectedField: "sowing_date",
		},
		{
			name:          "harvest before sowing",
			mutate:        func(f url.Values) { f.Set("harvest_date", "2024-10-01") },
			expectedField: "harvest_date",
		},
		{
			name:          "negative production",
			mutate:        func(f url.Values) { f.Set("total_production", "-5") },
			expectedField: "total_production",
		},
		{
			name:          "non-numeric expense amount",
			mutate:        func(f url.Values) { f["expense_amount"] = []string{"5000", "lots"} },
			expectedField: "expense_amount[1]",
		},
		{
			name:          "negative income amount",
			mutate:        func(f url.Values) { f["income_amount"] = []string{"-25000"} },
			expectedField: "income_amount[0]",
		},
		{
			name:          "malformed expense date",
			mutate:        func(f url.Values) { f["expense_date"] = []string{"2024-11-05", "soon"} },
			expectedField: "expense_date[1]",
		},
		{
			name:          "mismatched expense group lengths",
			mutate:        func(f url.Values) { f["expense_amount"] = []string{"5000"} },
			expectedField: "expense_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(form)

			req, errs := BindReportRequest(formContext(t, form))
			assert.Nil(t, req, "partially valid requests must not be returned")
			require.NotEmpty(t, errs)

			fields := make([]string, 0, len(errs))
			for _, fe := range errs {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.expectedField)
		})
	}
}

func TestBindReportRequestCollectsAllErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	form := validForm()
	form.Del("farmer_name")
	form.Set("total_acres", "0")
	form.Set("harvest_date", "never")

	_, errs := BindReportRequest(formContext(t, form))
	assert.GreaterOrEqual(t, len(errs), 3, "all field errors should be reported at once")
}

func TestBindReportRequestNoEntries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	form := validForm()
	for _, key := range []string{"expense_date", "expense_category", "expense_amount", "expense_description", "income_date", "income_category", "income_amount"} {
		form.Del(key)
	}

	req, errs := BindReportRequest(formContext(t, form))
	require.Empty(t, errs)
	assert.Empty(t, req.Expenses)
	assert.Empty(t, req.Incomes)
}
