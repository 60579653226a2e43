package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gramiq/farmreport-api/internal/models"
)

// FieldError describes one invalid or missing form field. Validation
// failures are reported per field so the form can highlight them.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Accepted date layouts: ISO first, then the DD-MM-YYYY form older
// clients submit.
var dateLayouts = []string{"2006-01-02", "02-01-2006"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// BindReportRequest parses a form-encoded submission into a fully
// validated ReportRequest. On any validation failure it returns the
// complete list of field errors instead; a partially valid request never
// reaches the aggregation pipeline.
func BindReportRequest(c *gin.Context) (*models.ReportRequest, []FieldError) {
	var errs []FieldError
	fail := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	profile := models.FarmProfile{
		FarmerName: strings.TrimSpace(c.PostForm("farmer_name")),
		CropName:   strings.TrimSpace(c.PostForm("crop_name")),
		Season:     strings.TrimSpace(c.PostForm("season")),
		Village:    strings.TrimSpace(c.PostForm("village")),
		Taluka:     strings.TrimSpace(c.PostForm("taluka")),
		District:   strings.TrimSpace(c.PostForm("district")),
		State:      strings.TrimSpace(c.PostForm("state")),
	}

	if profile.FarmerName == "" {
		fail("farmer_name", "farmer name is required")
	}
	if profile.CropName == "" {
		fail("crop_name", "crop name is required")
	}
	if profile.Season == "" {
		fail("season", "season is required")
	}

	switch acresStr := strings.TrimSpace(c.PostForm("total_acres")); {
	case acresStr == "":
		fail("total_acres", "total acres is required")
	default:
		acres, err := strconv.ParseFloat(acresStr, 64)
		switch {
		case err != nil:
			fail("total_acres", "total acres must be a number")
		case acres <= 0:
			fail("total_acres", "total acres must be greater than zero")
		default:
			profile.TotalAcres = acres
		}
	}

	if prodStr := strings.TrimSpace(c.PostForm("total_production")); prodStr != "" {
		prod, err := strconv.ParseFloat(prodStr, 64)
		switch {
		case err != nil:
			fail("total_production", "total production must be a number")
		case prod < 0:
			fail("total_production", "total production cannot be negative")
		default:
			profile.TotalProduction = &prod
		}
	}

	profile.SowingDate = bindDateField(c, "sowing_date", fail)
	profile.HarvestDate = bindDateField(c, "harvest_date", fail)
	if !profile.SowingDate.IsZero() && !profile.HarvestDate.IsZero() && profile.HarvestDate.Before(profile.SowingDate) {
		fail("harvest_date", "harvest date cannot be before sowing date")
	}

	expenses := bindEntries(c, "expense", models.EntryKindExpense, fail)
	incomes := bindEntries(c, "income", models.EntryKindIncome, fail)

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.ReportRequest{
		Profile:  profile,
		Expenses: expenses,
		Incomes:  incomes,
	}, nil
}

func bindDateField(c *gin.Context, field string, fail func(field, message string)) time.Time {
	value := strings.TrimSpace(c.PostForm(field))
	if value == "" {
		fail(field, strings.ReplaceAll(field, "_", " ")+" is required")
		return time.Time{}
	}
	t, err := parseDate(value)
	if err != nil {
		fail(field, strings.ReplaceAll(field, "_", " ")+" must be a valid date (YYYY-MM-DD)")
		return time.Time{}
	}
	return t
}

// bindEntries collects one repeated form group (expense_* or income_*)
// into ledger entries, preserving submission order. The date, category
// and amount arrays of a group must be equally long; descriptions are
// optional.
func bindEntries(c *gin.Context, prefix, kind string, fail func(field, message string)) []models.LedgerEntry {
	dates := c.PostFormArray(prefix + "_date")
	categories := c.PostFormArray(prefix + "_category")
	amounts := c.PostFormArray(prefix + "_amount")
	descriptions := c.PostFormArray(prefix + "_description")

	if len(categories) != len(dates) || len(amounts) != len(dates) {
		fail(prefix+"_date", fmt.Sprintf("%s entries are incomplete: dates, categories and amounts must align", prefix))
		return nil
	}

	entries := make([]models.LedgerEntry, 0, len(dates))
	for i := range dates {
		entry := models.LedgerEntry{Kind: kind}
		valid := true

		date, err := parseDate(strings.TrimSpace(dates[i]))
		if err != nil {
			fail(fmt.Sprintf("%s_date[%d]", prefix, i), "must be a valid date (YYYY-MM-DD)")
			valid = false
		}
		entry.Date = date

		entry.Category = strings.TrimSpace(categories[i])
		if entry.Category == "" {
			fail(fmt.Sprintf("%s_category[%d]", prefix, i), "category is required")
			valid = false
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(amounts[i]), 64)
		switch {
		case err != nil:
			fail(fmt.Sprintf("%s_amount[%d]", prefix, i), "must be a number")
			valid = false
		case amount < 0:
			fail(fmt.Sprintf("%s_amount[%d]", prefix, i), "cannot be negative")
			valid = false
		default:
			entry.Amount = amount
		}

		if i < len(descriptions) {
			entry.Description = strings.TrimSpace(descriptions[i])
		}

		if valid {
			entries = append(entries, entry)
		}
	}

	return entries
}
