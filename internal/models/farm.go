package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Ledger entry kind constants. The direction of a movement is carried by
// the kind; amounts are always non-negative.
const (
	EntryKindExpense = "expense"
	EntryKindIncome  = "income"
)

// LedgerEntry represents a single expense or income movement within one
// cropping season. Entries carry no identity beyond the request that
// submitted them.
type LedgerEntry struct {
	Kind        string    `json:"kind"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
}

// KindLabel returns the display form of the entry kind for report tables
func (e *LedgerEntry) KindLabel() string {
	switch e.Kind {
	case EntryKindExpense:
		return "Expense"
	case EntryKindIncome:
		return "Income"
	}
	return e.Kind
}

// FarmProfile holds the farmer and crop metadata for one season
type FarmProfile struct {
	FarmerName      string     `json:"farmer_name"`
	CropName        string     `json:"crop_name"`
	Season          string     `json:"season"` // e.g. Kharif, Rabi
	TotalAcres      float64    `json:"total_acres"`
	TotalProduction *float64   `json:"total_production,omitempty"`
	SowingDate      time.Time  `json:"sowing_date"`
	HarvestDate     time.Time  `json:"harvest_date"`
	Village         string     `json:"village,omitempty"`
	Taluka          string     `json:"taluka,omitempty"`
	District        string     `json:"district,omitempty"`
	State           string     `json:"state,omitempty"`
}

// Location joins the non-empty location parts with commas. Optional parts
// that were not submitted are omitted, not zero-filled.
func (p *FarmProfile) Location() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{p.Village, p.Taluka, p.District, p.State} {
		if s := strings.TrimSpace(part); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// AcresLabel formats the acreage without trailing zeros ("2" for 2.0,
// "2.5" for 2.50).
func (p *FarmProfile) AcresLabel() string {
	return strconv.FormatFloat(p.TotalAcres, 'f', -1, 64)
}

// ReportYear is the season year shown in titles and filenames, derived
// from the harvest date (sowing date when harvest is unset).
func (p *FarmProfile) ReportYear() int {
	if p.HarvestDate.IsZero() {
		return p.SowingDate.Year()
	}
	return p.HarvestDate.Year()
}

// ReportTitle builds the document title: <crop>_<acres>_<season>_<year>
func (p *FarmProfile) ReportTitle() string {
	return fmt.Sprintf("%s_%s_%s_%d", p.CropName, p.AcresLabel(), p.Season, p.ReportYear())
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileBase returns the report title sanitized for use as a download
// filename (without extension).
func (p *FarmProfile) FileBase() string {
	return unsafeFilenameChars.ReplaceAllString(p.ReportTitle(), "-")
}

// ReportRequest is the unit of work for one report generation: a profile
// plus the expense and income entries in submission order.
type ReportRequest struct {
	Profile  FarmProfile   `json:"profile"`
	Expenses []LedgerEntry `json:"expenses"`
	Incomes  []LedgerEntry `json:"incomes"`
}

// FinancialSummary holds the derived season aggregates. It is computed
// per request and never stored.
type FinancialSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	ProfitLoss   float64 `json:"profit_loss"`   // signed, negative on loss
	CostPerAcre  float64 `json:"cost_per_acre"` // total expense / total acres
}
