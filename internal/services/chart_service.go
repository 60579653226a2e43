package services

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Fixed bar colors: income and expense always map to the same two colors
// across every generated chart.
var (
	incomeBarColor  = drawing.ColorFromHex("4a90e2")
	expenseBarColor = drawing.ColorFromHex("e74c3c")
	barStrokeColor  = drawing.ColorFromHex("2c3e50")
)

// ChartService renders the income-vs-expense bar chart consumed by the
// report assembler. It depends on nothing but the two totals.
type ChartService struct{}

func NewChartService() *ChartService {
	return &ChartService{}
}

// Render produces a PNG image with two labeled bars for the given totals.
// Both-zero input is valid and renders flat bars against a fixed axis.
func (s *ChartService) Render(totalIncome, totalExpense float64) ([]byte, error) {
	maxValue := totalIncome
	if totalExpense > maxValue {
		maxValue = totalExpense
	}
	// Keep the axis non-degenerate when both totals are zero, and leave
	// headroom above the taller bar for its label.
	axisMax := maxValue * 1.1
	if axisMax <= 0 {
		axisMax = 1
	}

	graph := chart.BarChart{
		Title:    "Income vs Expense",
		Width:    700,
		Height:   560,
		BarWidth: 120,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		YAxis: chart.YAxis{
			Name: "Amount",
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: axisMax,
			},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return FormatAmount(f)
				}
				return ""
			},
		},
		Bars: []chart.Value{
			{
				Value: totalIncome,
				Label: fmt.Sprintf("Income (%s)", FormatAmount(totalIncome)),
				Style: chart.Style{
					FillColor:   incomeBarColor,
					StrokeColor: barStrokeColor,
					StrokeWidth: 1,
				},
			},
			{
				Value: totalExpense,
				Label: fmt.Sprintf("Expense (%s)", FormatAmount(totalExpense)),
				Style: chart.Style{
					FillColor:   expenseBarColor,
					StrokeColor: barStrokeColor,
					StrokeWidth: 1,
				},
			},
		},
	}

	buf := new(bytes.Buffer)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf.Bytes(), nil
}
