package services

import (
	"github.com/gramiq/farmreport-api/internal/assets"
	"github.com/gramiq/farmreport-api/internal/config"
)

// Services holds all service instances
type Services struct {
	Finance *FinanceService
	Chart   *ChartService
	Report  *ReportService
	Export  *ExportService
}

// NewServices creates all service instances
func NewServices(store *assets.Store, cfg *config.Config) *Services {
	financeSvc := NewFinanceService()
	chartSvc := NewChartService()

	return &Services{
		Finance: financeSvc,
		Chart:   chartSvc,
		Report:  NewReportService(financeSvc, chartSvc, store, cfg),
		Export:  NewExportService(financeSvc),
	}
}
