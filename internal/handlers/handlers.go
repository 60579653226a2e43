package handlers

import (
	"github.com/gramiq/farmreport-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health *HealthHandler
	Report *ReportHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(),
		Report: NewReportHandler(svcs.Report, svcs.Export),
	}
}
