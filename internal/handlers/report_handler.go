package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gramiq/farmreport-api/internal/services"
	"github.com/gramiq/farmreport-api/pkg/logger"
)

type ReportHandler struct {
	reportSvc *services.ReportService
	exportSvc *services.ExportService
}

func NewReportHandler(reportSvc *services.ReportService, exportSvc *services.ExportService) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
		exportSvc: exportSvc,
	}
}

// @Summary Generate Farm Finance Report
// @Description Accepts one season's form submission and streams back the formatted report as a download
// @Tags Reports
// @Accept x-www-form-urlencoded
// @Produce application/pdf
// @Param format query string false "Report format (pdf, csv, xlsx)" default(pdf)
// @Param farmer_name formData string true "Farmer name"
// @Param crop_name formData string true "Crop name"
// @Param season formData string true "Season (e.g. Kharif, Rabi)"
// @Param total_acres formData number true "Total acres farmed"
// @Param total_production formData number false "Total production"
// @Param sowing_date formData string true "Sowing date (YYYY-MM-DD)"
// @Param harvest_date formData string true "Harvest date (YYYY-MM-DD)"
// @Param village formData string false "Village"
// @Param taluka formData string false "Taluka"
// @Param district formData string false "District"
// @Param state formData string false "State"
// @Param expense_date formData []string false "Expense dates" collectionFormat(multi)
// @Param expense_category formData []string false "Expense categories" collectionFormat(multi)
// @Param expense_amount formData []number false "Expense amounts" collectionFormat(multi)
// @Param expense_description formData []string false "Expense descriptions" collectionFormat(multi)
// @Param income_date formData []string false "Income dates" collectionFormat(multi)
// @Param income_category formData []string false "Income categories" collectionFormat(multi)
// @Param income_amount formData []number false "Income amounts" collectionFormat(multi)
// @Param income_description formData []string false "Income descriptions" collectionFormat(multi)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /reports/farm [post]
func (h *ReportHandler) Generate(c *gin.Context) {
	req, fieldErrs := BindReportRequest(c)
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid form submission",
			"fields": fieldErrs,
		})
		return
	}

	format := c.DefaultQuery("format", "pdf")

	var (
		data        []byte
		filename    string
		contentType string
		err         error
	)

	switch format {
	case "pdf":
		data, filename, err = h.reportSvc.GeneratePDF(c.Request.Context(), req)
		contentType = "application/pdf"
	case "csv":
		data, filename, err = h.exportSvc.ExportCSV(c.Request.Context(), req)
		contentType = "text/csv"
	case "xlsx":
		data, filename, err = h.exportSvc.ExportXLSX(c.Request.Context(), req)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid format (pdf, csv, xlsx)"})
		return
	}

	if err != nil {
		// Zero acreage is a user problem, everything else is ours.
		if errors.Is(err, services.ErrZeroAcreage) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "invalid form submission",
				"fields": []FieldError{{Field: "total_acres", Message: err.Error()}},
			})
			return
		}
		logger.Error("Report generation failed", "format", format, "crop", req.Profile.CropName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to generate %s report", format)})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
