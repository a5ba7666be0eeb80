package controllers

import (
	"net/http"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{Service: service}
}

func (rc *ReportController) GetDashboard(c *gin.Context) {
	stats, err := rc.Service.GetDashboardStats()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

func (rc *ReportController) GetBalanceSheet(c *gin.Context) {
	sheet, err := rc.Service.GetBalanceSheet()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, sheet)
}
