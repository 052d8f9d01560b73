package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/apperrors"
	portssvc "github.com/daytrackapp/daytrack-backend/internal/core/ports/services"
	"github.com/daytrackapp/daytrack-backend/internal/dto"
	"github.com/daytrackapp/daytrack-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for derived financial metrics.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboardStats)
		reports.GET("/monthly", h.listMonthlyReports)
		reports.GET("/monthly/:year/:month", h.getMonthlyReport)
		reports.GET("/chart", h.getBalanceSeries)
		reports.GET("/chart.png", h.getBalanceChartPNG)
	}
}

// respondReportingError maps service errors to HTTP responses shared by all
// reporting endpoints.
func respondReportingError(c *gin.Context, err error, msg string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account not set up yet"})
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Error(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}

// getDashboardStats godoc
// @Summary Dashboard stats
// @Description Returns today's P/L, the running monthly total and the growth percentage for the logged-in user
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not set up yet"
// @Failure 500 {object} ErrorResponse "Failed to compute dashboard stats"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboardStats(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	stats, err := h.reportingService.DashboardStats(c.Request.Context(), userID)
	if err != nil {
		respondReportingError(c, err, "Failed to compute dashboard stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}

// listMonthlyReports godoc
// @Summary Monthly reports
// @Description Returns one report per month carrying at least one transaction, newest first
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.MonthlyReportResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not set up yet"
// @Failure 500 {object} ErrorResponse "Failed to compute monthly reports"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) listMonthlyReports(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reports, err := h.reportingService.MonthlyReports(c.Request.Context(), userID)
	if err != nil {
		respondReportingError(c, err, "Failed to compute monthly reports")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyReportsResponse(reports))
}

// getMonthlyReport godoc
// @Summary Monthly report for a specific month
// @Description Returns the report for the given calendar month, including months without transactions
// @Tags reports
// @Produce  json
// @Param   year path int true "Year (e.g. 2025)"
// @Param   month path int true "Month (1-12)"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} ErrorResponse "Invalid year or month"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not set up yet"
// @Failure 500 {object} ErrorResponse "Failed to compute monthly report"
// @Security BearerAuth
// @Router /reports/monthly/{year}/{month} [get]
func (h *reportingHandler) getMonthlyReport(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	year, errY := strconv.Atoi(c.Param("year"))
	month, errM := strconv.Atoi(c.Param("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 || year < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year or month"})
		return
	}

	report, err := h.reportingService.MonthlyReport(c.Request.Context(), userID, time.Month(month), year)
	if err != nil {
		respondReportingError(c, err, "Failed to compute monthly report")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(report))
}

// getBalanceSeries godoc
// @Summary Balance over time
// @Description Returns the balance-over-time chart series for the logged-in user
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.ChartSeriesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not set up yet"
// @Failure 500 {object} ErrorResponse "Failed to compute balance series"
// @Security BearerAuth
// @Router /reports/chart [get]
func (h *reportingHandler) getBalanceSeries(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	points, err := h.reportingService.BalanceSeries(c.Request.Context(), userID)
	if err != nil {
		respondReportingError(c, err, "Failed to compute balance series")
		return
	}

	c.JSON(http.StatusOK, dto.ToChartSeriesResponse(points))
}

// getBalanceChartPNG godoc
// @Summary Balance chart image
// @Description Renders the balance-over-time series as a PNG image
// @Tags reports
// @Produce  png
// @Success 200 {file} binary
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not set up yet"
// @Failure 500 {object} ErrorResponse "Failed to render chart"
// @Security BearerAuth
// @Router /reports/chart.png [get]
func (h *reportingHandler) getBalanceChartPNG(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	png, err := h.reportingService.RenderBalanceChart(c.Request.Context(), userID)
	if err != nil {
		respondReportingError(c, err, "Failed to render chart")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
