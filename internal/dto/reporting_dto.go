package dto

import (
	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse is the headline dashboard payload.
type DashboardStatsResponse struct {
	CurrentBalance     decimal.Decimal `json:"currentBalance"`
	DailyProfitLoss    decimal.Decimal `json:"dailyProfitLoss"`
	MonthlyAccumulated decimal.Decimal `json:"monthlyAccumulated"`
	GrowthPercentage   decimal.Decimal `json:"growthPercentage"`
	TotalTransactions  int             `json:"totalTransactions"`
}

// MonthlyReportResponse is the aggregate summary for one calendar month.
type MonthlyReportResponse struct {
	Month            string          `json:"month"`
	Year             int             `json:"year"`
	InitialValue     decimal.Decimal `json:"initialValue"`
	FinalValue       decimal.Decimal `json:"finalValue"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	GrowthPercentage decimal.Decimal `json:"growthPercentage"`
	TotalGains       decimal.Decimal `json:"totalGains"`
	TotalLosses      decimal.Decimal `json:"totalLosses"`
	TransactionCount int             `json:"transactionCount"`
}

// ChartPointResponse is one point of the balance-over-time series.
type ChartPointResponse struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// ChartSeriesResponse wraps the balance series.
type ChartSeriesResponse struct {
	Points []ChartPointResponse `json:"points"`
}

// ToDashboardStatsResponse converts domain stats to the response DTO.
func ToDashboardStatsResponse(stats *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		CurrentBalance:     stats.CurrentBalance,
		DailyProfitLoss:    stats.DailyProfitLoss,
		MonthlyAccumulated: stats.MonthlyAccumulated,
		GrowthPercentage:   stats.GrowthPercentage,
		TotalTransactions:  stats.TotalTransactions,
	}
}

// ToMonthlyReportResponse converts a domain monthly report to the response DTO.
func ToMonthlyReportResponse(report *domain.MonthlyReport) MonthlyReportResponse {
	return MonthlyReportResponse{
		Month:            report.Month,
		Year:             report.Year,
		InitialValue:     report.InitialValue,
		FinalValue:       report.FinalValue,
		NetProfit:        report.NetProfit,
		GrowthPercentage: report.GrowthPercentage,
		TotalGains:       report.TotalGains,
		TotalLosses:      report.TotalLosses,
		TransactionCount: report.TransactionCount,
	}
}

// ToMonthlyReportsResponse converts a slice of monthly reports.
func ToMonthlyReportsResponse(reports []domain.MonthlyReport) []MonthlyReportResponse {
	res := make([]MonthlyReportResponse, len(reports))
	for i, report := range reports {
		res[i] = ToMonthlyReportResponse(&report)
	}
	return res
}

// ToChartSeriesResponse converts the balance series.
func ToChartSeriesResponse(points []domain.ChartPoint) ChartSeriesResponse {
	res := ChartSeriesResponse{Points: make([]ChartPointResponse, len(points))}
	for i, point := range points {
		res.Points[i] = ChartPointResponse{Date: point.Date, Balance: point.Balance}
	}
	return res
}
