package domain

import (
	"github.com/shopspring/decimal"
)

// DashboardStats is the derived headline view for the dashboard.
// GrowthPercentage here is monthlyAccumulated relative to the current balance.
// It is a different metric from MonthlyReport.GrowthPercentage (net profit
// relative to the month's opening balance); the two are intentionally kept apart.
type DashboardStats struct {
	CurrentBalance     decimal.Decimal `json:"currentBalance"`
	DailyProfitLoss    decimal.Decimal `json:"dailyProfitLoss"`
	MonthlyAccumulated decimal.Decimal `json:"monthlyAccumulated"`
	GrowthPercentage   decimal.Decimal `json:"growthPercentage"`
	TotalTransactions  int             `json:"totalTransactions"`
}

// MonthlyReport is the aggregate gain/loss/growth summary for one calendar month.
type MonthlyReport struct {
	Month            string          `json:"month"` // Human-readable month label
	Year             int             `json:"year"`
	InitialValue     decimal.Decimal `json:"initialValue"` // Balance at the first instant of the month
	FinalValue       decimal.Decimal `json:"finalValue"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	GrowthPercentage decimal.Decimal `json:"growthPercentage"`
	TotalGains       decimal.Decimal `json:"totalGains"`
	TotalLosses      decimal.Decimal `json:"totalLosses"`
	TransactionCount int             `json:"transactionCount"`
}

// ChartPoint is one point of the balance-over-time series.
type ChartPoint struct {
	Date    string          `json:"date"` // DD/MM display string
	Balance decimal.Decimal `json:"balance"`
}
