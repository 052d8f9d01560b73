package services

import (
	"context"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
)

// ReportingSvcFacade exposes the derived financial metrics for a user's
// account. All results are computed fresh on every call by the metrics
// engine; nothing is cached or persisted.
type ReportingSvcFacade interface {
	DashboardStats(ctx context.Context, userID string) (*domain.DashboardStats, error)

	// MonthlyReports returns one report per calendar month that carries at
	// least one transaction, newest first.
	MonthlyReports(ctx context.Context, userID string) ([]domain.MonthlyReport, error)

	// MonthlyReport returns the report for one specific month, including
	// months without transactions.
	MonthlyReport(ctx context.Context, userID string, month time.Month, year int) (*domain.MonthlyReport, error)

	BalanceSeries(ctx context.Context, userID string) ([]domain.ChartPoint, error)

	// RenderBalanceChart renders the balance series as a PNG image.
	RenderBalanceChart(ctx context.Context, userID string) ([]byte, error)
}
