package services

import (
	"context"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	portsrepo "github.com/daytrackapp/daytrack-backend/internal/core/ports/repositories"
	portssvc "github.com/daytrackapp/daytrack-backend/internal/core/ports/services"
	"github.com/daytrackapp/daytrack-backend/internal/utils/chartrender"
	"github.com/daytrackapp/daytrack-backend/internal/utils/metrics"
)

// reportingService implements the ReportingSvcFacade. All figures are derived
// on demand from the account balance and the full transaction list; nothing
// is cached or persisted.
type reportingService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewReportingService creates a new instance of reportingService.
func NewReportingService(accountRepo portsrepo.AccountRepositoryFacade, transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// loadAccountAndTransactions fetches the user's account together with its
// complete transaction history, the inputs every derivation needs.
func (s *reportingService) loadAccountAndTransactions(ctx context.Context, userID string) (*domain.BankAccount, []domain.Transaction, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	transactions, err := s.transactionRepo.FindAllTransactionsByAccount(ctx, account.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for reporting", "account_id", account.AccountID)
		return nil, nil, err
	}

	return account, transactions, nil
}

// DashboardStats returns today's P/L, the running monthly total and the
// growth percentage relative to the current balance.
func (s *reportingService) DashboardStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	account, transactions, err := s.loadAccountAndTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	asOf := time.Now().Format(domain.DateLayout)
	stats := metrics.BuildDashboardStats(*account, transactions, asOf)
	return &stats, nil
}

// MonthlyReports returns one report per calendar month that carries at least
// one transaction, newest first.
func (s *reportingService) MonthlyReports(ctx context.Context, userID string) ([]domain.MonthlyReport, error) {
	account, transactions, err := s.loadAccountAndTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	months := metrics.TransactionMonths(transactions)
	reports := make([]domain.MonthlyReport, 0, len(months))
	for i := len(months) - 1; i >= 0; i-- {
		reports = append(reports, metrics.BuildMonthlyReport(*account, transactions, months[i].Month(), months[i].Year()))
	}
	return reports, nil
}

// MonthlyReport returns the report for one specific month. Months without
// transactions yield a report with zero activity.
func (s *reportingService) MonthlyReport(ctx context.Context, userID string, month time.Month, year int) (*domain.MonthlyReport, error) {
	account, transactions, err := s.loadAccountAndTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := metrics.BuildMonthlyReport(*account, transactions, month, year)
	return &report, nil
}

// BalanceSeries returns the balance-over-time chart points.
func (s *reportingService) BalanceSeries(ctx context.Context, userID string) ([]domain.ChartPoint, error) {
	account, transactions, err := s.loadAccountAndTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	return metrics.BuildBalanceSeries(*account, transactions), nil
}

// RenderBalanceChart renders the balance series as a PNG image.
func (s *reportingService) RenderBalanceChart(ctx context.Context, userID string) ([]byte, error) {
	series, err := s.BalanceSeries(ctx, userID)
	if err != nil {
		return nil, err
	}

	png, err := chartrender.RenderBalanceChart(series)
	if err != nil {
		s.LogError(ctx, err, "Failed to render balance chart")
		return nil, err
	}
	return png, nil
}
