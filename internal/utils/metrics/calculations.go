// Package metrics derives all reporting data for a bank account from its
// current balance and transaction list. Every function is a pure transform:
// no I/O, no hidden state, recomputed from scratch on every call.
//
// The account stores only its present-day balance, so historical values are
// reconstructed by reversing transactions out of it (InitialBalance) and then
// folding sub-periods forward. Dates are compared and grouped as plain
// YYYY-MM-DD strings throughout; parsing them into time instants would let
// the host timezone shift a transaction across a day boundary.
package metrics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/apperrors"
	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ValidateTransaction rejects transactions the engine must not fold:
// unparseable dates, unknown kinds, and negative amounts.
func ValidateTransaction(txn domain.Transaction) error {
	if _, err := time.Parse(domain.DateLayout, txn.Date); err != nil {
		return fmt.Errorf("%w: invalid transaction date %q, expected YYYY-MM-DD", apperrors.ErrValidation, txn.Date)
	}
	if txn.Kind != domain.TransactionKindGain && txn.Kind != domain.TransactionKindLoss {
		return fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, txn.Kind)
	}
	if txn.Amount.IsNegative() {
		return fmt.Errorf("%w: transaction amount must not be negative, got %s", apperrors.ErrValidation, txn.Amount)
	}
	return nil
}

// InitialBalance reconstructs the implied opening balance by reversing every
// transaction out of the current balance: gains are subtracted back out,
// losses added back in. Forward-folding all transactions onto the result
// reproduces currentBalance exactly.
func InitialBalance(currentBalance decimal.Decimal, transactions []domain.Transaction) decimal.Decimal {
	initial := currentBalance
	for _, txn := range transactions {
		initial = initial.Sub(txn.SignedAmount())
	}
	return initial
}

// DailyProfitLoss folds the transactions whose calendar date equals date.
// Returns zero when no transaction matches.
func DailyProfitLoss(transactions []domain.Transaction, date string) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		if txn.Date == date {
			total = total.Add(txn.SignedAmount())
		}
	}
	return total
}

// MonthlyAccumulated folds the transactions whose calendar month and year
// match the given month/year.
func MonthlyAccumulated(transactions []domain.Transaction, month time.Month, year int) decimal.Decimal {
	prefix := monthPrefix(month, year)
	total := decimal.Zero
	for _, txn := range transactions {
		if strings.HasPrefix(txn.Date, prefix) {
			total = total.Add(txn.SignedAmount())
		}
	}
	return total
}

// GrowthPercentage computes ((final - initial) / initial) * 100.
// Defined as exactly zero when initial is zero; a brand-new account has no
// meaningful growth baseline, and this policy keeps the result finite.
func GrowthPercentage(initial, final decimal.Decimal) decimal.Decimal {
	if initial.IsZero() {
		return decimal.Zero
	}
	return final.Sub(initial).Div(initial).Mul(hundred)
}

// BuildMonthlyReport aggregates one calendar month: gains, losses, net
// profit, the balance at the first instant of the month (reconstructed from
// the global initial balance plus everything strictly before the month), and
// growth over the month. A month with no transactions yields a zero report
// anchored at its opening balance.
func BuildMonthlyReport(account domain.BankAccount, transactions []domain.Transaction, month time.Month, year int) domain.MonthlyReport {
	prefix := monthPrefix(month, year)
	monthStart := prefix + "01"

	totalGains := decimal.Zero
	totalLosses := decimal.Zero
	transactionCount := 0
	beforeMonth := decimal.Zero

	for _, txn := range transactions {
		switch {
		case strings.HasPrefix(txn.Date, prefix):
			transactionCount++
			if txn.Kind == domain.TransactionKindGain {
				totalGains = totalGains.Add(txn.Amount)
			} else {
				totalLosses = totalLosses.Add(txn.Amount)
			}
		case txn.Date < monthStart:
			beforeMonth = beforeMonth.Add(txn.SignedAmount())
		}
	}

	netProfit := totalGains.Sub(totalLosses)
	initialValueForMonth := InitialBalance(account.CurrentBalance, transactions).Add(beforeMonth)
	finalValue := initialValueForMonth.Add(netProfit)

	return domain.MonthlyReport{
		Month:            month.String(),
		Year:             year,
		InitialValue:     initialValueForMonth,
		FinalValue:       finalValue,
		NetProfit:        netProfit,
		GrowthPercentage: GrowthPercentage(initialValueForMonth, finalValue),
		TotalGains:       totalGains,
		TotalLosses:      totalLosses,
		TransactionCount: transactionCount,
	}
}

// BuildDashboardStats derives the headline dashboard figures as of the given
// calendar date. The growth figure is the month's accumulated P/L relative to
// the current balance; it is not the same metric as the monthly report's
// growth and must not be unified with it.
func BuildDashboardStats(account domain.BankAccount, transactions []domain.Transaction, asOf string) domain.DashboardStats {
	daily := DailyProfitLoss(transactions, asOf)

	monthly := decimal.Zero
	if month, year, ok := monthOf(asOf); ok {
		monthly = MonthlyAccumulated(transactions, month, year)
	}

	growth := decimal.Zero
	if account.CurrentBalance.IsPositive() && !monthly.IsZero() {
		growth = monthly.Div(account.CurrentBalance).Mul(hundred)
	}

	return domain.DashboardStats{
		CurrentBalance:     account.CurrentBalance,
		DailyProfitLoss:    daily,
		MonthlyAccumulated: monthly,
		GrowthPercentage:   growth,
		TotalTransactions:  len(transactions),
	}
}

// BuildBalanceSeries produces the ordered balance-over-time series: the
// account creation date anchors the series at the reconstructed initial
// balance, and every distinct transaction date contributes one point holding
// the balance after that day's transactions. Days without transactions are
// not interpolated.
func BuildBalanceSeries(account domain.BankAccount, transactions []domain.Transaction) []domain.ChartPoint {
	running := InitialBalance(account.CurrentBalance, transactions)

	byDate := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		byDate[txn.Date] = byDate[txn.Date].Add(txn.SignedAmount())
	}

	creationDate := account.CreatedAt.Format(domain.DateLayout)
	dates := make([]string, 0, len(byDate)+1)
	if _, ok := byDate[creationDate]; !ok {
		dates = append(dates, creationDate)
	}
	for date := range byDate {
		dates = append(dates, date)
	}
	// Lexical order is chronological order for YYYY-MM-DD strings.
	sort.Strings(dates)

	points := make([]domain.ChartPoint, 0, len(dates))
	for _, date := range dates {
		if change, ok := byDate[date]; ok {
			running = running.Add(change)
		}
		points = append(points, domain.ChartPoint{
			Date:    displayDate(date),
			Balance: running,
		})
	}
	return points
}

// TransactionMonths returns the distinct (year, month) pairs that carry at
// least one transaction, in ascending calendar order. Callers use it to
// decide which monthly reports to assemble.
func TransactionMonths(transactions []domain.Transaction) []time.Time {
	seen := make(map[string]bool)
	prefixes := make([]string, 0)
	for _, txn := range transactions {
		if len(txn.Date) < 7 {
			continue
		}
		prefix := txn.Date[:7]
		if !seen[prefix] {
			seen[prefix] = true
			prefixes = append(prefixes, prefix)
		}
	}
	sort.Strings(prefixes)

	months := make([]time.Time, 0, len(prefixes))
	for _, prefix := range prefixes {
		year, errY := strconv.Atoi(prefix[:4])
		month, errM := strconv.Atoi(prefix[5:7])
		if errY != nil || errM != nil || month < 1 || month > 12 {
			continue
		}
		months = append(months, time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
	}
	return months
}

func monthPrefix(month time.Month, year int) string {
	return fmt.Sprintf("%04d-%02d-", year, int(month))
}

// monthOf extracts calendar month/year fields from a YYYY-MM-DD string
// without interpreting it as a time instant.
func monthOf(date string) (time.Month, int, bool) {
	if len(date) < 7 || date[4] != '-' {
		return 0, 0, false
	}
	year, errY := strconv.Atoi(date[:4])
	month, errM := strconv.Atoi(date[5:7])
	if errY != nil || errM != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return time.Month(month), year, true
}

// displayDate converts YYYY-MM-DD to the DD/MM label the chart uses.
func displayDate(date string) string {
	if len(date) < 10 {
		return date
	}
	return date[8:10] + "/" + date[5:7]
}
