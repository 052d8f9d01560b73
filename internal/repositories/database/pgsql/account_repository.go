package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/apperrors"
	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	portsrepo "github.com/daytrackapp/daytrack-backend/internal/core/ports/repositories"
	"github.com/daytrackapp/daytrack-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for bank account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func toModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		AccountID:      d.AccountID,
		UserID:         d.UserID,
		CurrentBalance: d.CurrentBalance,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		AccountID:      m.AccountID,
		UserID:         m.UserID,
		CurrentBalance: m.CurrentBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveAccount inserts a new bank account. The unique index on user_id
// enforces the one-account-per-user rule at the storage layer too.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.BankAccount) error {
	modelAcc := toModelBankAccount(account)

	query := `
		INSERT INTO bank_accounts (account_id, user_id, current_balance, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.UserID,
		modelAcc.CurrentBalance,
		modelAcc.CreatedAt,
		modelAcc.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: user %s already has a bank account", apperrors.ErrDuplicate, modelAcc.UserID)
		}
		return fmt.Errorf("failed to save bank account %s: %w", modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves a bank account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	query := `
		SELECT account_id, user_id, current_balance, created_at, last_updated_at
		FROM bank_accounts
		WHERE account_id = $1;
	`
	return r.scanOne(ctx, query, accountID)
}

// FindAccountByUserID retrieves the single bank account owned by a user.
func (r *PgxAccountRepository) FindAccountByUserID(ctx context.Context, userID string) (*domain.BankAccount, error) {
	query := `
		SELECT account_id, user_id, current_balance, created_at, last_updated_at
		FROM bank_accounts
		WHERE user_id = $1;
	`
	return r.scanOne(ctx, query, userID)
}

func (r *PgxAccountRepository) scanOne(ctx context.Context, query string, arg any) (*domain.BankAccount, error) {
	var modelAcc models.BankAccount
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelAcc.AccountID,
		&modelAcc.UserID,
		&modelAcc.CurrentBalance,
		&modelAcc.CreatedAt,
		&modelAcc.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank account: %w", err)
	}
	acc := toDomainBankAccount(modelAcc)
	return &acc, nil
}

// UpdateAccountBalance sets a new current balance on the account.
func (r *PgxAccountRepository) UpdateAccountBalance(ctx context.Context, accountID string, newBalance decimal.Decimal, now time.Time) error {
	query := `
		UPDATE bank_accounts
		SET current_balance = $2, last_updated_at = $3
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, newBalance, now)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
