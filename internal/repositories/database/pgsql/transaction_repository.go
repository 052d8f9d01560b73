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
	"github.com/daytrackapp/daytrack-backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) (models.Transaction, error) {
	date, err := time.Parse(domain.DateLayout, d.Date)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: invalid transaction date %q", apperrors.ErrValidation, d.Date)
	}
	return models.Transaction{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Date:          date,
		Kind:          string(d.Kind),
		Amount:        d.Amount,
		Note:          d.Note,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}, nil
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		// DATE columns scan as midnight instants; formatting the scanned
		// value yields the stored calendar date unchanged.
		Date:   m.Date.Format(domain.DateLayout),
		Kind:   domain.TransactionKind(m.Kind),
		Amount: m.Amount,
		Note:   m.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const transactionColumns = `transaction_id, account_id, date, kind, amount, note, created_at, last_updated_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.Date,
		&m.Kind,
		&m.Amount,
		&m.Note,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	txn := toDomainTransaction(m)
	return &txn, nil
}

// SaveTransaction inserts the transaction and applies the recomputed account
// balance in the same database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, newBalance decimal.Decimal) error {
	modelTxn, err := toModelTransaction(txn)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	insert := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, insert,
		modelTxn.TransactionID,
		modelTxn.AccountID,
		modelTxn.Date,
		modelTxn.Kind,
		modelTxn.Amount,
		modelTxn.Note,
		modelTxn.CreatedAt,
		modelTxn.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, modelTxn.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}

	if err := r.updateBalanceTx(ctx, tx, modelTxn.AccountID, newBalance, modelTxn.LastUpdatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	return scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
}

// ListTransactionsByAccount returns one page ordered by (date, created_at)
// descending. The next-page token encodes the sort key of the last row.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.Transaction, string, error) {
	if limit <= 0 {
		limit = 50
	}

	args := []any{accountID, limit}
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
	`
	if nextToken != "" {
		tokenDate, tokenCreatedAt, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (date, created_at) < ($3, $4)`
		args = append(args, tokenDate, tokenCreatedAt)
	}
	query += ` ORDER BY date DESC, created_at DESC LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0, limit)
	var lastDate, lastCreatedAt time.Time
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.AccountID,
			&m.Date,
			&m.Kind,
			&m.Amount,
			&m.Note,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, "", fmt.Errorf("failed to scan transaction row: %w", err)
		}
		lastDate, lastCreatedAt = m.Date, m.CreatedAt
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("failed reading transaction rows: %w", err)
	}

	token := ""
	if len(txns) == limit {
		token = pagination.EncodeToken(lastDate, lastCreatedAt)
	}
	return txns, token, nil
}

// FindAllTransactionsByAccount returns every transaction for the account,
// date ascending, for the metrics engine to fold over.
func (r *PgxTransactionRepository) FindAllTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		ORDER BY date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.AccountID,
			&m.Date,
			&m.Kind,
			&m.Amount,
			&m.Note,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}
	return txns, nil
}

// UpdateTransaction rewrites the transaction and applies the recomputed
// account balance atomically.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, newBalance decimal.Decimal) error {
	modelTxn, err := toModelTransaction(txn)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	update := `
		UPDATE transactions
		SET date = $2, kind = $3, amount = $4, note = $5, last_updated_at = $6
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, update,
		modelTxn.TransactionID,
		modelTxn.Date,
		modelTxn.Kind,
		modelTxn.Amount,
		modelTxn.Note,
		modelTxn.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", modelTxn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.updateBalanceTx(ctx, tx, modelTxn.AccountID, newBalance, modelTxn.LastUpdatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteTransaction removes the transaction and applies the recomputed
// account balance atomically.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, accountID string, newBalance decimal.Decimal, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1 AND account_id = $2;`, transactionID, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.updateBalanceTx(ctx, tx, accountID, newBalance, now); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) updateBalanceTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, now time.Time) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bank_accounts SET current_balance = $2, last_updated_at = $3 WHERE account_id = $1;`,
		accountID, newBalance, now,
	)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
