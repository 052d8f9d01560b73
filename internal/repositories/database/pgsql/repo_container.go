package pgsql

import (
	portsrepo "github.com/daytrackapp/daytrack-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider assembles all pgsql-backed repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(pool),
		AccountRepo:     newPgxAccountRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
	}
}
