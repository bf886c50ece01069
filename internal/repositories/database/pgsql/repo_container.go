package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/retailbank/bank_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the pgx-backed repository set over a shared
// connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		LedgerRepo:  newPgxLedgerRepository(dbPool),
		LoanRepo:    newPgxLoanRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
	}
}
