package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service container.
type RepositoryProvider struct {
	AccountRepo AccountRepository
	LedgerRepo  LedgerRepository
	LoanRepo    LoanRepository
	UserRepo    UserRepository
}
