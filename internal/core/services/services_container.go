package services

import (
	portsrepo "github.com/retailbank/bank_backend/internal/core/ports/repositories"
	portssvc "github.com/retailbank/bank_backend/internal/core/ports/services"
)

// NewServiceContainer wires the service implementations over the repository
// provider and external collaborators.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, rateProvider portssvc.RateProviderSvcFacade) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos.AccountRepo, repos.LoanRepo),
		Ledger:  NewLedgerService(repos.AccountRepo, repos.LedgerRepo, rateProvider),
		Loan:    NewLoanService(repos.AccountRepo, repos.LoanRepo),
		User:    NewUserService(repos.UserRepo, repos.AccountRepo),
	}
}
