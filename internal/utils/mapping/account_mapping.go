package mapping

import (
	"github.com/retailbank/bank_backend/internal/core/domain"
	"github.com/retailbank/bank_backend/internal/models"
)

// ToModelAccount converts a domain.Account to its DB representation.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		AccountNumber:  d.AccountNumber,
		UserID:         d.UserID,
		Balance:        d.Balance,
		Status:         models.AccountStatus(d.Status),
		AccountType:    models.AccountType(d.AccountType),
		CurrencyCode:   d.CurrencyCode,
		OverdraftLimit: d.OverdraftLimit,
		IsBankOwner:    d.IsBankOwner,
		OpenedAt:       d.OpenedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a DB account row to its domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		AccountNumber:  m.AccountNumber,
		UserID:         m.UserID,
		Balance:        m.Balance,
		Status:         domain.AccountStatus(m.Status),
		AccountType:    domain.AccountType(m.AccountType),
		CurrencyCode:   m.CurrencyCode,
		OverdraftLimit: m.OverdraftLimit,
		IsBankOwner:    m.IsBankOwner,
		OpenedAt:       m.OpenedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
