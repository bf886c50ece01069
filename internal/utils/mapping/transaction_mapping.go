package mapping

import (
	"github.com/retailbank/bank_backend/internal/core/domain"
	"github.com/retailbank/bank_backend/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its DB representation.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		UserID:        d.UserID,
		Amount:        d.Amount,
		Type:          models.TransactionType(d.Type),
		Timestamp:     d.Timestamp,
	}
}

// ToDomainTransaction converts a DB transaction row to its domain representation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.Type),
		Timestamp:     m.Timestamp,
	}
}
