package mapping

import (
	"github.com/retailbank/bank_backend/internal/core/domain"
	"github.com/retailbank/bank_backend/internal/models"
)

// ToModelLoan converts a domain.Loan to its DB representation.
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:            d.LoanID,
		CustomerAccountID: d.CustomerAccountID,
		Amount:            d.Amount,
		RepaymentPeriod:   d.RepaymentPeriod,
		MonthlyPayment:    d.MonthlyPayment,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		Status:            models.LoanStatus(d.Status),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoan converts a DB loan row to its domain representation.
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:            m.LoanID,
		CustomerAccountID: m.CustomerAccountID,
		Amount:            m.Amount,
		RepaymentPeriod:   m.RepaymentPeriod,
		MonthlyPayment:    m.MonthlyPayment,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		Status:            domain.LoanStatus(m.Status),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
