package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus mirrors the loan status enum in the loans table.
type LoanStatus string

const (
	LoanPending  LoanStatus = "pending"
	LoanApproved LoanStatus = "approved"
)

// Loan is the DB-shaped representation of a loan row.
type Loan struct {
	LoanID            string          `db:"loan_id"`
	CustomerAccountID string          `db:"customer_account_id"`
	Amount            decimal.Decimal `db:"amount"`
	RepaymentPeriod   int             `db:"repayment_period"`
	MonthlyPayment    decimal.Decimal `db:"monthly_payment"`
	StartDate         time.Time       `db:"start_date"`
	EndDate           time.Time       `db:"end_date"`
	Status            LoanStatus      `db:"status"`
	AuditFields
}
