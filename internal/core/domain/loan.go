package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the administrative state of a loan. Disbursement happens at
// request time regardless of status; approval only flips the flag.
type LoanStatus string

const (
	LoanPending  LoanStatus = "pending"
	LoanApproved LoanStatus = "approved"
)

// MaxRepaymentPeriodMonths bounds loan repayment periods.
const MaxRepaymentPeriodMonths = 72

// Loan is a loan originated against the bank-owner reservoir account.
type Loan struct {
	LoanID            string          `json:"loanID"`            // Primary key (UUID)
	CustomerAccountID string          `json:"customerAccountID"` // FK -> accounts.account_id
	Amount            decimal.Decimal `json:"amount"`            // Principal
	RepaymentPeriod   int             `json:"repaymentPeriod"`   // Months, 1-72
	MonthlyPayment    decimal.Decimal `json:"monthlyPayment"`    // Amount / RepaymentPeriod
	StartDate         time.Time       `json:"startDate"`         // Immutable, set at creation
	EndDate           time.Time       `json:"endDate"`           // StartDate + 30*RepaymentPeriod days
	Status            LoanStatus      `json:"status"`
	AuditFields
}

// PaymentDates derives the schedule of repayment dates: one per month of the
// repayment period, spaced 30 days apart starting at StartDate. The schedule
// is not persisted.
func (l Loan) PaymentDates() []time.Time {
	dates := make([]time.Time, l.RepaymentPeriod)
	for i := 0; i < l.RepaymentPeriod; i++ {
		dates[i] = l.StartDate.AddDate(0, 0, 30*i)
	}
	return dates
}
