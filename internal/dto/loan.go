package dto

import (
	"time"

	"github.com/retailbank/bank_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RequestLoanRequest is the body for loan origination.
type RequestLoanRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	RepaymentPeriod int             `json:"repayment_period" binding:"required,min=1"`
}

// RequestLoanResponse reports the terms of a newly originated loan.
type RequestLoanResponse struct {
	LoanID         string          `json:"loan_id"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
}

// LoanResponse is the wire representation of a loan, including the derived
// payment schedule.
type LoanResponse struct {
	LoanID            string          `json:"loan_id"`
	CustomerAccountID string          `json:"customer_account_id"`
	Amount            decimal.Decimal `json:"amount"`
	RepaymentPeriod   int             `json:"repayment_period"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	Status            string          `json:"status"`
	PaymentDates      []time.Time     `json:"payment_dates,omitempty"`
}

// ToLoanResponse converts a domain.Loan to wire form. When withSchedule is
// set, the derived 30-day payment dates are included.
func ToLoanResponse(loan domain.Loan, withSchedule bool) LoanResponse {
	resp := LoanResponse{
		LoanID:            loan.LoanID,
		CustomerAccountID: loan.CustomerAccountID,
		Amount:            loan.Amount,
		RepaymentPeriod:   loan.RepaymentPeriod,
		MonthlyPayment:    loan.MonthlyPayment,
		StartDate:         loan.StartDate,
		EndDate:           loan.EndDate,
		Status:            string(loan.Status),
	}
	if withSchedule {
		resp.PaymentDates = loan.PaymentDates()
	}
	return resp
}

// ToLoanResponses converts a slice of loans to wire form.
func ToLoanResponses(loans []domain.Loan, withSchedule bool) []LoanResponse {
	res := make([]LoanResponse, len(loans))
	for i, loan := range loans {
		res[i] = ToLoanResponse(loan, withSchedule)
	}
	return res
}
