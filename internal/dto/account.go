package dto

import (
	"time"

	"github.com/retailbank/bank_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
// account_number is the only client-writable field; everything else is
// server-assigned. When omitted, a number is generated.
type CreateAccountRequest struct {
	AccountNumber string `json:"account_number" binding:"omitempty,max=20"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string          `json:"account_id"`
	AccountNumber  string          `json:"account_number"`
	UserID         string          `json:"user_id"`
	Balance        decimal.Decimal `json:"balance"`
	Status         string          `json:"status"`
	AccountType    string          `json:"account_type"`
	Currency       string          `json:"currency"`
	OverdraftLimit decimal.Decimal `json:"overdraft_limit"`
	OpenedAt       time.Time       `json:"date_opened"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		AccountNumber:  acc.AccountNumber,
		UserID:         acc.UserID,
		Balance:        acc.Balance,
		Status:         string(acc.Status),
		AccountType:    string(acc.AccountType),
		Currency:       acc.CurrencyCode,
		OverdraftLimit: acc.OverdraftLimit,
		OpenedAt:       acc.OpenedAt,
	}
}

// ToListAccountResponse converts a slice of accounts to wire form.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// DetailResponse carries a human-readable outcome or remediation message.
type DetailResponse struct {
	Detail string `json:"detail"`
}
