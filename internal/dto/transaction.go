package dto

import (
	"time"

	"github.com/retailbank/bank_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountRequest is the body for deposit and withdraw operations.
// Currency defaults to USD when omitted. Amount positivity is a business rule
// checked by the ledger service, not the binding layer.
type AmountRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" binding:"omitempty,currency"`
}

// TransferRequest is the body for transfer operations.
type TransferRequest struct {
	TargetAccountNumber string          `json:"target_account_number" binding:"required"`
	Amount              decimal.Decimal `json:"amount"`
	Currency            string          `json:"currency" binding:"omitempty,currency"`
}

// OperationResponse reports a successful balance mutation.
// shopspring decimals marshal as quoted strings, so monetary fields keep
// exact precision on the wire.
type OperationResponse struct {
	Detail     string          `json:"detail"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// BalanceResponse reports an account balance.
type BalanceResponse struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// TransactionResponse is the wire representation of a transaction record.
type TransactionResponse struct {
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	UserID        *string         `json:"user_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"transaction_type"`
	Timestamp     time.Time       `json:"timestamp"`
}

// ToTransactionResponse converts a domain.Transaction to its wire form.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		UserID:        txn.UserID,
		Amount:        txn.Amount,
		Type:          string(txn.Type),
		Timestamp:     txn.Timestamp,
	}
}

// ToTransactionResponses converts a slice of transactions to wire form.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn)
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"next_token"`
}

// ListTransactionsResponse wraps a transaction page with its pagination token.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"next_token,omitempty"`
}
