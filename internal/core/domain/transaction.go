package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger transaction record.
type TransactionType string

const (
	Deposit     TransactionType = "deposit"
	Withdrawal  TransactionType = "withdrawal"
	TransferOut TransactionType = "transfer-out"
	TransferIn  TransactionType = "transfer-in"
)

// Transaction is an append-only record of a balance mutation on one account.
// Amount is always positive, in the account's currency, and records the
// principal only; the fixed fee on withdrawals and outbound transfers is not
// recorded separately.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary key (UUID)
	AccountID     string          `json:"accountID"`     // FK -> accounts.account_id (owner of record)
	UserID        *string         `json:"userID"`        // Acting user; nullable
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	Timestamp     time.Time       `json:"timestamp"` // Server-assigned at creation, immutable
}
