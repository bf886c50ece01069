package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the transaction type enum in the transactions table.
type TransactionType string

const (
	Deposit     TransactionType = "deposit"
	Withdrawal  TransactionType = "withdrawal"
	TransferOut TransactionType = "transfer-out"
	TransferIn  TransactionType = "transfer-in"
)

// Transaction is the DB-shaped representation of a ledger transaction record.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	UserID        *string         `db:"user_id"` // Nullable acting user
	Amount        decimal.Decimal `db:"amount"`
	Type          TransactionType `db:"transaction_type"`
	Timestamp     time.Time       `db:"timestamp"`
}
