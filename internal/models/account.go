package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus mirrors the account status enum in the accounts table.
type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountSuspended AccountStatus = "suspended"
)

// AccountType mirrors the account type enum in the accounts table.
type AccountType string

const (
	AccountIndividual AccountType = "individual"
	AccountShared     AccountType = "shared"
)

// Account is the DB-shaped representation of a bank account.
type Account struct {
	AccountID      string          `db:"account_id"`
	AccountNumber  string          `db:"account_number"` // Unique
	UserID         string          `db:"user_id"`
	Balance        decimal.Decimal `db:"balance"`
	Status         AccountStatus   `db:"status"`
	AccountType    AccountType     `db:"account_type"`
	CurrencyCode   string          `db:"currency_code"`
	OverdraftLimit decimal.Decimal `db:"overdraft_limit"`
	IsBankOwner    bool            `db:"is_bank_owner"` // Partial unique index keeps this a singleton
	OpenedAt       time.Time       `db:"opened_at"`
	AuditFields
}
