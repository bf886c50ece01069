package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle state of a bank account.
type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountSuspended AccountStatus = "suspended"
)

// AccountType distinguishes individually held accounts from shared ones.
type AccountType string

const (
	AccountIndividual AccountType = "individual"
	AccountShared     AccountType = "shared"
)

// Account represents a bank account within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID      string          `json:"accountID"`     // Primary key (UUID)
	AccountNumber  string          `json:"accountNumber"` // Unique, immutable, human-facing
	UserID         string          `json:"userID"`        // FK -> users.user_id (owner)
	Balance        decimal.Decimal `json:"balance"`       // Signed; may go negative only while active
	Status         AccountStatus   `json:"status"`
	AccountType    AccountType     `json:"accountType"`
	CurrencyCode   string          `json:"currencyCode"`   // ISO 4217 code
	OverdraftLimit decimal.Decimal `json:"overdraftLimit"` // >= 0; recorded but not enforced on withdrawals
	IsBankOwner    bool            `json:"isBankOwner"`    // Exactly one such account exists system-wide
	OpenedAt       time.Time       `json:"openedAt"`       // Immutable
	AuditFields
}

// IsActive reports whether the account may transact.
func (a Account) IsActive() bool {
	return a.Status == AccountActive
}
