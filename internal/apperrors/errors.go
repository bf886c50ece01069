package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks permission for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the operation conflicts with the current resource state.
var ErrConflict = errors.New("conflict with current state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// Ledger operation errors.
var (
	// ErrInvalidAmount indicates a non-positive or unparseable monetary amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidRequestFormat indicates a malformed request payload rejected at the boundary.
	ErrInvalidRequestFormat = errors.New("invalid request format")

	// ErrAccountNotActive indicates the account is suspended and cannot transact.
	ErrAccountNotActive = errors.New("account is not active")

	// ErrInsufficientFunds indicates the balance cannot cover the amount plus fee.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrTargetNotFound indicates no account exists with the given account number.
	ErrTargetNotFound = errors.New("target account not found")

	// ErrTargetInactive indicates the transfer target account is not active.
	ErrTargetInactive = errors.New("target account is inactive")

	// ErrRateUnavailable indicates the upstream currency rate lookup failed.
	ErrRateUnavailable = errors.New("currency conversion rate unavailable")

	// ErrStoreUnavailable indicates the backing store timed out or refused the operation.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Loan operation errors.
var (
	// ErrInvalidPeriod indicates a repayment period outside the allowed range.
	ErrInvalidPeriod = errors.New("invalid repayment period")

	// ErrBankOwnerMissing indicates the singleton bank-owner account does not exist.
	ErrBankOwnerMissing = errors.New("bank owner account does not exist")

	// ErrInsufficientBankFunds indicates the bank-owner reservoir cannot fund the loan.
	ErrInsufficientBankFunds = errors.New("insufficient funds in bank owner account")

	// ErrAlreadyApproved indicates the loan has already been approved.
	ErrAlreadyApproved = errors.New("loan is already approved")
)

// Account lifecycle errors.
var (
	// ErrAlreadySuspended indicates the account is already suspended.
	ErrAlreadySuspended = errors.New("account is already suspended")

	// ErrNegativeBalance blocks closure until the balance is brought up to zero.
	ErrNegativeBalance = errors.New("account balance is negative")

	// ErrPositiveBalance blocks closure until the balance is brought down to zero.
	ErrPositiveBalance = errors.New("account balance is positive")

	// ErrActiveLoansExist blocks closure while outstanding loans reference the account.
	ErrActiveLoansExist = errors.New("account has active loans")
)
