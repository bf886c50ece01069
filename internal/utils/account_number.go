package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const accountNumberDigits = 12

// GenerateAccountNumber produces a random numeric account number. Uniqueness
// is enforced by the accounts table constraint, not here; callers should
// retry on a duplicate error.
func GenerateAccountNumber() (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(accountNumberDigits), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return fmt.Sprintf("%0*d", accountNumberDigits, n), nil
}
