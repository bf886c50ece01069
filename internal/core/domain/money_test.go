package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailbank/bank_backend/internal/core/domain"
)

func TestTransactionFee(t *testing.T) {
	fee := domain.TransactionFee("EUR")
	assert.Equal(t, "EUR", fee.Currency)
	assert.True(t, fee.Amount.Equal(decimal.RequireFromString("5.00")))
}

func TestMoney_Add(t *testing.T) {
	tests := []struct {
		name    string
		a, b    domain.Money
		want    string
		wantErr bool
	}{
		{
			name: "same currency",
			a:    domain.NewMoney(decimal.RequireFromString("10.50"), "USD"),
			b:    domain.NewMoney(decimal.RequireFromString("4.50"), "USD"),
			want: "15.00 USD",
		},
		{
			name:    "currency mismatch",
			a:       domain.NewMoney(decimal.NewFromInt(10), "USD"),
			b:       domain.NewMoney(decimal.NewFromInt(10), "EUR"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Add(tt.b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestMoney_Convert(t *testing.T) {
	m := domain.NewMoney(decimal.RequireFromString("100.00"), "USD")
	got := m.Convert(decimal.RequireFromString("0.92"), "EUR")
	assert.Equal(t, "EUR", got.Currency)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("92.00")))
}

func TestMoney_LessThan(t *testing.T) {
	a := domain.NewMoney(decimal.RequireFromString("9.99"), "USD")
	b := domain.NewMoney(decimal.RequireFromString("10.00"), "USD")

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	_, err = a.LessThan(domain.NewMoney(decimal.NewFromInt(1), "EUR"))
	assert.Error(t, err)
}
