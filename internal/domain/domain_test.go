package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atm-teller/internal/errors"
)

func TestValidAccountID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"1234-5678-9012", true},
		{"0000-0000-0000", true},
		{"12345678901", false},
		{"123456789012", false},
		{"abcd-efgh-ijkl", false},
		{"1234-5678-901", false},
		{"1234-5678-9012 ", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidAccountID(tt.id), "ValidAccountID(%q)", tt.id)
	}
}

func TestValidPINAndName(t *testing.T) {
	assert.True(t, ValidPIN("0000"))
	assert.True(t, ValidPIN("1234"))
	assert.False(t, ValidPIN("123"))
	assert.False(t, ValidPIN("12345"))
	assert.False(t, ValidPIN("12a4"))
	assert.False(t, ValidPIN("١٢٣٤"), "non-ASCII digits are not accepted")

	assert.True(t, ValidName("Jane Doe"))
	assert.True(t, ValidName("jane"))
	assert.False(t, ValidName(""))
	assert.False(t, ValidName("   "))
	assert.False(t, ValidName("Jane3"))
	assert.False(t, ValidName("O'Brien"))
	assert.False(t, ValidName("Doe, Jane"))
}

func TestNewAccountID(t *testing.T) {
	groups := []int{1000, 9999, 4242}
	id := NewAccountID(func() int {
		g := groups[0]
		groups = groups[1:]
		return g
	})
	assert.Equal(t, "1000-9999-4242", id)

	for i := 0; i < 1000; i++ {
		g := RandomIDGroup()
		require.GreaterOrEqual(t, g, 1000)
		require.LessOrEqual(t, g, 9999)
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount(" 200 ")
	require.NoError(t, err)
	assert.Equal(t, "200.00", FormatMoney(amount))

	amount, err = ParseAmount("0.015")
	require.NoError(t, err)
	assert.Equal(t, "0.02", FormatMoney(amount))

	_, err = ParseAmount("ten")
	assert.True(t, errors.Is(err, errors.NewAppError(errors.ValidationFailed, "")), "got %v", err)

	amount, err = ParseAmount("1e3")
	require.NoError(t, err)
	assert.Equal(t, "1000.00", FormatMoney(amount))

	for _, in := range []string{"0", "-3", "0.001"} {
		_, err = ParseAmount(in)
		assert.True(t, errors.Is(err, errors.ErrInvalidAmount), "%s: got %v", in, err)
	}
}

func TestParseAmountRejectsHugeExponents(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, in := range []string{"1e999999999", "1e-999999999", "1e19", strings.Repeat("9", 31)} {
			_, err := ParseAmount(in)
			assert.True(t, errors.Is(err, errors.NewAppError(errors.ValidationFailed, "")), "%s: got %v", in, err)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ParseAmount did not return for out-of-range input")
	}
}

func TestSessionLifecycle(t *testing.T) {
	sess := NewSession()
	assert.Equal(t, Unauthenticated, sess.State())
	assert.Equal(t, RoleCustomer, sess.Role)
	assert.NotEqual(t, NewSession().ID, sess.ID)

	sess.Activate(&Account{ID: "1234-5678-9012", Name: "Jane Doe", Balance: decimal.RequireFromString("7.5")})
	assert.True(t, sess.IsActive())
	assert.Equal(t, []string{
		"Account #: 1234-5678-9012",
		"Account Name: Jane Doe",
		"Balance: 7.50",
	}, sess.Details())

	sess.Terminate()
	assert.Equal(t, Terminated, sess.State())
	sess.Activate(&Account{ID: "9999-9999-9999"})
	assert.Equal(t, Terminated, sess.State(), "a terminated session stays terminated")
	assert.Equal(t, "terminated", sess.State().String())
}

func TestTransactionSummary(t *testing.T) {
	tx := &Transaction{
		Kind:            Withdrawal,
		Amount:          decimal.NewFromInt(200),
		PreviousBalance: decimal.NewFromInt(500),
		NewBalance:      decimal.NewFromInt(300),
	}
	assert.Equal(t, []string{
		"Original Balance: 500.00",
		"Withdrawn Amount: 200.00",
		"New Balance: 300.00",
	}, tx.Summary())

	tx.Kind = Deposit
	assert.Equal(t, "Deposited Amount: 200.00", tx.Summary()[1])
}
