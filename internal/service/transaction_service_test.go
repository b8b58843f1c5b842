package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atm-teller/internal/domain"
	"atm-teller/internal/errors"
)

func TestWithdrawInsufficientFundsLeavesBalance(t *testing.T) {
	repo := newMemoryRepo(janeAccount("100.00"))
	sess := activeSession(janeAccount("100.00"))
	svc := NewTransactionService(repo, newScriptedUI(t), discardLogger())

	tx, err := svc.Withdraw(sess, decimal.RequireFromString("100.01"))

	assert.Nil(t, tx)
	assert.True(t, errors.Is(err, errors.ErrInsufficientFunds), "got %v", err)
	assert.Equal(t, "100.00", domain.FormatMoney(sess.Balance))
	assert.Zero(t, repo.updates)
}

func TestDepositThenWithdrawRestoresBalance(t *testing.T) {
	for _, amount := range []string{"0.01", "0.1", "19.99", "500", "123456789.12"} {
		t.Run(amount, func(t *testing.T) {
			repo := newMemoryRepo(janeAccount("10.07"))
			sess := activeSession(janeAccount("10.07"))
			svc := NewTransactionService(repo, newScriptedUI(t), discardLogger())

			_, err := svc.Deposit(sess, decimal.RequireFromString(amount))
			require.NoError(t, err)
			_, err = svc.Withdraw(sess, decimal.RequireFromString(amount))
			require.NoError(t, err)

			assert.Equal(t, "10.07", domain.FormatMoney(sess.Balance))
			assert.Equal(t, "10.07", domain.FormatMoney(repo.accounts[sess.AccountID].Balance))
		})
	}
}

func TestTransactionsRejectNonPositiveAmounts(t *testing.T) {
	repo := newMemoryRepo(janeAccount("10"))
	sess := activeSession(janeAccount("10"))
	svc := NewTransactionService(repo, newScriptedUI(t), discardLogger())

	for _, amount := range []string{"0", "-1", "0.004"} {
		_, err := svc.Deposit(sess, decimal.RequireFromString(amount))
		assert.True(t, errors.Is(err, errors.ErrInvalidAmount), "deposit %s: %v", amount, err)
		_, err = svc.Withdraw(sess, decimal.RequireFromString(amount))
		assert.True(t, errors.Is(err, errors.ErrInvalidAmount), "withdraw %s: %v", amount, err)
	}
	assert.Zero(t, repo.updates)
}

func TestTransactionsRequireActiveSession(t *testing.T) {
	svc := NewTransactionService(newMemoryRepo(), newScriptedUI(t), discardLogger())
	sess := domain.NewSession()

	_, err := svc.Deposit(sess, decimal.NewFromInt(1))
	assert.True(t, errors.Is(err, errors.ErrNoActiveSession), "got %v", err)
	_, err = svc.PromptWithdraw(sess)
	assert.True(t, errors.Is(err, errors.ErrNoActiveSession), "got %v", err)
}

func TestFailedStoreWriteKeepsSessionBalance(t *testing.T) {
	repo := newMemoryRepo(janeAccount("50"))
	repo.failUpdate = errors.StoreFailure("failed to rewrite account store", errors.New("disk full"))
	sess := activeSession(janeAccount("50"))
	svc := NewTransactionService(repo, newScriptedUI(t), discardLogger())

	_, err := svc.Deposit(sess, decimal.NewFromInt(10))

	assert.True(t, errors.IsFatal(err), "got %v", err)
	assert.Equal(t, "50.00", domain.FormatMoney(sess.Balance))
}

func TestPromptWithdrawEmptyAccountShortCircuits(t *testing.T) {
	repo := newMemoryRepo(janeAccount("0"))
	ui := newScriptedUI(t, "10")
	svc := NewTransactionService(repo, ui, discardLogger())

	tx, err := svc.PromptWithdraw(activeSession(janeAccount("0")))

	require.NoError(t, err)
	assert.Nil(t, tx)
	assert.Equal(t, []string{"Account is empty."}, ui.lines)
	assert.Empty(t, ui.prompts, "no amount should be asked for")
}

func TestPromptWithdrawRepromptsWithoutLimit(t *testing.T) {
	repo := newMemoryRepo(janeAccount("50"))
	ui := newScriptedUI(t, "abc", "", "-5", "0", "ten", "50.01", "1e9", "20.255")
	sess := activeSession(janeAccount("50"))
	svc := NewTransactionService(repo, ui, discardLogger())

	tx, err := svc.PromptWithdraw(sess)

	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, 8, ui.count(": "))
	assert.Equal(t, "20.26", domain.FormatMoney(tx.Amount))
	assert.Equal(t, "29.74", domain.FormatMoney(sess.Balance))
	assert.Equal(t, 1, repo.updates)
	assert.Contains(t, ui.lines, "Invalid input. Please enter a numeric value.")
	assert.Contains(t, ui.lines, "Amount must be greater than zero. Please try again.")
	assert.Contains(t, ui.lines, "Insufficient funds. Your balance is $50.00. Please enter a valid amount.")
	assert.Equal(t, []string{
		"Original Balance: 50.00",
		"Withdrawn Amount: 20.26",
		"New Balance: 29.74",
	}, ui.lines[len(ui.lines)-3:])
}

func TestPromptDeposit(t *testing.T) {
	repo := newMemoryRepo(janeAccount("0"))
	ui := newScriptedUI(t, "500")
	sess := activeSession(janeAccount("0"))
	svc := NewTransactionService(repo, ui, discardLogger())

	tx, err := svc.PromptDeposit(sess)

	require.NoError(t, err)
	assert.Equal(t, domain.Deposit, tx.Kind)
	assert.Equal(t, "500.00", domain.FormatMoney(sess.Balance))
	assert.Contains(t, ui.lines, "Depositing 500.00 to 1234-5678-9012...")
	assert.Contains(t, ui.lines, "Deposited Amount: 500.00")
}

func TestCommittedTransactionIsStamped(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	repo := newMemoryRepo(janeAccount("10"))
	sess := activeSession(janeAccount("10"))
	svc := NewTransactionService(repo, newScriptedUI(t), discardLogger())
	svc.now = func() time.Time { return at }

	tx, err := svc.Withdraw(sess, decimal.NewFromInt(4))

	require.NoError(t, err)
	assert.Equal(t, "1234-5678-9012", tx.AccountID)
	assert.Equal(t, at, tx.CreatedAt)
	assert.Equal(t, "10.00", domain.FormatMoney(tx.PreviousBalance))
	assert.Equal(t, "6.00", domain.FormatMoney(tx.NewBalance))
}
