package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	Withdrawal TransactionKind = "withdrawal"
	Deposit    TransactionKind = "deposit"
)

// Transaction is the before/after summary of a committed balance change.
// It is not persisted.
type Transaction struct {
	Kind            TransactionKind
	AccountID       string
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	CreatedAt       time.Time
}

func (t *Transaction) action() string {
	if t.Kind == Withdrawal {
		return "Withdrawn"
	}
	return "Deposited"
}

// Summary renders the completed-transaction lines.
func (t *Transaction) Summary() []string {
	return []string{
		fmt.Sprintf("Original Balance: %s", FormatMoney(t.PreviousBalance)),
		fmt.Sprintf("%s Amount: %s", t.action(), FormatMoney(t.Amount)),
		fmt.Sprintf("New Balance: %s", FormatMoney(t.NewBalance)),
	}
}
