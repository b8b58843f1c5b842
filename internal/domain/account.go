package domain

import (
	"github.com/shopspring/decimal"
)

// Account is the persisted record: one row of the store file.
// The PIN is kept in plaintext, matching the on-disk format.
type Account struct {
	ID      string          `json:"account_id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	PIN     string          `json:"-"`
}

// AccountRepository is the Account Store contract. Every call goes to
// durable storage; implementations keep no cache.
type AccountRepository interface {
	// GetAccount returns the first record whose id matches exactly, or
	// errors.ErrAccountNotFound.
	GetAccount(id string) (*Account, error)
	AccountExists(id string) (bool, error)
	// GenerateAccountID draws random ids until one is not in the store.
	GenerateAccountID() (string, error)
	CreateAccount(account *Account) error
	// UpdateAccountBalance rewrites the whole store, changing only the
	// balance of the matching record.
	UpdateAccountBalance(id string, newBalance decimal.Decimal) error
}
