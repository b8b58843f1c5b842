package repository

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"atm-teller/internal/domain"
	"atm-teller/internal/errors"
)

type accountRepository struct {
	store  *Store
	next   domain.IDGroupSource
	logger *slog.Logger
}

func NewAccountRepository(store *Store, logger *slog.Logger, next domain.IDGroupSource) domain.AccountRepository {
	if next == nil {
		next = domain.RandomIDGroup
	}
	return &accountRepository{
		store:  store,
		next:   next,
		logger: logger,
	}
}

func (r *accountRepository) GetAccount(id string) (*domain.Account, error) {
	rows, err := r.store.readRows()
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row[colAccountID] == id {
			return rowToAccount(row)
		}
	}

	r.logger.Debug("Account not found", "account_id", id)
	return nil, errors.ErrAccountNotFound
}

func (r *accountRepository) AccountExists(id string) (bool, error) {
	rows, err := r.store.readRows()
	if err != nil {
		return false, err
	}

	for _, row := range rows {
		if row[colAccountID] == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *accountRepository) GenerateAccountID() (string, error) {
	for {
		id := domain.NewAccountID(r.next)
		exists, err := r.AccountExists(id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
		r.logger.Debug("Generated account ID collides, retrying", "account_id", id)
	}
}

func (r *accountRepository) CreateAccount(account *domain.Account) error {
	if !domain.ValidAccountID(account.ID) {
		return errors.ErrInvalidAccountID
	}
	if account.Balance.IsNegative() {
		return errors.ErrInvalidAmount
	}

	exists, err := r.AccountExists(account.ID)
	if err != nil {
		return err
	}
	if exists {
		r.logger.Warn("Duplicate account creation attempt", "account_id", account.ID)
		return errors.ErrDuplicateAccount
	}

	if err := r.store.appendRow(accountToRow(account)); err != nil {
		r.logger.Error("Failed to create account", "account_id", account.ID, "error", err)
		return err
	}

	r.logger.Info("Account created successfully", "account_id", account.ID)
	return nil
}

func (r *accountRepository) UpdateAccountBalance(id string, newBalance decimal.Decimal) error {
	if newBalance.IsNegative() {
		return errors.ErrInvalidAmount
	}

	rows, err := r.store.readRows()
	if err != nil {
		return err
	}

	found := false
	for _, row := range rows {
		if row[colAccountID] == id {
			row[colBalance] = domain.FormatMoney(newBalance)
			found = true
			break
		}
	}
	if !found {
		r.logger.Warn("No account found to update", "account_id", id)
		return errors.ErrAccountNotFound
	}

	if err := r.store.writeRows(rows); err != nil {
		r.logger.Error("Failed to update account balance", "account_id", id, "error", err)
		return err
	}

	r.logger.Info("Account balance updated", "account_id", id, "new_balance", domain.FormatMoney(newBalance))
	return nil
}
