package repository

import (
	"slices"

	"github.com/shopspring/decimal"

	"atm-teller/internal/domain"
	"atm-teller/internal/errors"
)

// Column order of the record file.
const (
	colAccountID = iota
	colName
	colBalance
	colPIN
	numColumns
)

var header = []string{"account_id", "name", "balance", "pin"}

func validHeader(row []string) bool {
	return slices.Equal(row, header)
}

func accountToRow(account *domain.Account) []string {
	row := make([]string, numColumns)
	row[colAccountID] = account.ID
	row[colName] = account.Name
	row[colBalance] = domain.FormatMoney(account.Balance)
	row[colPIN] = account.PIN
	return row
}

func rowToAccount(row []string) (*domain.Account, error) {
	balance, err := decimal.NewFromString(row[colBalance])
	if err != nil {
		return nil, errors.StoreFailure("failed to parse balance", err)
	}
	if !domain.InMoneyRange(balance) {
		return nil, errors.NewAppError(errors.StoreIO, "balance out of range").WithDetails(row[colBalance])
	}
	return &domain.Account{
		ID:      row[colAccountID],
		Name:    row[colName],
		Balance: balance,
		PIN:     row[colPIN],
	}, nil
}
