package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	"atm-teller/internal/domain"
	"atm-teller/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scriptedUI answers prompts from a fixed list and records output.
type scriptedUI struct {
	t       *testing.T
	inputs  []string
	prompts []string
	lines   []string
}

func newScriptedUI(t *testing.T, inputs ...string) *scriptedUI {
	return &scriptedUI{t: t, inputs: inputs}
}

func (u *scriptedUI) PromptText(message string) (string, error) {
	u.prompts = append(u.prompts, message)
	if len(u.inputs) == 0 {
		return "", io.EOF
	}
	in := u.inputs[0]
	u.inputs = u.inputs[1:]
	return in, nil
}

func (u *scriptedUI) Display(lines ...string) {
	u.lines = append(u.lines, lines...)
}

func (u *scriptedUI) Confirm(message string) (bool, error) {
	in, err := u.PromptText(message)
	if err != nil {
		return false, err
	}
	return in == "Y" || in == "y", nil
}

func (u *scriptedUI) count(prompt string) int {
	n := 0
	for _, p := range u.prompts {
		if p == prompt {
			n++
		}
	}
	return n
}

// memoryRepo is an in-memory AccountRepository that counts lookups.
type memoryRepo struct {
	accounts   map[string]domain.Account
	order      []string
	ids        []string
	gets       int
	updates    int
	failUpdate error
}

func newMemoryRepo(accounts ...domain.Account) *memoryRepo {
	r := &memoryRepo{accounts: map[string]domain.Account{}}
	for _, a := range accounts {
		r.accounts[a.ID] = a
		r.order = append(r.order, a.ID)
	}
	return r
}

func (r *memoryRepo) GetAccount(id string) (*domain.Account, error) {
	r.gets++
	a, ok := r.accounts[id]
	if !ok {
		return nil, errors.ErrAccountNotFound
	}
	return &a, nil
}

func (r *memoryRepo) AccountExists(id string) (bool, error) {
	_, ok := r.accounts[id]
	return ok, nil
}

func (r *memoryRepo) GenerateAccountID() (string, error) {
	if len(r.ids) > 0 {
		id := r.ids[0]
		r.ids = r.ids[1:]
		return id, nil
	}
	return "1000-1000-1000", nil
}

func (r *memoryRepo) CreateAccount(account *domain.Account) error {
	if _, ok := r.accounts[account.ID]; ok {
		return errors.ErrDuplicateAccount
	}
	r.accounts[account.ID] = *account
	r.order = append(r.order, account.ID)
	return nil
}

func (r *memoryRepo) UpdateAccountBalance(id string, newBalance decimal.Decimal) error {
	r.updates++
	if r.failUpdate != nil {
		return r.failUpdate
	}
	a, ok := r.accounts[id]
	if !ok {
		return errors.ErrAccountNotFound
	}
	a.Balance = newBalance
	r.accounts[id] = a
	return nil
}

func janeAccount(balance string) domain.Account {
	return domain.Account{
		ID:      "1234-5678-9012",
		Name:    "Jane Doe",
		Balance: decimal.RequireFromString(balance),
		PIN:     "1234",
	}
}

func activeSession(account domain.Account) *domain.Session {
	sess := domain.NewSession()
	sess.Activate(&account)
	return sess
}
