package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"atm-teller/internal/domain"
	"atm-teller/internal/errors"
)

// TransactionService applies withdrawals and deposits to the active
// session, writing each new balance through to the store.
type TransactionService struct {
	repo   domain.AccountRepository
	ui     Presenter
	logger *slog.Logger
	now    func() time.Time
}

func NewTransactionService(repo domain.AccountRepository, ui Presenter, logger *slog.Logger) *TransactionService {
	return &TransactionService{
		repo:   repo,
		ui:     ui,
		logger: logger,
		now:    time.Now,
	}
}

// Withdraw takes amount out of the session's account. The store is
// rewritten before the session balance changes, so a failed write leaves
// both untouched.
func (s *TransactionService) Withdraw(sess *domain.Session, amount decimal.Decimal) (*domain.Transaction, error) {
	if !sess.IsActive() {
		return nil, errors.ErrNoActiveSession
	}
	amount = amount.Round(domain.MoneyPlaces)
	if !amount.IsPositive() {
		return nil, errors.ErrInvalidAmount
	}
	if amount.GreaterThan(sess.Balance) {
		return nil, errors.ErrInsufficientFunds
	}

	return s.commit(sess, domain.Withdrawal, amount, sess.Balance.Sub(amount))
}

// Deposit adds amount to the session's account. There is no upper bound.
func (s *TransactionService) Deposit(sess *domain.Session, amount decimal.Decimal) (*domain.Transaction, error) {
	if !sess.IsActive() {
		return nil, errors.ErrNoActiveSession
	}
	amount = amount.Round(domain.MoneyPlaces)
	if !amount.IsPositive() {
		return nil, errors.ErrInvalidAmount
	}

	return s.commit(sess, domain.Deposit, amount, sess.Balance.Add(amount))
}

func (s *TransactionService) commit(sess *domain.Session, kind domain.TransactionKind, amount, newBalance decimal.Decimal) (*domain.Transaction, error) {
	log := s.logger.With("session_id", sess.ID)

	if err := s.repo.UpdateAccountBalance(sess.AccountID, newBalance); err != nil {
		log.Error("Balance update failed", "account_id", sess.AccountID, "kind", kind, "amount", domain.FormatMoney(amount), "error", err)
		return nil, err
	}

	tx := &domain.Transaction{
		Kind:            kind,
		AccountID:       sess.AccountID,
		Amount:          amount,
		PreviousBalance: sess.Balance,
		NewBalance:      newBalance,
		CreatedAt:       s.now(),
	}
	sess.Balance = newBalance

	log.Info("Transaction completed",
		"account_id", tx.AccountID,
		"kind", tx.Kind,
		"amount", domain.FormatMoney(tx.Amount),
		"new_balance", domain.FormatMoney(tx.NewBalance),
		"created_at", tx.CreatedAt)
	return tx, nil
}

// PromptWithdraw runs the interactive withdrawal. An empty account ends it
// before any amount is asked for; that case returns (nil, nil).
func (s *TransactionService) PromptWithdraw(sess *domain.Session) (*domain.Transaction, error) {
	if !sess.IsActive() {
		return nil, errors.ErrNoActiveSession
	}
	if sess.Balance.IsZero() {
		s.ui.Display("Account is empty.")
		return nil, nil
	}
	return s.promptAmount(sess, domain.Withdrawal)
}

func (s *TransactionService) PromptDeposit(sess *domain.Session) (*domain.Transaction, error) {
	if !sess.IsActive() {
		return nil, errors.ErrNoActiveSession
	}
	return s.promptAmount(sess, domain.Deposit)
}

// promptAmount re-prompts until a committed transaction or a fatal error.
// Amount entry has no retry limit.
func (s *TransactionService) promptAmount(sess *domain.Session, kind domain.TransactionKind) (*domain.Transaction, error) {
	verb := "deposit"
	if kind == domain.Withdrawal {
		verb = "withdraw"
	}
	s.ui.Display(fmt.Sprintf("Enter amount to %s", verb))

	for {
		input, err := s.ui.PromptText(": ")
		if err != nil {
			return nil, err
		}

		amount, err := domain.ParseAmount(input)
		switch {
		case errors.Is(err, errors.ErrInvalidAmount):
			s.ui.Display("Amount must be greater than zero. Please try again.")
			continue
		case err != nil:
			s.ui.Display("Invalid input. Please enter a numeric value.")
			continue
		}

		var tx *domain.Transaction
		if kind == domain.Withdrawal {
			if amount.GreaterThan(sess.Balance) {
				s.ui.Display(fmt.Sprintf("Insufficient funds. Your balance is $%s. Please enter a valid amount.", domain.FormatMoney(sess.Balance)))
				continue
			}
			s.ui.Display(fmt.Sprintf("Withdrawing %s from %s...", domain.FormatMoney(amount), sess.AccountID))
			tx, err = s.Withdraw(sess, amount)
		} else {
			s.ui.Display(fmt.Sprintf("Depositing %s to %s...", domain.FormatMoney(amount), sess.AccountID))
			tx, err = s.Deposit(sess, amount)
		}
		if err != nil {
			return nil, err
		}

		s.ui.Display("Transaction Completed")
		s.ui.Display(tx.Summary()...)
		return tx, nil
	}
}
