package service

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"atm-teller/internal/domain"
	"atm-teller/internal/errors"
)

// AccountService authenticates or registers the one account of a run.
type AccountService struct {
	repo        domain.AccountRepository
	ui          Presenter
	maxAttempts int
	logger      *slog.Logger
}

func NewAccountService(repo domain.AccountRepository, ui Presenter, maxAttempts int, logger *slog.Logger) *AccountService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &AccountService{
		repo:        repo,
		ui:          ui,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Login asks for an account ID and then its PIN. Both are matched as
// typed, surrounding whitespace included. Running out of PIN attempts
// for a found account ends the login at once; it does not go back to ID
// entry. On exhaustion the session is terminated and
// errors.ErrAuthExhausted is returned.
func (s *AccountService) Login(sess *domain.Session) error {
	log := s.logger.With("session_id", sess.ID)
	log.Info("Login started")

	for idAttempts := s.maxAttempts; idAttempts > 0; {
		accountID, err := s.ui.PromptText("Enter Account ID: ")
		if err != nil {
			return err
		}

		if !domain.ValidAccountID(accountID) {
			s.ui.Display("Invalid Account ID. Please try again.")
			idAttempts--
			s.attemptsLeft(idAttempts)
			continue
		}

		account, err := s.repo.GetAccount(accountID)
		if errors.Is(err, errors.ErrAccountNotFound) {
			log.Warn("Login with unknown account ID", "account_id", accountID)
			s.ui.Display("Account ID not found. Please try again.")
			idAttempts--
			s.attemptsLeft(idAttempts)
			continue
		}
		if err != nil {
			return err
		}

		err = s.verifyPIN(account)
		if errors.Is(err, errors.ErrAuthExhausted) {
			log.Warn("PIN attempts exhausted", "account_id", accountID)
			s.ui.Display("Too many attempts.")
			sess.Terminate()
			return err
		}
		if err != nil {
			return err
		}

		sess.Activate(account)
		log.Info("Login succeeded", "account_id", account.ID)
		return nil
	}

	log.Warn("Account ID attempts exhausted")
	s.ui.Display("Too many attempts.")
	sess.Terminate()
	return errors.ErrAuthExhausted
}

func (s *AccountService) verifyPIN(account *domain.Account) error {
	for pinAttempts := s.maxAttempts; pinAttempts > 0; pinAttempts-- {
		pin, err := s.ui.PromptText("Enter PIN: ")
		if err != nil {
			return err
		}

		if !domain.ValidPIN(pin) {
			s.ui.Display("Invalid PIN Format. Please try again.")
		} else if subtle.ConstantTimeCompare([]byte(pin), []byte(account.PIN)) == 1 {
			return nil
		} else {
			s.ui.Display("Incorrect PIN. Please try again.")
		}
		s.attemptsLeft(pinAttempts - 1)
	}
	return errors.ErrAuthExhausted
}

// CreateAccount registers a new account. PIN retries are nested inside a
// name attempt, and running out of them aborts the whole creation.
func (s *AccountService) CreateAccount(sess *domain.Session) error {
	log := s.logger.With("session_id", sess.ID)
	log.Info("Account creation started")

	for nameAttempts := s.maxAttempts; nameAttempts > 0; nameAttempts-- {
		input, err := s.ui.PromptText("Enter Name: ")
		if err != nil {
			return err
		}
		name := strings.TrimSpace(input)

		if !domain.ValidName(name) {
			s.ui.Display("Name must contain only letters and spaces.")
			s.attemptsLeft(nameAttempts - 1)
			continue
		}

		pin, err := s.choosePIN()
		if errors.Is(err, errors.ErrAuthExhausted) {
			log.Warn("PIN attempts exhausted during account creation")
			s.ui.Display("Too many attempts.")
			sess.Terminate()
			return err
		}
		if err != nil {
			return err
		}

		accountID, err := s.repo.GenerateAccountID()
		if err != nil {
			return err
		}

		account := &domain.Account{
			ID:      accountID,
			Name:    name,
			Balance: decimal.Zero,
			PIN:     pin,
		}
		if err := s.repo.CreateAccount(account); err != nil {
			return err
		}

		sess.Activate(account)
		log.Info("Account created", "account_id", account.ID)
		s.ui.Display("Account successfully created", fmt.Sprintf("Your Account ID is %s", account.ID))
		return nil
	}

	log.Warn("Name attempts exhausted during account creation")
	s.ui.Display("Too many attempts.")
	sess.Terminate()
	return errors.ErrAuthExhausted
}

func (s *AccountService) choosePIN() (string, error) {
	for pinAttempts := s.maxAttempts; pinAttempts > 0; pinAttempts-- {
		pin, err := s.ui.PromptText("Enter PIN: ")
		if err != nil {
			return "", err
		}
		if domain.ValidPIN(pin) {
			return pin, nil
		}
		s.ui.Display("Invalid PIN Format. Please try again.")
		s.attemptsLeft(pinAttempts - 1)
	}
	return "", errors.ErrAuthExhausted
}

// CheckBalance displays the session's account details. It does not touch
// the store.
func (s *AccountService) CheckBalance(sess *domain.Session) ([]string, error) {
	if !sess.IsActive() {
		return nil, errors.ErrNoActiveSession
	}
	details := sess.Details()
	s.ui.Display(details...)
	return details, nil
}

func (s *AccountService) attemptsLeft(n int) {
	s.ui.Display(fmt.Sprintf("Attempts Left: %d", n))
}
