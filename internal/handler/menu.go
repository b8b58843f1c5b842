package handler

import (
	"fmt"
	"io"
	"log/slog"

	"atm-teller/internal/domain"
	"atm-teller/internal/errors"
	"atm-teller/internal/service"
)

const (
	entryStart = iota
	entryCreate
	entryQuit
)

var entryOptions = []string{"Start", "Create Account", "Quit"}

// Menu drives one run: entry menu, authentication, then transactions
// until the user is done.
type Menu struct {
	console      *Console
	accounts     *service.AccountService
	transactions *service.TransactionService
	logger       *slog.Logger
}

func NewMenu(console *Console, accounts *service.AccountService, transactions *service.TransactionService, logger *slog.Logger) *Menu {
	return &Menu{
		console:      console,
		accounts:     accounts,
		transactions: transactions,
		logger:       logger,
	}
}

// Run returns nil for every user-driven ending, including lockout and a
// closed input stream. Only store faults come back as errors.
func (m *Menu) Run() error {
	m.console.Clear()
	choice, err := m.console.Choose("Welcome", entryOptions)
	if err != nil {
		return m.abort(err)
	}
	if choice == entryQuit {
		m.exit()
		return nil
	}

	sess := domain.NewSession()
	m.logger.Info("Session started", "session_id", sess.ID)

	if err := m.authenticate(sess, choice); err != nil {
		if !errors.Is(err, errors.ErrAuthExhausted) {
			return m.abort(err)
		}
	}
	if !sess.IsActive() {
		m.console.Display("No Account ID set. Please Try Again")
		m.exit()
		return nil
	}
	// The new account ID is shown only once.
	if choice == entryCreate {
		if err := m.console.Pause(); err != nil {
			return m.abort(err)
		}
	}

	err = m.transact(sess)
	sess.Terminate()
	m.logger.Info("Session ended", "session_id", sess.ID)
	return err
}

func (m *Menu) authenticate(sess *domain.Session, choice int) error {
	switch choice {
	case entryStart:
		m.console.Screen("Login")
		return m.accounts.Login(sess)
	case entryCreate:
		m.console.Screen("Create Account")
		return m.accounts.CreateAccount(sess)
	}
	return fmt.Errorf("unknown entry option %d", choice)
}

// abort ends the run on a fatal error. A closed input is treated like
// quitting.
func (m *Menu) abort(err error) error {
	if errors.Is(err, io.EOF) {
		m.logger.Info("Input closed, ending run")
		m.exit()
		return nil
	}
	m.logger.Error("Run aborted", "error", err)
	return err
}

func (m *Menu) exit() {
	m.console.Display("Terminating Transaction...")
}
