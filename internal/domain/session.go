package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SessionState int

const (
	Unauthenticated SessionState = iota
	Active
	Terminated
)

func (s SessionState) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Active:
		return "active"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("SessionState(%d)", int(s))
}

// Role tags the session holder. Only customers exist today.
type Role string

const RoleCustomer Role = "customer"

// Session is the in-memory view of the account for one run. Balance
// mirrors the stored record and is written back on every change.
type Session struct {
	ID        uuid.UUID
	AccountID string
	Name      string
	Balance   decimal.Decimal
	Role      Role

	state SessionState
}

func NewSession() *Session {
	return &Session{
		ID:      uuid.New(),
		Balance: decimal.Zero,
		Role:    RoleCustomer,
		state:   Unauthenticated,
	}
}

func (s *Session) State() SessionState {
	return s.state
}

func (s *Session) IsActive() bool {
	return s.state == Active
}

// Activate hydrates the session from a stored record. It is a no-op once
// the session has terminated.
func (s *Session) Activate(account *Account) {
	if s.state == Terminated {
		return
	}
	s.AccountID = account.ID
	s.Name = account.Name
	s.Balance = account.Balance
	s.state = Active
}

func (s *Session) Terminate() {
	s.state = Terminated
}

// Details is the read-only balance projection.
func (s *Session) Details() []string {
	return []string{
		fmt.Sprintf("Account #: %s", s.AccountID),
		fmt.Sprintf("Account Name: %s", s.Name),
		fmt.Sprintf("Balance: %s", FormatMoney(s.Balance)),
	}
}
