package handler

import (
	"atm-teller/internal/domain"
	"atm-teller/internal/errors"
)

const (
	txCheckBalance = iota
	txWithdraw
	txDeposit
	txCancel
)

var txOptions = []string{"Check Balance", "Withdraw", "Deposit", "Cancel Transaction"}

// transact loops over the transaction menu until the user cancels or
// declines another transaction.
func (m *Menu) transact(sess *domain.Session) error {
	for {
		m.console.Clear()
		choice, err := m.console.Choose("Start Transaction", txOptions)
		if err != nil {
			return m.abort(err)
		}
		if choice == txCancel {
			m.exit()
			return nil
		}

		if err := m.runTransaction(sess, choice); err != nil {
			if errors.IsFatal(err) {
				return m.abort(err)
			}
			m.console.Display(err.Error())
		}
		if err := m.console.Pause(); err != nil {
			return m.abort(err)
		}

		m.console.Clear()
		again, err := m.console.Confirm("Would you like to make another transaction?")
		if err != nil {
			return m.abort(err)
		}
		if !again {
			m.console.Display("Thank you for using " + m.console.bankName + ". See you next time!")
			m.exit()
			return nil
		}
	}
}

func (m *Menu) runTransaction(sess *domain.Session, choice int) error {
	var err error
	switch choice {
	case txCheckBalance:
		m.console.Screen("Check Balance")
		_, err = m.accounts.CheckBalance(sess)
	case txWithdraw:
		m.console.Screen("Withdraw")
		_, err = m.transactions.PromptWithdraw(sess)
	case txDeposit:
		m.console.Screen("Deposit")
		_, err = m.transactions.PromptDeposit(sess)
	}
	return err
}
