package errors

import (
	stderrors "errors"
	"fmt"
	"io"
)

type ErrorCode string

const (
	ValidationFailed  ErrorCode = "validation_error"
	InvalidAccountID  ErrorCode = "invalid_account_id"
	InvalidPIN        ErrorCode = "invalid_pin"
	InvalidName       ErrorCode = "invalid_name"
	InvalidAmount     ErrorCode = "invalid_amount"
	AccountNotFound   ErrorCode = "account_not_found"
	DuplicateAccount  ErrorCode = "duplicate_account"
	AuthExhausted     ErrorCode = "auth_exhausted"
	InsufficientFunds ErrorCode = "insufficient_funds"
	AccountEmpty      ErrorCode = "account_empty"
	NoActiveSession   ErrorCode = "no_active_session"
	StoreIO           ErrorCode = "store_io_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	cause   error
}

func (e AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithCause records the underlying error so callers can still match it
// with errors.Is (for example fs.ErrNotExist behind a store fault).
func (e *AppError) WithCause(err error) *AppError {
	e.cause = err
	if err != nil && e.Details == "" {
		e.Details = err.Error()
	}
	return e
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is matches any AppError carrying the same code, so the predefined
// values below can be used as sentinels.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Predefined errors for common cases
var (
	ErrInvalidAccountID  = NewAppError(InvalidAccountID, "invalid account ID format")
	ErrInvalidPIN        = NewAppError(InvalidPIN, "PIN must be exactly 4 digits")
	ErrInvalidName       = NewAppError(InvalidName, "name must contain only letters and spaces")
	ErrInvalidAmount     = NewAppError(InvalidAmount, "amount must be greater than zero")
	ErrAccountNotFound   = NewAppError(AccountNotFound, "account not found")
	ErrDuplicateAccount  = NewAppError(DuplicateAccount, "account already exists")
	ErrAuthExhausted     = NewAppError(AuthExhausted, "too many attempts")
	ErrInsufficientFunds = NewAppError(InsufficientFunds, "insufficient funds")
	ErrAccountEmpty      = NewAppError(AccountEmpty, "account is empty")
	ErrNoActiveSession   = NewAppError(NoActiveSession, "no account loaded")
	ErrStoreIO           = NewAppError(StoreIO, "account store unavailable")
)

// StoreFailure wraps an I/O fault from the record file.
func StoreFailure(message string, err error) *AppError {
	return NewAppError(StoreIO, message).WithCause(err)
}

// IsFatal reports whether err should abort the session: store faults and
// a closed input stream. Everything else is recovered by re-prompting.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return Is(err, ErrStoreIO) || Is(err, io.EOF)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func New(text string) error {
	return stderrors.New(text)
}
