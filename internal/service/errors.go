package service

import (
	"errors"

	"github.com/itsnotganeva/bankproject/internal/store"
)

var (
	// ErrAccountNotFound indicates that an account number did not resolve.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidTransfer indicates that sender and receiver are the same account.
	ErrInvalidTransfer = errors.New("sender and receiver must be different accounts")
	// ErrCurrencyMismatch indicates that the two accounts use different currencies.
	ErrCurrencyMismatch = errors.New("account currencies do not match")
	// ErrInvalidAmount indicates a non-positive or unparseable amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds indicates that the sender balance is too low.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrStoreUnavailable indicates an underlying persistence failure.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// TransferStatus is the typed outcome surfaced to callers of SendMoney.
type TransferStatus string

const (
	StatusSuccess           TransferStatus = "Success"
	StatusAccountNotFound   TransferStatus = "AccountNotFound"
	StatusInvalidTransfer   TransferStatus = "InvalidTransfer"
	StatusCurrencyMismatch  TransferStatus = "CurrencyMismatch"
	StatusInvalidAmount     TransferStatus = "InvalidAmount"
	StatusInsufficientFunds TransferStatus = "InsufficientFunds"
	StatusConflict          TransferStatus = "Conflict"
	StatusStoreUnavailable  TransferStatus = "StoreUnavailable"
)

// StatusOf maps a SendMoney error to its transfer status. A nil error is
// StatusSuccess.
func StatusOf(err error) TransferStatus {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrAccountNotFound):
		return StatusAccountNotFound
	case errors.Is(err, ErrInvalidTransfer):
		return StatusInvalidTransfer
	case errors.Is(err, ErrCurrencyMismatch):
		return StatusCurrencyMismatch
	case errors.Is(err, ErrInvalidAmount):
		return StatusInvalidAmount
	case errors.Is(err, ErrInsufficientFunds):
		return StatusInsufficientFunds
	case errors.Is(err, store.ErrConflict):
		return StatusConflict
	default:
		return StatusStoreUnavailable
	}
}
