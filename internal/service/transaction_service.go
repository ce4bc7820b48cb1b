package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/itsnotganeva/bankproject/internal/model"
	"github.com/itsnotganeva/bankproject/internal/store"
	"github.com/itsnotganeva/bankproject/internal/utils"
)

// TransactionService carries out money transfers between accounts and
// answers transaction history queries.
type TransactionService struct {
	repo   store.Repository
	lookup *LookupService
}

func NewTransactionService(repo store.Repository, lookup *LookupService) *TransactionService {
	return &TransactionService{repo: repo, lookup: lookup}
}

// SendMoney moves amount from the sender account to the receiver account
// and records the transfer. The debit, the credit and the transaction
// record commit as one database transaction; on any failure no balance
// changes and nothing is recorded.
//
// Preconditions are checked in order and the first violation is returned:
// both accounts must exist, sender and receiver must differ, currencies
// must match, the amount must be a positive decimal, and the sender must
// hold sufficient funds.
func (ts *TransactionService) SendMoney(senderNumber, receiverNumber, amount string) (*model.Transaction, error) {
	var created *model.Transaction

	err := ts.repo.ExecTx(func(r store.Repository) error {
		sender, err := r.GetAccountByNumber(senderNumber)
		if err != nil {
			return resolveErr(err, senderNumber)
		}

		receiver, err := r.GetAccountByNumber(receiverNumber)
		if err != nil {
			return resolveErr(err, receiverNumber)
		}

		if sender.ID == receiver.ID {
			return fmt.Errorf("account '%s': %w", senderNumber, ErrInvalidTransfer)
		}

		if sender.Currency != receiver.Currency {
			return fmt.Errorf("%w: %s is in %s, %s is in %s",
				ErrCurrencyMismatch, senderNumber, sender.Currency, receiverNumber, receiver.Currency)
		}

		cents, err := utils.ParseToCents(amount)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
		}
		if cents <= 0 {
			return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidAmount, amount)
		}

		if sender.Balance < cents {
			return fmt.Errorf("%w: account '%s' holds %s, needs %s",
				ErrInsufficientFunds, senderNumber,
				utils.FormatFromCents(sender.Balance), utils.FormatFromCents(cents))
		}

		if err := r.UpdateAccountBalance(sender.ID, sender.Balance-cents, sender.Balance); err != nil {
			return err
		}
		if err := r.UpdateAccountBalance(receiver.ID, receiver.Balance+cents, receiver.Balance); err != nil {
			return err
		}

		tx := model.Transaction{
			SenderAccountID:   sender.ID,
			ReceiverAccountID: receiver.ID,
			Amount:            cents,
			Currency:          sender.Currency,
			Timestamp:         time.Now().Unix(),
		}

		newID, err := r.AppendTransaction(tx)
		if err != nil {
			return err
		}

		tx.ID = newID
		created = &tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func resolveErr(err error, number string) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("account '%s': %w", number, ErrAccountNotFound)
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// TransactionDetail is one history entry with account numbers resolved for
// display.
type TransactionDetail struct {
	ID             int64
	SenderNumber   string
	ReceiverNumber string
	Amount         int64
	Currency       string
	Date           time.Time
}

// GetHistory returns the transactions a client participated in between the
// two dates (inclusive), oldest first. With sentOnly set, only transfers
// the client's accounts sent are returned.
func (ts *TransactionService) GetHistory(clientName string, from, to time.Time, sentOnly bool) ([]TransactionDetail, error) {
	client, err := ts.lookup.FindClientByName(clientName)
	if err != nil {
		return nil, err
	}

	accounts, err := ts.repo.GetAccountsByClient(client.ID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, nil
	}

	accountIDs := make([]int64, 0, len(accounts))
	for _, acc := range accounts {
		accountIDs = append(accountIDs, acc.ID)
	}

	startTime := from.Unix()
	endTime := to.AddDate(0, 0, 1).Unix() - 1

	var transactions []*model.Transaction
	if sentOnly {
		transactions, err = ts.repo.GetTransactionsBySender(accountIDs, startTime, endTime)
	} else {
		transactions, err = ts.repo.GetTransactionsByParticipant(accountIDs, startTime, endTime)
	}
	if err != nil {
		return nil, err
	}

	numbers := make(map[int64]string, len(accounts))
	for _, acc := range accounts {
		numbers[acc.ID] = acc.Number
	}

	details := make([]TransactionDetail, 0, len(transactions))
	for _, tx := range transactions {
		senderNumber, err := ts.accountNumber(numbers, tx.SenderAccountID)
		if err != nil {
			return nil, err
		}
		receiverNumber, err := ts.accountNumber(numbers, tx.ReceiverAccountID)
		if err != nil {
			return nil, err
		}

		details = append(details, TransactionDetail{
			ID:             tx.ID,
			SenderNumber:   senderNumber,
			ReceiverNumber: receiverNumber,
			Amount:         tx.Amount,
			Currency:       tx.Currency,
			Date:           time.Unix(tx.Timestamp, 0),
		})
	}

	return details, nil
}

func (ts *TransactionService) accountNumber(cache map[int64]string, accountID int64) (string, error) {
	if number, ok := cache[accountID]; ok {
		return number, nil
	}

	account, err := ts.repo.GetAccountByID(accountID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve account for transaction: %w", err)
	}

	cache[accountID] = account.Number
	return account.Number, nil
}
