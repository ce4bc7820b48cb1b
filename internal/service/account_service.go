package service

import (
	"fmt"

	"github.com/itsnotganeva/bankproject/internal/config"
	"github.com/itsnotganeva/bankproject/internal/model"
	"github.com/itsnotganeva/bankproject/internal/store"
	"github.com/itsnotganeva/bankproject/internal/utils"
)

type AccountService struct {
	repo   store.Repository
	lookup *LookupService
	config *config.Config
}

func NewAccountService(repo store.Repository, lookup *LookupService, cfg *config.Config) *AccountService {
	return &AccountService{repo: repo, lookup: lookup, config: cfg}
}

// OpenAccount creates an account for a client at a bank. Client and bank
// are given by name, the initial balance as a decimal amount string.
func (as *AccountService) OpenAccount(clientName, bankName, number, currency, initialBalance string) (*model.Account, error) {
	client, err := as.lookup.FindClientByName(clientName)
	if err != nil {
		return nil, err
	}

	bank, err := as.lookup.FindBankByName(bankName)
	if err != nil {
		return nil, err
	}

	if currency == "" {
		currency = as.config.Defaults.Currency
	}

	balance := int64(0)
	if initialBalance != "" {
		balance, err = utils.ParseToCents(initialBalance)
		if err != nil {
			return nil, err
		}
		if balance < 0 {
			return nil, fmt.Errorf("initial balance can't be negative")
		}
	}

	newID, err := as.repo.CreateAccount(number, client.ID, bank.ID, currency, balance)
	if err != nil {
		return nil, err
	}

	return &model.Account{
		ID:       newID,
		Number:   number,
		ClientID: client.ID,
		BankID:   bank.ID,
		Currency: currency,
		Balance:  balance,
	}, nil
}

func (as *AccountService) GetAllAccounts() ([]*model.Account, error) {
	return as.repo.GetAllAccounts()
}

func (as *AccountService) GetAccountsByBank(bankName string) ([]*model.Account, error) {
	bank, err := as.lookup.FindBankByName(bankName)
	if err != nil {
		return nil, err
	}
	return as.repo.GetAccountsByBank(bank.ID)
}

func (as *AccountService) GetAccountsByClient(clientName string) ([]*model.Account, error) {
	client, err := as.lookup.FindClientByName(clientName)
	if err != nil {
		return nil, err
	}
	return as.repo.GetAccountsByClient(client.ID)
}

// GetBalanceFormatted returns the current balance of an account as a
// two-decimal string with its currency, read fresh from the store.
func (as *AccountService) GetBalanceFormatted(number string) (string, error) {
	account, err := as.lookup.FindAccountByNumber(number)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s %s", utils.FormatFromCents(account.Balance), account.Currency), nil
}
