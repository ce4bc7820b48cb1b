package service

import (
	"github.com/itsnotganeva/bankproject/internal/config"
	"github.com/itsnotganeva/bankproject/internal/store"
)

type Service struct {
	Bank        *BankService
	Client      *ClientService
	Account     *AccountService
	Transaction *TransactionService
	Lookup      *LookupService
}

func NewService(repo store.Repository, cfg *config.Config) *Service {
	lookup := NewLookupService(repo)
	return &Service{
		Bank:        NewBankService(repo),
		Client:      NewClientService(repo),
		Account:     NewAccountService(repo, lookup, cfg),
		Transaction: NewTransactionService(repo, lookup),
		Lookup:      lookup,
	}
}
