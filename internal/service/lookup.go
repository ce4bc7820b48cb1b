package service

import (
	"github.com/itsnotganeva/bankproject/internal/model"
	"github.com/itsnotganeva/bankproject/internal/store"
)

// LookupService resolves human-facing identifiers (account numbers, client
// names, bank names) to their records. Every call goes straight to the
// repository; nothing is cached, so callers always observe current state.
type LookupService struct {
	repo store.Repository
}

func NewLookupService(repo store.Repository) *LookupService {
	return &LookupService{repo: repo}
}

func (ls *LookupService) FindAccountByNumber(number string) (*model.Account, error) {
	return ls.repo.GetAccountByNumber(number)
}

func (ls *LookupService) FindClientByName(name string) (*model.Client, error) {
	return ls.repo.GetClientByName(name)
}

func (ls *LookupService) FindBankByName(name string) (*model.Bank, error) {
	return ls.repo.GetBankByName(name)
}
