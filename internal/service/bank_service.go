package service

import (
	"github.com/itsnotganeva/bankproject/internal/model"
	"github.com/itsnotganeva/bankproject/internal/store"
)

type BankService struct {
	repo store.Repository
}

func NewBankService(repo store.Repository) *BankService {
	return &BankService{repo: repo}
}

func (bs *BankService) CreateBank(name string) (*model.Bank, error) {
	newID, err := bs.repo.CreateBank(name)
	if err != nil {
		return nil, err
	}

	return &model.Bank{ID: newID, Name: name}, nil
}

func (bs *BankService) GetAllBanks() ([]*model.Bank, error) {
	return bs.repo.GetAllBanks()
}
