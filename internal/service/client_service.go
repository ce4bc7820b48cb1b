package service

import (
	"github.com/itsnotganeva/bankproject/internal/model"
	"github.com/itsnotganeva/bankproject/internal/store"
)

type ClientService struct {
	repo store.Repository
}

func NewClientService(repo store.Repository) *ClientService {
	return &ClientService{repo: repo}
}

func (cs *ClientService) CreateClient(name string, clientType model.ClientType) (*model.Client, error) {
	newID, err := cs.repo.CreateClient(name, clientType)
	if err != nil {
		return nil, err
	}

	return &model.Client{ID: newID, Name: name, Type: clientType}, nil
}

func (cs *ClientService) GetAllClients() ([]*model.Client, error) {
	return cs.repo.GetAllClients()
}

// GetClientAccounts returns a client together with all accounts the client
// holds, across every bank.
func (cs *ClientService) GetClientAccounts(name string) (*model.Client, []*model.Account, error) {
	client, err := cs.repo.GetClientByName(name)
	if err != nil {
		return nil, nil, err
	}

	accounts, err := cs.repo.GetAccountsByClient(client.ID)
	if err != nil {
		return nil, nil, err
	}

	return client, accounts, nil
}
