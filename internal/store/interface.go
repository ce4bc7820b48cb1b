package store

import "github.com/itsnotganeva/bankproject/internal/model"

type Repository interface {
	// Bank Operations
	CreateBank(name string) (int64, error)
	GetBankByName(name string) (*model.Bank, error)
	GetAllBanks() ([]*model.Bank, error)

	// Client Operations
	CreateClient(name string, clientType model.ClientType) (int64, error)
	GetClientByName(name string) (*model.Client, error)
	GetClientByID(id int64) (*model.Client, error)
	GetAllClients() ([]*model.Client, error)

	// Account Operations
	CreateAccount(number string, clientID, bankID int64, currency string, balance int64) (int64, error)
	GetAccountByNumber(number string) (*model.Account, error)
	GetAccountByID(id int64) (*model.Account, error)
	GetAccountsByClient(clientID int64) ([]*model.Account, error)
	GetAccountsByBank(bankID int64) ([]*model.Account, error)
	GetAllAccounts() ([]*model.Account, error)
	// UpdateAccountBalance writes newBalance only if the stored balance
	// still equals expectedBalance, returning ErrConflict otherwise.
	UpdateAccountBalance(accountID int64, newBalance, expectedBalance int64) error

	// Transaction Operations
	AppendTransaction(tx model.Transaction) (int64, error)
	GetTransactionsByParticipant(accountIDs []int64, startTime, endTime int64) ([]*model.Transaction, error)
	GetTransactionsBySender(accountIDs []int64, startTime, endTime int64) ([]*model.Transaction, error)

	// ExecTx runs fn inside one database transaction. All reads and
	// writes fn performs through the passed Repository commit or roll
	// back together.
	ExecTx(fn func(Repository) error) error

	Close() error
}
