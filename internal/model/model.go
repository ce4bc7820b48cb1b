package model

// ClientType distinguishes private persons from companies.
type ClientType string

const (
	ClientIndividual ClientType = "INDIVIDUAL"
	ClientIndustrial ClientType = "INDUSTRIAL"
)

type Client struct {
	ID   int64
	Name string
	Type ClientType
}

type Bank struct {
	ID   int64
	Name string
}

// Account is one bank account. Balance is kept in minor units (cents)
// and never goes negative.
type Account struct {
	ID       int64
	Number   string
	ClientID int64
	BankID   int64
	Currency string
	Balance  int64
}

// Transaction is an immutable record of one completed transfer.
type Transaction struct {
	ID                int64
	SenderAccountID   int64
	ReceiverAccountID int64
	Amount            int64
	Currency          string
	Timestamp         int64
}
