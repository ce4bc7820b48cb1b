package prompts

import (
	"github.com/itsnotganeva/bankproject/internal/constants"
	"github.com/itsnotganeva/bankproject/internal/validation"
)

// OpenAccountInput is the result of the interactive account opening wizard.
type OpenAccountInput struct {
	ClientName     string
	BankName       string
	Number         string
	Currency       string
	InitialBalance string
}

// PromptOpenAccount collects everything needed to open an account.
func PromptOpenAccount(defaultCurrency string) (*OpenAccountInput, error) {
	clientName, err := PromptInput("Client name:", "", func(s string) error {
		return validation.ValidateClientName(s)
	})
	if err != nil {
		return nil, err
	}

	bankName, err := PromptInput("Bank name:", "", func(s string) error {
		return validation.ValidateBankName(s)
	})
	if err != nil {
		return nil, err
	}

	number, err := PromptInput("Account number (5 digits):", "", func(s string) error {
		return validation.ValidateAccountNumber(s)
	})
	if err != nil {
		return nil, err
	}

	currency, err := PromptSelect("Currency:", constants.Currencies, defaultCurrency)
	if err != nil {
		return nil, err
	}

	balance, err := PromptInput("Initial balance:", "0", func(s string) error {
		if s == "" || s == "0" {
			return nil
		}
		return validation.ValidateAmount(s)
	})
	if err != nil {
		return nil, err
	}

	return &OpenAccountInput{
		ClientName:     clientName,
		BankName:       bankName,
		Number:         number,
		Currency:       currency,
		InitialBalance: balance,
	}, nil
}
