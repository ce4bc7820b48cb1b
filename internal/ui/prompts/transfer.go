package prompts

import (
	"github.com/itsnotganeva/bankproject/internal/validation"
)

// TransferInput is the result of the interactive transfer wizard.
type TransferInput struct {
	SenderNumber   string
	ReceiverNumber string
	Amount         string
}

// PromptTransfer walks through sender, receiver and amount when the
// transfer command is invoked without arguments.
func PromptTransfer() (*TransferInput, error) {
	sender, err := PromptInput("Sender account number:", "", func(s string) error {
		return validation.ValidateAccountNumber(s)
	})
	if err != nil {
		return nil, err
	}

	receiver, err := PromptInput("Receiver account number:", "", func(s string) error {
		return validation.ValidateAccountNumber(s)
	})
	if err != nil {
		return nil, err
	}

	amount, err := PromptInput("Amount to send:", "", func(s string) error {
		return validation.ValidateAmount(s)
	})
	if err != nil {
		return nil, err
	}

	return &TransferInput{
		SenderNumber:   sender,
		ReceiverNumber: receiver,
		Amount:         amount,
	}, nil
}
