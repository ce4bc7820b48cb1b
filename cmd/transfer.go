package cmd

import (
	"fmt"
	"time"

	"github.com/itsnotganeva/bankproject/internal/constants"
	"github.com/itsnotganeva/bankproject/internal/errhandler"
	"github.com/itsnotganeva/bankproject/internal/service"
	"github.com/itsnotganeva/bankproject/internal/ui/prompts"
	"github.com/itsnotganeva/bankproject/internal/utils"
	"github.com/itsnotganeva/bankproject/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type transferRunner struct {
	svc *service.Service
}

func NewTransferCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transfer [sender] [receiver] [amount]",
		Aliases: []string{"send"},
		Short:   "Send money from one account to another",
		Long: `Send money between two bank accounts.

Sender and receiver are 5-digit account numbers; the amount is a decimal
in the accounts' currency. Both accounts must use the same currency and
the sender must hold sufficient funds. Run without arguments for an
interactive wizard.

Example: bankproject transfer 11111 22222 30.00`,
		Args:         cobra.RangeArgs(0, 3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &transferRunner{svc: svc}
			return runner.Run(args)
		},
	}

	return cmd
}

func (r *transferRunner) Run(args []string) error {
	var sender, receiver, amount string

	if len(args) == 3 {
		sender, receiver, amount = args[0], args[1], args[2]
	} else {
		input, err := prompts.PromptTransfer()
		if err != nil {
			errhandler.HandleError(err)
			return nil
		}
		sender, receiver, amount = input.SenderNumber, input.ReceiverNumber, input.Amount
	}

	if err := validation.ValidateAccountNumber(sender); err != nil {
		return fmt.Errorf("sender: %w", err)
	}
	if err := validation.ValidateAccountNumber(receiver); err != nil {
		return fmt.Errorf("receiver: %w", err)
	}

	tx, err := r.svc.Transaction.SendMoney(sender, receiver, amount)
	if err != nil {
		pterm.Error.Printf("Transfer failed (%s)\n", service.StatusOf(err))
		return err
	}

	pterm.Success.Printf("Sent %s %s from %s to %s\n",
		utils.FormatFromCents(tx.Amount), tx.Currency, sender, receiver)
	pterm.Info.Printf("Transaction #%d recorded on %s\n",
		tx.ID, time.Unix(tx.Timestamp, 0).Format(constants.DateFormat))

	return nil
}
