package account

import (
	"fmt"

	"github.com/itsnotganeva/bankproject/internal/service"
	"github.com/itsnotganeva/bankproject/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewBalanceCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "balance [number]",
		Short:        "Show the current balance of an account",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			number := args[0]

			if err := validation.ValidateAccountNumber(number); err != nil {
				return err
			}

			balance, err := svc.Account.GetBalanceFormatted(number)
			if err != nil {
				return fmt.Errorf("failed to get balance: %w", err)
			}

			pterm.Info.Printf("Account %s balance: %s\n", number, balance)
			return nil
		},
	}

	return cmd
}
