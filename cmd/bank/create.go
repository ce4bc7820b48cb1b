package bank

import (
	"fmt"

	"github.com/itsnotganeva/bankproject/internal/service"
	"github.com/itsnotganeva/bankproject/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewCreateCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "create [name]",
		Short:        "Create a new bank",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := validation.ValidateBankName(name); err != nil {
				return err
			}

			bank, err := svc.Bank.CreateBank(name)
			if err != nil {
				return fmt.Errorf("failed to create bank: %w", err)
			}

			pterm.Success.Printf("Bank '%s' created\n", bank.Name)
			return nil
		},
	}

	return cmd
}
