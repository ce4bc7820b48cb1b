package bank

import (
	"fmt"

	"github.com/itsnotganeva/bankproject/internal/service"
	"github.com/itsnotganeva/bankproject/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewListCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Aliases:      []string{"ls"},
		Short:        "List all banks",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			banks, err := svc.Bank.GetAllBanks()
			if err != nil {
				return fmt.Errorf("failed to list banks: %w", err)
			}

			names := make([]string, 0, len(banks))
			for _, bank := range banks {
				names = append(names, bank.Name)
			}

			return views.RenderBankList(names)
		},
	}

	return cmd
}
