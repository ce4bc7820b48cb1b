package client

import (
	"fmt"

	"github.com/itsnotganeva/bankproject/internal/service"
	"github.com/itsnotganeva/bankproject/internal/ui/views"
	"github.com/itsnotganeva/bankproject/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewShowCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "show [name]",
		Short:        "Show a client and their bank accounts",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, accounts, err := svc.Client.GetClientAccounts(args[0])
			if err != nil {
				return fmt.Errorf("failed to show client: %w", err)
			}

			pterm.Info.Printf("Client: %s (%s)\n", client.Name, client.Type)

			banks, err := svc.Bank.GetAllBanks()
			if err != nil {
				return fmt.Errorf("failed to list banks: %w", err)
			}
			bankNames := make(map[int64]string, len(banks))
			for _, bank := range banks {
				bankNames[bank.ID] = bank.Name
			}

			items := make([]views.AccountListItem, 0, len(accounts))
			for _, acc := range accounts {
				items = append(items, views.AccountListItem{
					Number:   acc.Number,
					Client:   client.Name,
					Bank:     bankNames[acc.BankID],
					Currency: acc.Currency,
					Balance:  utils.FormatFromCents(acc.Balance),
				})
			}

			return views.NewAccountListView().Render(items)
		},
	}

	return cmd
}
