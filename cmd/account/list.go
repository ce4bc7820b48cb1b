package account

import (
	"fmt"

	"github.com/itsnotganeva/bankproject/internal/model"
	"github.com/itsnotganeva/bankproject/internal/service"
	"github.com/itsnotganeva/bankproject/internal/ui/views"
	"github.com/itsnotganeva/bankproject/internal/utils"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Client string
	Bank   string
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:          "list",
		Aliases:      []string{"ls"},
		Short:        "List bank accounts",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{svc: svc, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVar(&flags.Client, "client", "", "Filter accounts by client name")
	cmd.Flags().StringVar(&flags.Bank, "bank", "", "Filter accounts by bank name")

	return cmd
}

func (r *listRunner) Run() error {
	var accounts []*model.Account
	var err error

	switch {
	case r.flags.Client != "":
		accounts, err = r.svc.Account.GetAccountsByClient(r.flags.Client)
	case r.flags.Bank != "":
		accounts, err = r.svc.Account.GetAccountsByBank(r.flags.Bank)
	default:
		accounts, err = r.svc.Account.GetAllAccounts()
	}
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	clientNames, bankNames, err := r.nameIndexes()
	if err != nil {
		return err
	}

	items := make([]views.AccountListItem, 0, len(accounts))
	for _, acc := range accounts {
		items = append(items, views.AccountListItem{
			Number:   acc.Number,
			Client:   clientNames[acc.ClientID],
			Bank:     bankNames[acc.BankID],
			Currency: acc.Currency,
			Balance:  utils.FormatFromCents(acc.Balance),
		})
	}

	return views.NewAccountListView().Render(items)
}

func (r *listRunner) nameIndexes() (map[int64]string, map[int64]string, error) {
	clients, err := r.svc.Client.GetAllClients()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list clients: %w", err)
	}

	banks, err := r.svc.Bank.GetAllBanks()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list banks: %w", err)
	}

	clientNames := make(map[int64]string, len(clients))
	for _, client := range clients {
		clientNames[client.ID] = client.Name
	}

	bankNames := make(map[int64]string, len(banks))
	for _, bank := range banks {
		bankNames[bank.ID] = bank.Name
	}

	return clientNames, bankNames, nil
}
