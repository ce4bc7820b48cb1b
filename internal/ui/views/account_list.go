package views

import (
	"github.com/pterm/pterm"
)

type AccountListItem struct {
	Number   string
	Client   string
	Bank     string
	Currency string
	Balance  string
}

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []AccountListItem) error {
	headers := []string{"Number", "Client", "Bank", "Currency", "Balance"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		tableData = append(tableData, []string{
			acc.Number, acc.Client, acc.Bank, acc.Currency, pterm.Green(acc.Balance),
		})
	}

	pterm.DefaultSection.Printf("Bank Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
