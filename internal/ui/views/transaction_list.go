package views

import (
	"github.com/pterm/pterm"
)

type TransactionListItem struct {
	ID       int64
	Date     string
	Sender   string
	Receiver string
	Amount   string
}

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(items []TransactionListItem) error {
	if len(items) == 0 {
		pterm.Info.Println("No transactions found")
		return nil
	}

	headers := []string{"ID", "Date", "Sender", "Receiver", "Amount"}
	tableData := pterm.TableData{headers}

	for _, item := range items {
		tableData = append(tableData, []string{
			pterm.Sprintf("%d", item.ID),
			item.Date,
			item.Sender,
			item.Receiver,
			item.Amount,
		})
	}

	pterm.DefaultSection.Printf("Transactions")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions\n", len(items))

	return nil
}
