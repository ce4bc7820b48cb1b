package views

import (
	"github.com/pterm/pterm"
)

// RenderBankList prints the banks table.
func RenderBankList(names []string) error {
	tableData := pterm.TableData{{"Bank"}}
	for _, name := range names {
		tableData = append(tableData, []string{name})
	}

	pterm.DefaultSection.Printf("Banks")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d banks\n", len(names))
	return nil
}

type ClientListItem struct {
	Name string
	Type string
}

// RenderClientList prints the clients table.
func RenderClientList(clients []ClientListItem) error {
	tableData := pterm.TableData{{"Name", "Type"}}
	for _, client := range clients {
		tableData = append(tableData, []string{client.Name, client.Type})
	}

	pterm.DefaultSection.Printf("Clients")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d clients\n", len(clients))
	return nil
}
