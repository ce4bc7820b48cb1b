package client

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
		Short:        "List all clients",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := svc.Client.GetAllClients()
			if err != nil {
				return fmt.Errorf("failed to list clients: %w", err)
			}

			items := make([]views.ClientListItem, 0, len(clients))
			for _, client := range clients {
				items = append(items, views.ClientListItem{
					Name: client.Name,
					Type: string(client.Type),
				})
			}

			return views.RenderClientList(items)
		},
	}

	return cmd
}
