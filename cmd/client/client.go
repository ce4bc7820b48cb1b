package client

import (
	"github.com/itsnotganeva/bankproject/internal/service"
	"github.com/spf13/cobra"
)

func NewClientCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(NewCreateCmd(svc))
	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewShowCmd(svc))

	return cmd
}
