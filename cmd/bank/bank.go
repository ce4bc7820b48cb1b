package bank

import (
	"github.com/itsnotganeva/bankproject/internal/service"
	"github.com/spf13/cobra"
)

func NewBankCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Manage banks",
	}

	cmd.AddCommand(NewCreateCmd(svc))
	cmd.AddCommand(NewListCmd(svc))

	return cmd
}
