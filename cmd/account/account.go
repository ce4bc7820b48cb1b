package account

import (
	"github.com/itsnotganeva/bankproject/internal/config"
	"github.com/itsnotganeva/bankproject/internal/service"
	"github.com/spf13/cobra"
)

func NewAccountCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage bank accounts",
	}

	cmd.AddCommand(NewOpenCmd(svc, cfg))
	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewBalanceCmd(svc))

	return cmd
}
