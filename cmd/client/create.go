package client

import (
	"fmt"
	"strings"

	"github.com/itsnotganeva/bankproject/internal/model"
	"github.com/itsnotganeva/bankproject/internal/service"
	"github.com/itsnotganeva/bankproject/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Type string
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new client",
		Long: `Create a new client record.

The name must start with a capital letter. The type is INDIVIDUAL for
private persons or INDUSTRIAL for companies.

Example: bankproject client create Ivan --type INDIVIDUAL`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := validation.ValidateClientName(name); err != nil {
				return err
			}
			if err := validation.ValidateClientType(flags.Type); err != nil {
				return err
			}

			clientType := model.ClientType(strings.ToUpper(flags.Type))
			client, err := svc.Client.CreateClient(name, clientType)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			pterm.Success.Printf("Client '%s' (%s) created\n", client.Name, client.Type)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "INDIVIDUAL", "Client type: INDIVIDUAL or INDUSTRIAL")

	return cmd
}
