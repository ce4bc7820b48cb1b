package account

import (
	"fmt"
	"strings"

	"github.com/itsnotganeva/bankproject/internal/config"
	"github.com/itsnotganeva/bankproject/internal/errhandler"
	"github.com/itsnotganeva/bankproject/internal/service"
	"github.com/itsnotganeva/bankproject/internal/ui/prompts"
	"github.com/itsnotganeva/bankproject/internal/utils"
	"github.com/itsnotganeva/bankproject/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type openFlags struct {
	Client   string
	Bank     string
	Number   string
	Currency string
	Balance  string
}

type openRunner struct {
	svc   *service.Service
	cfg   *config.Config
	flags *openFlags
}

func NewOpenCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	flags := &openFlags{}

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a bank account for a client",
		Long: `Open a new bank account for an existing client at an existing bank.

The account number must be exactly 5 digits and unique system-wide. The
currency is fixed for the lifetime of the account. Run without flags for
an interactive wizard.

Example: bankproject account open -n 11111 --client Ivan --bank Belinvest --currency USD -b 100.00`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &openRunner{svc: svc, cfg: cfg, flags: flags}

			hasFlags := cmd.Flags().Changed("number") ||
				cmd.Flags().Changed("client") ||
				cmd.Flags().Changed("bank")

			return runner.Run(hasFlags)
		},
	}

	cmd.Flags().StringVar(&flags.Client, "client", "", "Owning client name")
	cmd.Flags().StringVar(&flags.Bank, "bank", "", "Issuing bank name")
	cmd.Flags().StringVarP(&flags.Number, "number", "n", "", "Account number (5 digits)")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency code (defaults to config default)")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Initial balance (decimal)")

	return cmd
}

func (r *openRunner) Run(hasFlags bool) error {
	input := &prompts.OpenAccountInput{
		ClientName:     r.flags.Client,
		BankName:       r.flags.Bank,
		Number:         r.flags.Number,
		Currency:       strings.ToUpper(r.flags.Currency),
		InitialBalance: r.flags.Balance,
	}

	if !hasFlags {
		wizardInput, err := prompts.PromptOpenAccount(r.cfg.Defaults.Currency)
		if err != nil {
			errhandler.HandleError(err)
			return nil
		}
		input = wizardInput
	}

	if err := validation.ValidateAccountNumber(input.Number); err != nil {
		return err
	}
	if err := validation.ValidateCurrency(input.Currency); err != nil {
		return err
	}
	if input.InitialBalance != "" && input.InitialBalance != "0" {
		if err := validation.ValidateAmount(input.InitialBalance); err != nil {
			return err
		}
	}

	account, err := r.svc.Account.OpenAccount(
		input.ClientName, input.BankName,
		input.Number, input.Currency, input.InitialBalance,
	)
	if err != nil {
		return fmt.Errorf("failed to open account: %w", err)
	}

	pterm.Success.Printf("Account %s opened for %s at %s with %s %s\n",
		account.Number, input.ClientName, input.BankName,
		utils.FormatFromCents(account.Balance), account.Currency)

	return nil
}
