package cmd

import (
	"fmt"
	"time"

	"github.com/itsnotganeva/bankproject/internal/constants"
	"github.com/itsnotganeva/bankproject/internal/service"
	"github.com/itsnotganeva/bankproject/internal/ui/views"
	"github.com/itsnotganeva/bankproject/internal/utils"
	"github.com/spf13/cobra"
)

type historyFlags struct {
	From     string
	To       string
	SentOnly bool
}

type historyRunner struct {
	svc   *service.Service
	flags *historyFlags
}

func NewHistoryCmd(svc *service.Service) *cobra.Command {
	flags := &historyFlags{}

	cmd := &cobra.Command{
		Use:     "history [client name]",
		Aliases: []string{"transactions", "txs"},
		Short:   "Show a client's transactions in a date range",
		Long: `Show the transactions a client participated in between two dates.

By default transfers sent and received by any of the client's accounts
are listed, oldest first. Use --sent-only to restrict to outgoing
transfers.

Example: bankproject history Ivan --from 2024-01-01 --to 2024-12-31`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &historyRunner{svc: svc, flags: flags}
			return runner.Run(args[0])
		},
	}

	today := time.Now().Format(constants.DateFormat)
	cmd.Flags().StringVar(&flags.From, "from", today, "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.To, "to", today, "End date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&flags.SentOnly, "sent-only", false, "Only show transfers sent by the client")

	return cmd
}

func (r *historyRunner) Run(clientName string) error {
	from, err := time.Parse(constants.DateFormat, r.flags.From)
	if err != nil {
		return fmt.Errorf("invalid --from date: %w", err)
	}

	to, err := time.Parse(constants.DateFormat, r.flags.To)
	if err != nil {
		return fmt.Errorf("invalid --to date: %w", err)
	}

	details, err := r.svc.Transaction.GetHistory(clientName, from, to, r.flags.SentOnly)
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	var viewItems []views.TransactionListItem
	for _, detail := range details {
		viewItems = append(viewItems, views.TransactionListItem{
			ID:       detail.ID,
			Date:     detail.Date.Format(constants.DateFormat),
			Sender:   detail.SenderNumber,
			Receiver: detail.ReceiverNumber,
			Amount:   fmt.Sprintf("%s %s", utils.FormatFromCents(detail.Amount), detail.Currency),
		})
	}

	return views.NewTransactionListView().Render(viewItems)
}
