package service

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/itsnotganeva/bankproject/internal/config"
	"github.com/itsnotganeva/bankproject/internal/model"
	"github.com/itsnotganeva/bankproject/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "bankproject_test.db")
	s, err := store.NewStore(dbPath, os.DirFS(filepath.Join("..", "..")))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})

	return NewService(s, config.NewDefault()), s
}

func seedAccount(t *testing.T, s *store.Store, clientName, bankName, number, currency string, balance int64) *model.Account {
	t.Helper()

	clientID, err := s.CreateClient(clientName, model.ClientIndividual)
	if err != nil {
		t.Fatalf("CreateClient(%s): %v", clientName, err)
	}
	bankID, err := s.CreateBank(bankName)
	if err != nil {
		t.Fatalf("CreateBank(%s): %v", bankName, err)
	}
	accountID, err := s.CreateAccount(number, clientID, bankID, currency, balance)
	if err != nil {
		t.Fatalf("CreateAccount(%s): %v", number, err)
	}

	return &model.Account{
		ID: accountID, Number: number, ClientID: clientID,
		BankID: bankID, Currency: currency, Balance: balance,
	}
}

func balanceOf(t *testing.T, s *store.Store, number string) int64 {
	t.Helper()
	acc, err := s.GetAccountByNumber(number)
	if err != nil {
		t.Fatalf("GetAccountByNumber(%s): %v", number, err)
	}
	return acc.Balance
}

// Scenario: S holds 100.00 USD, R holds 50.00 USD, transfer of 30.00
// succeeds, moves the money and records exactly one transaction.
func TestSendMoneySuccess(t *testing.T) {
	svc, s := newTestService(t)
	sender := seedAccount(t, s, "Ivan", "Belinvest", "11111", "USD", 10000)
	receiver := seedAccount(t, s, "Olga", "Priorbank", "22222", "USD", 5000)

	tx, err := svc.Transaction.SendMoney("11111", "22222", "30.00")
	if err != nil {
		t.Fatalf("SendMoney: %v", err)
	}
	if got := StatusOf(err); got != StatusSuccess {
		t.Fatalf("status=%s, want Success", got)
	}

	if got := balanceOf(t, s, "11111"); got != 7000 {
		t.Fatalf("sender balance=%d, want 7000", got)
	}
	if got := balanceOf(t, s, "22222"); got != 8000 {
		t.Fatalf("receiver balance=%d, want 8000", got)
	}

	if tx.SenderAccountID != sender.ID || tx.ReceiverAccountID != receiver.ID {
		t.Fatalf("transaction accounts: %+v", tx)
	}
	if tx.Amount != 3000 || tx.Currency != "USD" {
		t.Fatalf("transaction amount=%d currency=%s", tx.Amount, tx.Currency)
	}

	logged, err := s.GetTransactionsByParticipant([]int64{sender.ID}, 0, time.Now().Unix()+1)
	if err != nil {
		t.Fatalf("query transactions: %v", err)
	}
	if len(logged) != 1 {
		t.Fatalf("logged %d transactions, want 1", len(logged))
	}
}

// Conservation: the sum of the two balances is unchanged by a transfer.
func TestSendMoneyConservation(t *testing.T) {
	svc, s := newTestService(t)
	seedAccount(t, s, "Ivan", "Belinvest", "11111", "USD", 12345)
	seedAccount(t, s, "Olga", "Priorbank", "22222", "USD", 678)

	before := balanceOf(t, s, "11111") + balanceOf(t, s, "22222")

	if _, err := svc.Transaction.SendMoney("11111", "22222", "12.34"); err != nil {
		t.Fatalf("SendMoney: %v", err)
	}

	after := balanceOf(t, s, "11111") + balanceOf(t, s, "22222")
	if before != after {
		t.Fatalf("total money changed: %d -> %d", before, after)
	}
}

// Scenario: S holds 10.00, transfer of 30.00 fails with insufficient
// funds and changes nothing.
func TestSendMoneyInsufficientFunds(t *testing.T) {
	svc, s := newTestService(t)
	sender := seedAccount(t, s, "Ivan", "Belinvest", "11111", "USD", 1000)
	seedAccount(t, s, "Olga", "Priorbank", "22222", "USD", 5000)

	_, err := svc.Transaction.SendMoney("11111", "22222", "30.00")
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	if got := StatusOf(err); got != StatusInsufficientFunds {
		t.Fatalf("status=%s, want InsufficientFunds", got)
	}

	if got := balanceOf(t, s, "11111"); got != 1000 {
		t.Fatalf("sender balance changed: %d", got)
	}
	if got := balanceOf(t, s, "22222"); got != 5000 {
		t.Fatalf("receiver balance changed: %d", got)
	}

	logged, err := s.GetTransactionsByParticipant([]int64{sender.ID}, 0, time.Now().Unix()+1)
	if err != nil {
		t.Fatalf("query transactions: %v", err)
	}
	if len(logged) != 0 {
		t.Fatalf("failed transfer appended %d transactions", len(logged))
	}
}

// Scenario: USD to EUR always fails with a currency mismatch.
func TestSendMoneyCurrencyMismatch(t *testing.T) {
	svc, s := newTestService(t)
	seedAccount(t, s, "Ivan", "Belinvest", "11111", "USD", 10000)
	seedAccount(t, s, "Olga", "Priorbank", "22222", "EUR", 5000)

	_, err := svc.Transaction.SendMoney("11111", "22222", "5.00")
	if !errors.Is(err, ErrCurrencyMismatch) {
		t.Fatalf("want ErrCurrencyMismatch, got %v", err)
	}

	if got := balanceOf(t, s, "11111"); got != 10000 {
		t.Fatalf("sender balance changed: %d", got)
	}
}

func TestSendMoneyAccountNotFound(t *testing.T) {
	svc, s := newTestService(t)
	seedAccount(t, s, "Ivan", "Belinvest", "11111", "USD", 10000)

	_, err := svc.Transaction.SendMoney("11111", "99999", "5.00")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("missing receiver: want ErrAccountNotFound, got %v", err)
	}

	_, err = svc.Transaction.SendMoney("99999", "11111", "5.00")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("missing sender: want ErrAccountNotFound, got %v", err)
	}
}

func TestSendMoneySameAccount(t *testing.T) {
	svc, s := newTestService(t)
	seedAccount(t, s, "Ivan", "Belinvest", "11111", "USD", 10000)

	_, err := svc.Transaction.SendMoney("11111", "11111", "5.00")
	if !errors.Is(err, ErrInvalidTransfer) {
		t.Fatalf("want ErrInvalidTransfer, got %v", err)
	}

	if got := balanceOf(t, s, "11111"); got != 10000 {
		t.Fatalf("balance changed: %d", got)
	}
}

func TestSendMoneyInvalidAmount(t *testing.T) {
	svc, s := newTestService(t)
	seedAccount(t, s, "Ivan", "Belinvest", "11111", "USD", 10000)
	seedAccount(t, s, "Olga", "Priorbank", "22222", "USD", 5000)

	for _, amount := range []string{"abc", "", "-5.00", "0", "0.001"} {
		_, err := svc.Transaction.SendMoney("11111", "22222", amount)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amount %q: want ErrInvalidAmount, got %v", amount, err)
		}
	}

	if got := balanceOf(t, s, "11111"); got != 10000 {
		t.Fatalf("balance changed: %d", got)
	}
}

// Two simultaneous 60.00 transfers from an account holding 100.00: exactly
// one commits and the final balance is 40.00, never negative and never
// double-applied.
func TestSendMoneyConcurrentDoubleSpend(t *testing.T) {
	svc, s := newTestService(t)
	sender := seedAccount(t, s, "Ivan", "Belinvest", "11111", "USD", 10000)
	seedAccount(t, s, "Olga", "Priorbank", "22222", "USD", 5000)

	var wg sync.WaitGroup
	results := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Transaction.SendMoney("11111", "22222", "60.00")
		}(i)
	}
	wg.Wait()

	var successes int
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		if !errors.Is(err, ErrInsufficientFunds) && !errors.Is(err, store.ErrConflict) {
			t.Fatalf("unexpected failure: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("%d transfers succeeded, want exactly 1", successes)
	}

	if got := balanceOf(t, s, "11111"); got != 4000 {
		t.Fatalf("sender balance=%d, want 4000", got)
	}
	if got := balanceOf(t, s, "22222"); got != 11000 {
		t.Fatalf("receiver balance=%d, want 11000", got)
	}

	logged, err := s.GetTransactionsByParticipant([]int64{sender.ID}, 0, time.Now().Unix()+1)
	if err != nil {
		t.Fatalf("query transactions: %v", err)
	}
	if len(logged) != 1 {
		t.Fatalf("logged %d transactions, want 1", len(logged))
	}
}

func TestGetHistory(t *testing.T) {
	svc, s := newTestService(t)
	seedAccount(t, s, "Ivan", "Belinvest", "11111", "USD", 100000)
	seedAccount(t, s, "Olga", "Priorbank", "22222", "USD", 100000)

	if _, err := svc.Transaction.SendMoney("11111", "22222", "10.00"); err != nil {
		t.Fatalf("SendMoney: %v", err)
	}
	if _, err := svc.Transaction.SendMoney("22222", "11111", "2.50"); err != nil {
		t.Fatalf("SendMoney: %v", err)
	}

	today := time.Now().Truncate(24 * time.Hour)

	// Participant view sees both directions.
	details, err := svc.Transaction.GetHistory("Ivan", today, today, false)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("participant history has %d entries, want 2", len(details))
	}
	if details[0].SenderNumber != "11111" || details[0].ReceiverNumber != "22222" {
		t.Fatalf("first entry: %+v", details[0])
	}
	if details[0].Amount != 1000 {
		t.Fatalf("first entry amount=%d, want 1000", details[0].Amount)
	}

	// Sent-only view drops the incoming transfer.
	sent, err := svc.Transaction.GetHistory("Ivan", today, today, true)
	if err != nil {
		t.Fatalf("GetHistory sent-only: %v", err)
	}
	if len(sent) != 1 || sent[0].SenderNumber != "11111" {
		t.Fatalf("sent-only history: %+v", sent)
	}

	// A range in the past holds nothing.
	past := today.AddDate(-1, 0, 0)
	empty, err := svc.Transaction.GetHistory("Ivan", past, past, false)
	if err != nil {
		t.Fatalf("GetHistory past: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("past history has %d entries", len(empty))
	}

	if _, err := svc.Transaction.GetHistory("Nobody", today, today, false); !errors.Is(err, store.ErrRecordNotFound) {
		t.Fatalf("unknown client: want ErrRecordNotFound, got %v", err)
	}
}

func TestLookupReadsAreFresh(t *testing.T) {
	svc, s := newTestService(t)
	acc := seedAccount(t, s, "Ivan", "Belinvest", "11111", "USD", 10000)
	seedAccount(t, s, "Olga", "Priorbank", "22222", "USD", 0)

	before, err := svc.Lookup.FindAccountByNumber("11111")
	if err != nil {
		t.Fatalf("FindAccountByNumber: %v", err)
	}
	if before.Balance != 10000 {
		t.Fatalf("balance=%d, want 10000", before.Balance)
	}

	if err := s.UpdateAccountBalance(acc.ID, 2500, 10000); err != nil {
		t.Fatalf("UpdateAccountBalance: %v", err)
	}

	after, err := svc.Lookup.FindAccountByNumber("11111")
	if err != nil {
		t.Fatalf("FindAccountByNumber: %v", err)
	}
	if after.Balance != 2500 {
		t.Fatalf("lookup returned stale balance %d, want 2500", after.Balance)
	}
}
