package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/itsnotganeva/bankproject/internal/model"
)

const accountColumns = "id, number, client_id, bank_id, currency, balance"

func (s *Store) CreateAccount(number string, clientID, bankID int64, currency string, balance int64) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO accounts (number, client_id, bank_id, currency, balance)
        VALUES (?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64

	err = stmt.QueryRow(number, clientID, bankID, currency, balance).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("account '%s': %w", number, ErrAlreadyExists)
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

func (s *Store) GetAccountByNumber(number string) (*model.Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE number = ?", number)
	return s.scanAccountRow(row, fmt.Sprintf("'%s'", number))
}

func (s *Store) GetAccountByID(id int64) (*model.Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)
	return s.scanAccountRow(row, fmt.Sprintf("id %d", id))
}

func (s *Store) GetAccountsByClient(clientID int64) ([]*model.Account, error) {
	rows, err := s.db.Query(`
        SELECT `+accountColumns+`
        FROM accounts
        WHERE client_id = ?
        ORDER BY number
    `, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

func (s *Store) GetAccountsByBank(bankID int64) ([]*model.Account, error) {
	rows, err := s.db.Query(`
        SELECT `+accountColumns+`
        FROM accounts
        WHERE bank_id = ?
        ORDER BY number
    `, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

func (s *Store) GetAllAccounts() ([]*model.Account, error) {
	rows, err := s.db.Query(`
        SELECT ` + accountColumns + `
        FROM accounts
        ORDER BY number
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

// UpdateAccountBalance is conditioned on the balance the caller read. When
// the row moved in the meantime, nothing is written and ErrConflict is
// reported so the caller retries from a fresh read.
func (s *Store) UpdateAccountBalance(accountID int64, newBalance, expectedBalance int64) error {
	result, err := s.db.Exec(`
        UPDATE accounts
        SET balance = ?
        WHERE id = ? AND balance = ?
    `, newBalance, accountID, expectedBalance)
	if err != nil {
		return fmt.Errorf("failed to update account balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("account %d: %w", accountID, ErrConflict)
	}

	return nil
}

func (s *Store) scanAccountRow(row *sql.Row, ref string) (*model.Account, error) {
	acc := &model.Account{}

	err := row.Scan(
		&acc.ID, &acc.Number, &acc.ClientID,
		&acc.BankID, &acc.Currency, &acc.Balance,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", ref, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account %s : %w", ref, err)
	}

	return acc, nil
}

func (s *Store) scanAccounts(rows *sql.Rows) ([]*model.Account, error) {
	var accounts []*model.Account
	for rows.Next() {
		acc := &model.Account{}

		err := rows.Scan(
			&acc.ID, &acc.Number, &acc.ClientID,
			&acc.BankID, &acc.Currency, &acc.Balance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}
