package store

import (
	"fmt"
	"strings"

	"github.com/itsnotganeva/bankproject/internal/model"
)

// AppendTransaction inserts one completed transfer. The row is never
// updated or deleted afterwards.
func (s *Store) AppendTransaction(tx model.Transaction) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO transactions (sender_account_id, receiver_account_id, amount, currency, timestamp)
        VALUES (?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRow(tx.SenderAccountID, tx.ReceiverAccountID, tx.Amount, tx.Currency, tx.Timestamp).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction : %w", err)
	}

	return newID, nil
}

// GetTransactionsByParticipant retrieves transactions within the time range
// where any of the given accounts is sender or receiver, in chronological
// order.
func (s *Store) GetTransactionsByParticipant(accountIDs []int64, startTime, endTime int64) ([]*model.Transaction, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}

	placeholders := idPlaceholders(len(accountIDs))
	query := fmt.Sprintf(`
        SELECT id, sender_account_id, receiver_account_id, amount, currency, timestamp
        FROM transactions
        WHERE timestamp >= ? AND timestamp <= ?
          AND (sender_account_id IN (%s) OR receiver_account_id IN (%s))
        ORDER BY timestamp ASC, id ASC
    `, placeholders, placeholders)

	args := make([]any, 0, 2+2*len(accountIDs))
	args = append(args, startTime, endTime)
	for _, id := range accountIDs {
		args = append(args, id)
	}
	for _, id := range accountIDs {
		args = append(args, id)
	}

	return s.queryTransactions(query, args...)
}

// GetTransactionsBySender retrieves transactions within the time range sent
// from any of the given accounts, in chronological order.
func (s *Store) GetTransactionsBySender(accountIDs []int64, startTime, endTime int64) ([]*model.Transaction, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
        SELECT id, sender_account_id, receiver_account_id, amount, currency, timestamp
        FROM transactions
        WHERE timestamp >= ? AND timestamp <= ?
          AND sender_account_id IN (%s)
        ORDER BY timestamp ASC, id ASC
    `, idPlaceholders(len(accountIDs)))

	args := make([]any, 0, 2+len(accountIDs))
	args = append(args, startTime, endTime)
	for _, id := range accountIDs {
		args = append(args, id)
	}

	return s.queryTransactions(query, args...)
}

func (s *Store) queryTransactions(query string, args ...any) ([]*model.Transaction, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var transactions []*model.Transaction
	for rows.Next() {
		tx := &model.Transaction{}
		err := rows.Scan(
			&tx.ID, &tx.SenderAccountID, &tx.ReceiverAccountID,
			&tx.Amount, &tx.Currency, &tx.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func idPlaceholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
