package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/itsnotganeva/bankproject/internal/model"
)

func (s *Store) CreateBank(name string) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO banks (name)
        VALUES (?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64

	err = stmt.QueryRow(name).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("bank '%s': %w", name, ErrAlreadyExists)
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

func (s *Store) GetBankByName(name string) (*model.Bank, error) {
	row := s.db.QueryRow("SELECT id, name FROM banks WHERE name = ?", name)

	bank := &model.Bank{}
	if err := row.Scan(&bank.ID, &bank.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("bank '%s': %w", name, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query bank '%s' : %w", name, err)
	}

	return bank, nil
}

func (s *Store) GetAllBanks() ([]*model.Bank, error) {
	rows, err := s.db.Query(`
        SELECT id, name
        FROM banks
        ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var banks []*model.Bank
	for rows.Next() {
		bank := &model.Bank{}
		if err := rows.Scan(&bank.ID, &bank.Name); err != nil {
			return nil, fmt.Errorf("failed to scan bank: %w", err)
		}
		banks = append(banks, bank)
	}

	return banks, rows.Err()
}
