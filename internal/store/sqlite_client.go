package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/itsnotganeva/bankproject/internal/model"
)

func (s *Store) CreateClient(name string, clientType model.ClientType) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO clients (name, type)
        VALUES (?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64

	err = stmt.QueryRow(name, string(clientType)).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("client '%s': %w", name, ErrAlreadyExists)
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

func (s *Store) GetClientByName(name string) (*model.Client, error) {
	row := s.db.QueryRow("SELECT id, name, type FROM clients WHERE name = ?", name)
	return s.scanClient(row, name)
}

func (s *Store) GetClientByID(id int64) (*model.Client, error) {
	row := s.db.QueryRow("SELECT id, name, type FROM clients WHERE id = ?", id)
	return s.scanClient(row, fmt.Sprintf("id %d", id))
}

func (s *Store) GetAllClients() ([]*model.Client, error) {
	rows, err := s.db.Query(`
        SELECT id, name, type
        FROM clients
        ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var clients []*model.Client
	for rows.Next() {
		client := &model.Client{}
		var clientType string
		if err := rows.Scan(&client.ID, &client.Name, &clientType); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		client.Type = model.ClientType(clientType)
		clients = append(clients, client)
	}

	return clients, rows.Err()
}

func (s *Store) scanClient(row *sql.Row, ref string) (*model.Client, error) {
	client := &model.Client{}
	var clientType string

	err := row.Scan(&client.ID, &client.Name, &clientType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("client %s: %w", ref, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query client %s : %w", ref, err)
	}

	client.Type = model.ClientType(clientType)
	return client, nil
}
