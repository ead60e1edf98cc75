package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/msriffel/clientrech/internal/entity"
)

// Colunas last_contact_date/next_contact_date são timestamp sem fuso: o
// valor gravado é o relógio de parede que o usuário escolheu e volta igual.
type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (id, company_name, website, phone, logo_url, status,
			last_contact_date, next_contact_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.CompanyName,
		nullString(c.Website),
		nullString(c.Phone),
		c.LogoURL,
		string(c.Status),
		c.LastContactDate,
		c.NextContactDate,
		c.CreatedAt,
		c.UpdatedAt,
	)

	return err
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT id, company_name, website, phone, logo_url, status,
			last_contact_date, next_contact_date, created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	client, err := scanClient(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrClientNotFound
		}
		return nil, err
	}

	return client, nil
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]entity.Client, error) {
	query := `
		SELECT id, company_name, website, phone, logo_url, status,
			last_contact_date, next_contact_date, created_at, updated_at
		FROM clients
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []entity.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *client)
	}

	return clients, rows.Err()
}

func (r *ClientRepository) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients
		SET company_name = $2, website = $3, phone = $4, logo_url = $5,
			status = $6, last_contact_date = $7, next_contact_date = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.CompanyName,
		nullString(c.Website),
		nullString(c.Phone),
		c.LogoURL,
		string(c.Status),
		c.LastContactDate,
		c.NextContactDate,
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return checkAffected(result, entity.ErrClientNotFound)
}

func (r *ClientRepository) UpdateStatus(ctx context.Context, id string, status entity.ClientStatus) error {
	query := `UPDATE clients SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, id, string(status))
	if err != nil {
		return err
	}

	return checkAffected(result, entity.ErrClientNotFound)
}

// UpdateContactDates avança as duas datas de uma vez. É a segunda perna do
// registro de interação.
func (r *ClientRepository) UpdateContactDates(ctx context.Context, id string, lastContact, nextContact time.Time) error {
	query := `
		UPDATE clients
		SET last_contact_date = $2, next_contact_date = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query, id, lastContact, nextContact)
	if err != nil {
		return err
	}

	return checkAffected(result, entity.ErrClientNotFound)
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return checkAffected(result, entity.ErrClientNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*entity.Client, error) {
	var c entity.Client
	var website, phone sql.NullString
	var status string

	err := row.Scan(
		&c.ID,
		&c.CompanyName,
		&website,
		&phone,
		&c.LogoURL,
		&status,
		&c.LastContactDate,
		&c.NextContactDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Website = website.String
	c.Phone = phone.String
	c.Status = entity.ClientStatus(status)

	return &c, nil
}

func checkAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
