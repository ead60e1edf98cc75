package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/msriffel/clientrech/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, client_id, name, email, phone, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.ClientID,
		c.Name,
		c.Email,
		nullString(c.Phone),
		c.Role,
	)

	return err
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	query := `
		SELECT id, client_id, name, email, phone, role
		FROM contacts
		WHERE id = $1
	`

	var c entity.Contact
	var phone sql.NullString

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.ClientID,
		&c.Name,
		&c.Email,
		&phone,
		&c.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrContactNotFound
		}
		return nil, err
	}

	c.Phone = phone.String
	return &c, nil
}

func (r *ContactRepository) FindByClientID(ctx context.Context, clientID string) ([]entity.Contact, error) {
	query := `
		SELECT id, client_id, name, email, phone, role
		FROM contacts
		WHERE client_id = $1
		ORDER BY name
	`

	rows, err := r.DB.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []entity.Contact
	for rows.Next() {
		var c entity.Contact
		var phone sql.NullString

		if err := rows.Scan(&c.ID, &c.ClientID, &c.Name, &c.Email, &phone, &c.Role); err != nil {
			return nil, err
		}

		c.Phone = phone.String
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

func (r *ContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	query := `
		UPDATE contacts
		SET name = $2, email = $3, phone = $4, role = $5
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		nullString(c.Phone),
		c.Role,
	)
	if err != nil {
		return err
	}

	return checkAffected(result, entity.ErrContactNotFound)
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return checkAffected(result, entity.ErrContactNotFound)
}

// DeleteByClientID é parte da cascata de remoção do cliente. Zero linhas não
// é erro aqui: cliente sem contato restante é um estado legítimo da cascata.
func (r *ContactRepository) DeleteByClientID(ctx context.Context, clientID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM contacts WHERE client_id = $1`, clientID)
	return err
}
