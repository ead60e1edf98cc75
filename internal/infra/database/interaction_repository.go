package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/msriffel/clientrech/internal/entity"
)

type InteractionRepository struct {
	DB *sql.DB
}

func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) Create(ctx context.Context, i *entity.Interaction) error {
	query := `
		INSERT INTO interactions (id, client_id, type, date, notes)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		i.ID,
		i.ClientID,
		string(i.Type),
		i.Date,
		i.Notes,
	)

	return err
}

func (r *InteractionRepository) FindByID(ctx context.Context, id string) (*entity.Interaction, error) {
	query := `
		SELECT id, client_id, type, date, notes
		FROM interactions
		WHERE id = $1
	`

	var i entity.Interaction
	var interactionType string

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&i.ID,
		&i.ClientID,
		&interactionType,
		&i.Date,
		&i.Notes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrInteractionNotFound
		}
		return nil, err
	}

	i.Type = entity.InteractionType(interactionType)
	return &i, nil
}

// FindByClientID devolve o histórico mais recente primeiro: é a ordem de
// exibição e também a ordem do texto que vai pro motor de sugestão.
func (r *InteractionRepository) FindByClientID(ctx context.Context, clientID string) ([]entity.Interaction, error) {
	query := `
		SELECT id, client_id, type, date, notes
		FROM interactions
		WHERE client_id = $1
		ORDER BY date DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interactions []entity.Interaction
	for rows.Next() {
		var i entity.Interaction
		var interactionType string

		if err := rows.Scan(&i.ID, &i.ClientID, &interactionType, &i.Date, &i.Notes); err != nil {
			return nil, err
		}

		i.Type = entity.InteractionType(interactionType)
		interactions = append(interactions, i)
	}

	return interactions, rows.Err()
}

func (r *InteractionRepository) Update(ctx context.Context, i *entity.Interaction) error {
	query := `
		UPDATE interactions
		SET type = $2, date = $3, notes = $4
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query,
		i.ID,
		string(i.Type),
		i.Date,
		i.Notes,
	)
	if err != nil {
		return err
	}

	return checkAffected(result, entity.ErrInteractionNotFound)
}

func (r *InteractionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM interactions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return checkAffected(result, entity.ErrInteractionNotFound)
}

func (r *InteractionRepository) DeleteByClientID(ctx context.Context, clientID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM interactions WHERE client_id = $1`, clientID)
	return err
}
