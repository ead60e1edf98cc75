package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type InteractionType string

const (
	InteractionChamada InteractionType = "Chamada"
	InteractionEmail   InteractionType = "Email"
	InteractionReuniao InteractionType = "Reunião"
	InteractionOutro   InteractionType = "Outro"
)

func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionChamada, InteractionEmail, InteractionReuniao, InteractionOutro:
		return true
	}
	return false
}

// Entidade: Interaction (toque registrado com o cliente, ordenado por data)
type Interaction struct {
	ID       string          `json:"id"`
	ClientID string          `json:"client_id"`
	Type     InteractionType `json:"type"`
	Date     time.Time       `json:"date"`
	Notes    string          `json:"notes"`
}

func NewInteraction(clientID string, interactionType InteractionType, notes string, date time.Time) (*Interaction, error) {
	interaction := &Interaction{
		ID:       uuid.New().String(),
		ClientID: clientID,
		Type:     interactionType,
		Date:     date,
		Notes:    notes,
	}

	if err := interaction.Validate(); err != nil {
		return nil, err
	}

	return interaction, nil
}

func (i *Interaction) Validate() error {
	if i.ClientID == "" {
		return errors.New("client id is required")
	}
	if !i.Type.IsValid() {
		return errors.New("interaction type is invalid")
	}
	if i.Notes == "" {
		return errors.New("notes are required")
	}
	if i.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}
