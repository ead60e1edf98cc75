package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

// ClientStatus é o estágio do cliente no funil. Não existe workflow rígido:
// qualquer status pode virar qualquer outro via edição ou sugestão aceita.
type ClientStatus string

const (
	StatusProspectFrio   ClientStatus = "Prospect Frio"
	StatusProspectMorno  ClientStatus = "Prospect Morno"
	StatusProspectQuente ClientStatus = "Prospect Quente"
	StatusClienteAtivo   ClientStatus = "Cliente Ativo"
	StatusClienteFiel    ClientStatus = "Cliente Fiel"

	// StatusClienteInativo suprime o cliente de qualquer cálculo de agenda
	// (atrasado/próximo), mas ele continua armazenado e editável.
	StatusClienteInativo ClientStatus = "Cliente Inativo"
)

func (s ClientStatus) IsValid() bool {
	switch s {
	case StatusProspectFrio, StatusProspectMorno, StatusProspectQuente,
		StatusClienteAtivo, StatusClienteFiel, StatusClienteInativo:
		return true
	}
	return false
}

// Entidade: Client
type Client struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website,omitempty"`
	Phone       string `json:"phone,omitempty"`
	LogoURL     string `json:"logo_url"`

	Status ClientStatus `json:"status"`

	// NextContactDate é sempre preenchida: nasce na criação e avança a cada
	// interação registrada.
	LastContactDate time.Time `json:"last_contact_date"`
	NextContactDate time.Time `json:"next_contact_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Contacts []Contact `json:"contacts,omitempty"`
}

// Factory
func NewClient(companyName, website, phone, logoURL string, status ClientStatus, nextContact time.Time) (*Client, error) {
	now := time.Now()

	client := &Client{
		ID:              uuid.New().String(),
		CompanyName:     companyName,
		Website:         website,
		Phone:           phone,
		LogoURL:         logoURL,
		Status:          status,
		LastContactDate: now,
		NextContactDate: nextContact,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}

	return client, nil
}

func (c *Client) Validate() error {
	if c.CompanyName == "" {
		return errors.New("company name is required")
	}
	if !c.Status.IsValid() {
		return errors.New("status is invalid")
	}
	if c.NextContactDate.IsZero() {
		return errors.New("next contact date is required")
	}
	return nil
}
