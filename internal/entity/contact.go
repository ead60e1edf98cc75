package entity

import (
	"errors"

	"github.com/google/uuid"
)

// Entidade: Contact (pessoa dentro da empresa cliente)
type Contact struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

func NewContact(clientID, name, email, phone, role string) (*Contact, error) {
	contact := &Contact{
		ID:       uuid.New().String(),
		ClientID: clientID,
		Name:     name,
		Email:    email,
		Phone:    phone,
		Role:     role,
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

func (c *Contact) Validate() error {
	if c.ClientID == "" {
		return errors.New("client id is required")
	}
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	if c.Role == "" {
		return errors.New("role is required")
	}
	return nil
}
