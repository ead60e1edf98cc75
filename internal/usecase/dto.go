package usecase

import "time"

type CreateClientInput struct {
	CompanyName     string `json:"company_name"`
	Website         string `json:"website"`
	Phone           string `json:"phone"`
	LogoURL         string `json:"logo_url"`
	Status          string `json:"status"`
	NextContactDate string `json:"next_contact_date"`

	// A criação exige exatamente um contato inicial.
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	ContactRole  string `json:"contact_role"`
}

type CreateClientOutput struct {
	ID  string `json:"id"`
	Msg string `json:"msg"`
}

type UpdateClientInput struct {
	CompanyName     string `json:"company_name"`
	Website         string `json:"website"`
	Phone           string `json:"phone"`
	LogoURL         string `json:"logo_url"`
	Status          string `json:"status"`
	NextContactDate string `json:"next_contact_date"`
}

type RecordInteractionInput struct {
	ClientID        string `json:"client_id"`
	Type            string `json:"type"`
	Notes           string `json:"notes"`
	NextContactDate string `json:"next_contact_date"`
}

type RecordInteractionOutput struct {
	InteractionID   string    `json:"interaction_id"`
	LastContactDate time.Time `json:"last_contact_date"`
	NextContactDate time.Time `json:"next_contact_date"`
}

type AddContactInput struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type UpdateContactInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type UpdateInteractionInput struct {
	Type  string `json:"type"`
	Notes string `json:"notes"`
	Date  string `json:"date"`
}

type AcceptSuggestionInput struct {
	ClientID        string `json:"client_id"`
	SuggestedStatus string `json:"suggested_status"`
}

type ListClientsInput struct {
	Search        string
	Status        string
	ContactFilter string // all | overdue | upcoming
	WindowDays    int    // 0 = scheduling.DefaultWindowDays
	Now           time.Time
}
