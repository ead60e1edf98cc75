package usecase

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/msriffel/clientrech/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateClientInput(input CreateClientInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.CompanyName) == "" {
		errors = append(errors, ValidationError{"company_name", "is required"})
	} else if len(input.CompanyName) > 200 {
		errors = append(errors, ValidationError{"company_name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Status) == "" {
		errors = append(errors, ValidationError{"status", "is required"})
	} else if !entity.ClientStatus(input.Status).IsValid() {
		errors = append(errors, ValidationError{"status", "is not a valid client status"})
	}

	if strings.TrimSpace(input.NextContactDate) == "" {
		errors = append(errors, ValidationError{"next_contact_date", "is required"})
	} else if _, err := ParseLocalDate(input.NextContactDate); err != nil {
		errors = append(errors, ValidationError{"next_contact_date", "must be a valid date"})
	}

	if input.Website != "" && !isValidURL(input.Website) {
		errors = append(errors, ValidationError{"website", "must be a valid URL"})
	}

	if input.Phone != "" && !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	if strings.TrimSpace(input.ContactName) == "" {
		errors = append(errors, ValidationError{"contact_name", "is required"})
	}

	if strings.TrimSpace(input.ContactEmail) == "" {
		errors = append(errors, ValidationError{"contact_email", "is required"})
	} else if _, err := mail.ParseAddress(input.ContactEmail); err != nil {
		errors = append(errors, ValidationError{"contact_email", "is invalid"})
	}

	if strings.TrimSpace(input.ContactRole) == "" {
		errors = append(errors, ValidationError{"contact_role", "is required"})
	}

	if input.ContactPhone != "" && !isValidPhoneNumber(input.ContactPhone) {
		errors = append(errors, ValidationError{"contact_phone", "must be a valid phone number"})
	}

	return errors
}

func ValidateRecordInteractionInput(input RecordInteractionInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.ClientID) == "" {
		errors = append(errors, ValidationError{"client_id", "is required"})
	}

	if strings.TrimSpace(input.Type) == "" {
		errors = append(errors, ValidationError{"type", "is required"})
	} else if !entity.InteractionType(input.Type).IsValid() {
		errors = append(errors, ValidationError{"type", "must be Chamada, Email, Reunião or Outro"})
	}

	if strings.TrimSpace(input.Notes) == "" {
		errors = append(errors, ValidationError{"notes", "are required"})
	}

	if strings.TrimSpace(input.NextContactDate) == "" {
		errors = append(errors, ValidationError{"next_contact_date", "is required"})
	} else if _, err := ParseLocalDate(input.NextContactDate); err != nil {
		errors = append(errors, ValidationError{"next_contact_date", "must be a valid date"})
	}

	return errors
}

func ValidateAddContactInput(input AddContactInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.ClientID) == "" {
		errors = append(errors, ValidationError{"client_id", "is required"})
	}
	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}
	if strings.TrimSpace(input.Role) == "" {
		errors = append(errors, ValidationError{"role", "is required"})
	}
	if input.Phone != "" && !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	return errors
}

// ParseLocalDate aceita os formatos que o front manda e NUNCA desloca o
// relógio de parede: layouts sem offset são interpretados no fuso local do
// servidor (ParseInLocation), não em UTC. "2024-02-15T10:00" fica 10:00.
func ParseLocalDate(dateStr string) (time.Time, error) {
	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, dateStr, time.Local); err == nil {
			return t, nil
		}
	}

	// RFC3339 vem com offset explícito, então não há ambiguidade.
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", dateStr)
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")

	return len(cleaned) >= 10 && len(cleaned) <= 13
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
