package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// SendReminder envia o e-mail de lembrete do próximo contato agendado.
// A data chega como string já formatada (relógio de parede do usuário).
func (s *EmailSender) SendReminder(to, contactName, companyName, nextContactDate string) error {
	data := ReminderEmailData{
		ContactName:     contactName,
		CompanyName:     companyName,
		NextContactDate: nextContactDate,
	}

	tmplPath := filepath.Join("templates", "reminder.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "nao-responda@clientrech.com")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Lembrete: próximo contato com %s agendado 📅", companyName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
