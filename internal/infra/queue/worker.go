package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderSender define o contrato do disparo de lembrete (SMTP hoje).
type ReminderSender interface {
	SendReminder(to, contactName, companyName, nextContactDate string) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  ReminderSender
}

func NewWorker(ch *amqp.Channel, sender ReminderSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ReminderPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Lembrete para %s (%s)", payload.CompanyName, payload.ContactEmail)

			if err := w.Sender.SendReminder(payload.ContactEmail, payload.ContactName, payload.CompanyName, payload.NextContactDate); err != nil {
				log.Printf("❌ [WORKER] Erro no envio do lembrete: %s", err)
				// Nack sem requeue: a mensagem cai na DLQ para inspeção.
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Lembrete enviado para %s", payload.ContactEmail)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
