package email

import (
	"context"
	"log"
)

// Sender delivers a plain-text email. Delivery is best effort: callers log
// failures and never let them fail the surrounding operation.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender simulates delivery by printing the message, the behavior used in
// development when no email provider is configured.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	log.Println("Simulating email send:")
	log.Printf("To: %s", to)
	log.Printf("Subject: %s", subject)
	log.Printf("Content: %s", body)
	return nil
}
