package messaging

import (
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"
)

const (
	SubjectUserCreated  = "user.created"
	SubjectUserVerified = "user.verified"
)

// Publisher emits account lifecycle events. A nil Publisher is valid and
// publishes nothing, so the service runs without a broker.
type Publisher struct {
	nc *nats.Conn
}

func Connect(url string) (*Publisher, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	log.Println("✅ Connected to NATS.")
	return &Publisher{nc: nc}, nil
}

func (p *Publisher) Publish(subject string, event interface{}) error {
	if p == nil || p.nc == nil || !p.nc.IsConnected() {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.nc.Publish(subject, data)
}

func (p *Publisher) Close() {
	if p != nil && p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
	}
}
