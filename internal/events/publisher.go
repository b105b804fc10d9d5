package events

import (
	"encoding/json"
	"log"
	"time"

	"coolpay/internal/models"

	"github.com/IBM/sarama"
)

// Event types consumed by the surrounding shop. CheckoutInitiated is its
// signal to clear the shopper's cart; the payment.* events mirror callback
// transitions.
const (
	TypeCheckoutInitiated = "checkout.initiated"
	TypePaymentCompleted  = "payment.completed"
	TypePaymentCancelled  = "payment.cancelled"
	TypePaymentFailed     = "payment.failed"
)

type paymentEvent struct {
	Type           string `json:"type"`
	OrderKey       string `json:"order_key"`
	TransactionRef string `json:"transaction_ref"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	Status         string `json:"status"`
	Message        string `json:"message,omitempty"`
	OccurredAt     string `json:"occurred_at"`
}

// Publisher emits payment domain events to Kafka. A nil Publisher is valid and
// publishes nothing, so event delivery stays optional at runtime.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, nil
	}
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Publisher{producer: producer, topic: topic}, nil
}

// Publish sends one event. Failures are logged, never propagated: event
// delivery must not affect the payment flow.
func (p *Publisher) Publish(eventType string, order *models.Order, message string) {
	if p == nil || p.producer == nil {
		return
	}
	ev := paymentEvent{
		Type:           eventType,
		OrderKey:       order.OrderKey,
		TransactionRef: order.TransactionRef,
		Amount:         order.Total.String(),
		Currency:       order.Currency,
		Status:         order.Status,
		Message:        message,
		OccurredAt:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[Events] marshal %s: %v", eventType, err)
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(order.OrderKey),
		Value: sarama.ByteEncoder(b),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		log.Printf("[Events] publish %s order_key=%s: %v", eventType, order.OrderKey, err)
	}
}

// Close shuts the underlying producer down.
func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
