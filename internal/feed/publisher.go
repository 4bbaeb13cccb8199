package feed

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// ChangeEvent — событие изменения коллекции заказов одного аккаунта.
// Само изменение не передаётся: потребитель перечитывает снапшот целиком.
type ChangeEvent struct {
	AccountUID string    `json:"account_uid"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher публикует события изменения поверх открытого канала AMQP.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher создает новый Publisher.
func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// PublishChange публикует событие изменения коллекции заказов аккаунта.
func (p *Publisher) PublishChange(accountUID string) error {
	return PublishChange(p.ch, accountUID)
}

// PublishChange публикует событие изменения коллекции заказов аккаунта.
func PublishChange(ch *amqp.Channel, accountUID string) error {
	const op = "feed.PublishChange"
	body, err := json.Marshal(ChangeEvent{
		AccountUID: accountUID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		Exchange,
		RoutingKeyChanged,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
