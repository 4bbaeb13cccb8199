// Package feed реализует живую подписку на коллекцию заказов аккаунта.
// Каждая успешная мутация публикует событие изменения в RabbitMQ;
// потребитель события заново читает полный снапшот заказов аккаунта
// и раздаёт его подписчикам. Ядро всегда получает целостное повторное
// чтение, инкрементальных диффов нет.
package feed

import (
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

const (
	// Exchange — обменник событий изменения заказов.
	Exchange = "orders"
	// QueueChanged — очередь событий «коллекция заказов аккаунта изменилась».
	QueueChanged = "orders.changed"
	// RoutingKeyChanged — ключ маршрутизации событий изменения.
	RoutingKeyChanged = "changed"
)

// Connect устанавливает соединение с RabbitMQ с повторными попытками.
func Connect(connection string, retries int, delay time.Duration) (*amqp.Connection, error) {
	const op = "feed.Connect"
	var conn *amqp.Connection
	var err error

	for range retries {
		conn, err = amqp.Dial(connection)
		if err == nil {
			return conn, nil
		}
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("%s: %w", op, err)
}

// SetupChannel открывает канал и объявляет обменник с очередью событий.
func SetupChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	const op = "feed.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	err = ch.ExchangeDeclare(
		Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = ch.QueueDeclare(
		QueueChanged,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, QueueChanged, err)
	}

	err = ch.QueueBind(
		QueueChanged,
		RoutingKeyChanged,
		Exchange,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to bind queue %s: %w", op, QueueChanged, err)
	}

	return ch, nil
}
