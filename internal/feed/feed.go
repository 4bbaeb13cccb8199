package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"

	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

// OrderReader читает полный снапшот заказов аккаунта из хранилища.
type OrderReader interface {
	ListOrders(ctx context.Context, accountUID string) ([]*models.Order, error)
}

// Snapshot — результат повторного чтения коллекции после события изменения.
type Snapshot struct {
	AccountUID string
	Orders     []*models.Order
}

// Callback вызывается на каждый новый снапшот коллекции заказов аккаунта.
type Callback func(Snapshot)

// Feed раздаёт снапшоты заказов подписчикам. Подписка — явная способность
// subscribe/unsubscribe, а не общее состояние: подписчики получают снапшот
// и сами решают, что с ним делать.
type Feed struct {
	reader OrderReader
	log    *slog.Logger

	mu      sync.Mutex
	nextID  int
	subs    map[string]map[int]Callback
	allSubs map[int]Callback
}

// New создает новый Feed поверх читателя снапшотов.
func New(reader OrderReader, log *slog.Logger) *Feed {
	return &Feed{
		reader:  reader,
		log:     log,
		subs:    make(map[string]map[int]Callback),
		allSubs: make(map[int]Callback),
	}
}

// Subscribe регистрирует подписчика на снапшоты заказов аккаунта.
// Возвращает функцию отписки.
func (f *Feed) Subscribe(accountUID string, fn Callback) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	id := f.nextID
	if f.subs[accountUID] == nil {
		f.subs[accountUID] = make(map[int]Callback)
	}
	f.subs[accountUID][id] = fn

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs[accountUID], id)
		if len(f.subs[accountUID]) == 0 {
			delete(f.subs, accountUID)
		}
	}
}

// SubscribeAll регистрирует подписчика на снапшоты всех аккаунтов.
// Возвращает функцию отписки.
func (f *Feed) SubscribeAll(fn Callback) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	id := f.nextID
	f.allSubs[id] = fn

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.allSubs, id)
	}
}

// Notify перечитывает снапшот аккаунта и раздаёт его текущим подписчикам.
func (f *Feed) Notify(ctx context.Context, accountUID string) error {
	const op = "feed.Notify"
	orders, err := f.reader.ListOrders(ctx, accountUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	snapshot := Snapshot{AccountUID: accountUID, Orders: orders}

	f.mu.Lock()
	callbacks := make([]Callback, 0, len(f.subs[accountUID])+len(f.allSubs))
	for _, fn := range f.subs[accountUID] {
		callbacks = append(callbacks, fn)
	}
	for _, fn := range f.allSubs {
		callbacks = append(callbacks, fn)
	}
	f.mu.Unlock()

	for _, fn := range callbacks {
		fn(snapshot)
	}
	return nil
}

// Run подключает Feed к очереди событий изменения и обрабатывает события
// до отмены контекста. Каждое событие приводит к полному повторному чтению
// коллекции аккаунта.
func (f *Feed) Run(ctx context.Context, ch *amqp.Channel) error {
	const op = "feed.Run"
	delivery, err := ch.Consume(
		QueueChanged,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	go func() {
		for {
			select {
			case d, ok := <-delivery:
				if !ok {
					return
				}
				if err := f.handle(ctx, d.Body); err != nil {
					f.log.Error("failed to handle change event", sl.Err(err))
					if nackErr := d.Nack(false, true); nackErr != nil {
						f.log.Error("failed to nack message", sl.Err(nackErr))
					}
					continue
				}
				if ackErr := d.Ack(false); ackErr != nil {
					f.log.Error("failed to ack message", sl.Err(ackErr))
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (f *Feed) handle(ctx context.Context, body []byte) error {
	var event ChangeEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal change event: %w", err)
	}
	return f.Notify(ctx, event.AccountUID)
}
