package feed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

type readerStub struct {
	snapshots map[string][]*models.Order
	err       error
}

func (r *readerStub) ListOrders(_ context.Context, accountUID string) ([]*models.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.snapshots[accountUID], nil
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestNotify_DeliversSnapshotToAccountSubscribers(t *testing.T) {
	reader := &readerStub{snapshots: map[string][]*models.Order{
		"uid-1": {{ID: "a1"}, {ID: "b2"}},
		"uid-2": {{ID: "c3"}},
	}}
	f := New(reader, newNoopLogger())

	var got []Snapshot
	f.Subscribe("uid-1", func(s Snapshot) { got = append(got, s) })

	var other int
	f.Subscribe("uid-2", func(Snapshot) { other++ })

	require.NoError(t, f.Notify(context.Background(), "uid-1"))

	require.Len(t, got, 1)
	assert.Equal(t, "uid-1", got[0].AccountUID)
	assert.Len(t, got[0].Orders, 2)
	assert.Zero(t, other, "subscribers of other accounts stay silent")
}

func TestNotify_ReachesAllAccountsSubscriber(t *testing.T) {
	reader := &readerStub{snapshots: map[string][]*models.Order{
		"uid-1": {{ID: "a1"}},
		"uid-2": {{ID: "c3"}},
	}}
	f := New(reader, newNoopLogger())

	var seen []string
	f.SubscribeAll(func(s Snapshot) { seen = append(seen, s.AccountUID) })

	require.NoError(t, f.Notify(context.Background(), "uid-1"))
	require.NoError(t, f.Notify(context.Background(), "uid-2"))

	assert.Equal(t, []string{"uid-1", "uid-2"}, seen)
}

func TestUnsubscribe(t *testing.T) {
	reader := &readerStub{snapshots: map[string][]*models.Order{"uid-1": {{ID: "a1"}}}}
	f := New(reader, newNoopLogger())

	var calls int
	unsubscribe := f.Subscribe("uid-1", func(Snapshot) { calls++ })

	require.NoError(t, f.Notify(context.Background(), "uid-1"))
	unsubscribe()
	require.NoError(t, f.Notify(context.Background(), "uid-1"))

	assert.Equal(t, 1, calls)
}

func TestUnsubscribeAll(t *testing.T) {
	reader := &readerStub{snapshots: map[string][]*models.Order{"uid-1": {{ID: "a1"}}}}
	f := New(reader, newNoopLogger())

	var calls int
	unsubscribe := f.SubscribeAll(func(Snapshot) { calls++ })
	unsubscribe()

	require.NoError(t, f.Notify(context.Background(), "uid-1"))

	assert.Zero(t, calls)
}

func TestNotify_ReaderFailure(t *testing.T) {
	reader := &readerStub{err: errors.New("store temporarily unavailable")}
	f := New(reader, newNoopLogger())

	var calls int
	f.Subscribe("uid-1", func(Snapshot) { calls++ })

	err := f.Notify(context.Background(), "uid-1")

	// Подписчики не получают частичный или пустой снапшот при сбое чтения.
	require.Error(t, err)
	assert.Zero(t, calls)
}
