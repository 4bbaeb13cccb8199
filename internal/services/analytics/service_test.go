package analytics

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

// RepoMock реализует интерфейс analytics.OrderRepository
type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) ListOrders(ctx context.Context, accountUID string) ([]*models.Order, error) {
	args := m.Called(ctx, accountUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

// mapCache повторяет сериализацию настоящего кеша, но хранит всё в памяти.
type mapCache struct {
	values map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{values: make(map[string][]byte)}
}

func (c *mapCache) Get(key string, result any) (bool, error) {
	raw, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, result)
}

func (c *mapCache) Set(key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	return nil
}

func (c *mapCache) InvalidateByPrefix(prefix string) error {
	for k := range c.values {
		if strings.HasPrefix(k, prefix) {
			delete(c.values, k)
		}
	}
	return nil
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Revenue_CacheDoesNotCrossMidnight(t *testing.T) {
	current := time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)
	repo := new(RepoMock)
	repo.On("ListOrders", mock.Anything, "uid-1").Return([]*models.Order{}, nil)
	svc := New(repo, newMapCache(), newNoopLogger(), func() time.Time { return current })

	first, err := svc.Revenue(context.Background(), "uid-1", PeriodDaily)
	require.NoError(t, err)
	require.Len(t, first.Buckets, 7)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), first.Buckets[6].WindowEnd)

	// Повторный вызов в тот же день обслуживается из кеша.
	_, err = svc.Revenue(context.Background(), "uid-1", PeriodDaily)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "ListOrders", 1)

	// После полуночи вечерняя запись не переживает смену дня:
	// серия пересчитывается, и последнее окно — уже новый день.
	current = time.Date(2025, 6, 11, 0, 10, 0, 0, time.UTC)
	next, err := svc.Revenue(context.Background(), "uid-1", PeriodDaily)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "ListOrders", 2)
	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), next.Buckets[6].WindowEnd)
}

func TestService_Dashboard_CacheKeyCarriesBusinessDay(t *testing.T) {
	current := time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)
	repo := new(RepoMock)
	repo.On("ListOrders", mock.Anything, "uid-1").Return([]*models.Order{}, nil)
	cache := newMapCache()
	svc := New(repo, cache, newNoopLogger(), func() time.Time { return current })

	_, err := svc.Dashboard(context.Background(), "uid-1")
	require.NoError(t, err)

	require.Len(t, cache.values, 1)
	for key := range cache.values {
		assert.Equal(t, "analytics:uid-1:dashboard:2025-06-10", key)
	}
}
