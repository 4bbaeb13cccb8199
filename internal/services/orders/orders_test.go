package orders

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/salmansarfraz67/Order-Buddy/internal/errs"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

func (m *RepoMock) UpdateOrder(ctx context.Context, order models.Order, id, accountUID string) (int, error) {
	args := m.Called(ctx, order, id, accountUID)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) RemoveOrder(ctx context.Context, id, accountUID string) (int, error) {
	args := m.Called(ctx, id, accountUID)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) ReadOrder(ctx context.Context, id, accountUID string) (*models.Order, error) {
	args := m.Called(ctx, id, accountUID)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *RepoMock) ListOrders(ctx context.Context, accountUID string) ([]*models.Order, error) {
	args := m.Called(ctx, accountUID)
	snapshot, _ := args.Get(0).([]*models.Order)
	return snapshot, args.Error(1)
}

type NotifierMock struct {
	mock.Mock
}

func (m *NotifierMock) PublishChange(accountUID string) error {
	args := m.Called(accountUID)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func validRequest() models.DummyOrder {
	return models.DummyOrder{
		Type:         "Physical",
		CustomerName: "Ayesha Khan",
		Phone:        "0300-1234567",
		Address:      "House 12, Gulberg, Lahore",
		Product:      "Handmade Mug",
		Quantity:     3,
		Price:        333.333,
		Status:       "New",
	}
}

func TestCreate_ComputesTotalAndDefaultsDate(t *testing.T) {
	fixedNow := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	repo := new(RepoMock)
	notifier := new(NotifierMock)
	service := New(repo, notifier, newNoopLogger(), func() time.Time { return fixedNow })

	repo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(order models.Order) bool {
		return order.Price == 333.33 &&
			order.Total == 999.99 &&
			order.Date.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) &&
			order.AccountUID == "uid-1"
	})).Return("order-1", nil).Once()
	notifier.On("PublishChange", "uid-1").Return(nil).Once()

	id, err := service.Create(context.Background(), "uid-1", validRequest())

	require.NoError(t, err)
	assert.Equal(t, "order-1", id)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreate_ExplicitDate(t *testing.T) {
	repo := new(RepoMock)
	notifier := new(NotifierMock)
	service := New(repo, notifier, newNoopLogger(), nil)

	req := validRequest()
	req.Date = "2025-06-01"

	repo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(order models.Order) bool {
		return order.Date.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	})).Return("order-1", nil).Once()
	notifier.On("PublishChange", "uid-1").Return(nil).Once()

	_, err := service.Create(context.Background(), "uid-1", req)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreate_ValidationRejectsBeforeStore(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.DummyOrder)
	}{
		{"unknown type", func(r *models.DummyOrder) { r.Type = "Virtual" }},
		{"unknown status", func(r *models.DummyOrder) { r.Status = "Pending" }},
		{"digital cannot be shipped", func(r *models.DummyOrder) { r.Type = "Digital"; r.Status = "Shipped" }},
		{"digital cannot be packed", func(r *models.DummyOrder) { r.Type = "Digital"; r.Status = "Packed" }},
		{"blank name", func(r *models.DummyOrder) { r.CustomerName = "   " }},
		{"blank phone", func(r *models.DummyOrder) { r.Phone = "" }},
		{"blank product", func(r *models.DummyOrder) { r.Product = "  " }},
		{"zero quantity", func(r *models.DummyOrder) { r.Quantity = 0 }},
		{"negative price", func(r *models.DummyOrder) { r.Price = -1 }},
		{"bad date", func(r *models.DummyOrder) { r.Date = "15.06.2025" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(RepoMock)
			notifier := new(NotifierMock)
			service := New(repo, notifier, newNoopLogger(), nil)

			req := validRequest()
			tc.mutate(&req)

			_, err := service.Create(context.Background(), "uid-1", req)

			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
			// Хранилище и лента не трогаются до прохождения валидации.
			repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
			notifier.AssertNotCalled(t, "PublishChange", mock.Anything)
		})
	}
}

func TestCreate_PublishFailureIsNotFatal(t *testing.T) {
	repo := new(RepoMock)
	notifier := new(NotifierMock)
	service := New(repo, notifier, newNoopLogger(), nil)

	repo.On("CreateOrder", mock.Anything, mock.Anything).Return("order-1", nil).Once()
	notifier.On("PublishChange", "uid-1").Return(errors.New("broker is down")).Once()

	id, err := service.Create(context.Background(), "uid-1", validRequest())

	require.NoError(t, err)
	assert.Equal(t, "order-1", id)
	notifier.AssertExpectations(t)
}

func TestUpdate_KeepsExistingDateWhenOmitted(t *testing.T) {
	repo := new(RepoMock)
	notifier := new(NotifierMock)
	service := New(repo, notifier, newNoopLogger(), nil)

	existingDate := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	repo.On("ReadOrder", mock.Anything, "order-1", "uid-1").
		Return(&models.Order{ID: "order-1", Date: existingDate}, nil).Once()
	repo.On("UpdateOrder", mock.Anything, mock.MatchedBy(func(order models.Order) bool {
		return order.Date.Equal(existingDate)
	}), "order-1", "uid-1").Return(1, nil).Once()
	notifier.On("PublishChange", "uid-1").Return(nil).Once()

	err := service.Update(context.Background(), "uid-1", "order-1", validRequest())

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_MissingOrderLooksForeign(t *testing.T) {
	repo := new(RepoMock)
	notifier := new(NotifierMock)
	service := New(repo, notifier, newNoopLogger(), nil)

	repo.On("ReadOrder", mock.Anything, "order-x", "uid-1").
		Return(nil, sql.ErrNoRows).Once()

	err := service.Update(context.Background(), "uid-1", "order-x", validRequest())

	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	notifier.AssertNotCalled(t, "PublishChange", mock.Anything)
}

func TestUpdate_ZeroRowsMeansForeignOrder(t *testing.T) {
	repo := new(RepoMock)
	notifier := new(NotifierMock)
	service := New(repo, notifier, newNoopLogger(), nil)

	repo.On("ReadOrder", mock.Anything, "order-1", "uid-1").
		Return(&models.Order{ID: "order-1"}, nil).Once()
	repo.On("UpdateOrder", mock.Anything, mock.Anything, "order-1", "uid-1").
		Return(0, nil).Once()

	err := service.Update(context.Background(), "uid-1", "order-1", validRequest())

	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	notifier.AssertNotCalled(t, "PublishChange", mock.Anything)
}

func TestRemove(t *testing.T) {
	repo := new(RepoMock)
	notifier := new(NotifierMock)
	service := New(repo, notifier, newNoopLogger(), nil)

	repo.On("RemoveOrder", mock.Anything, "order-1", "uid-1").Return(1, nil).Once()
	notifier.On("PublishChange", "uid-1").Return(nil).Once()

	err := service.Remove(context.Background(), "uid-1", "order-1")

	require.NoError(t, err)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRemove_ZeroRows(t *testing.T) {
	repo := new(RepoMock)
	notifier := new(NotifierMock)
	service := New(repo, notifier, newNoopLogger(), nil)

	repo.On("RemoveOrder", mock.Anything, "order-x", "uid-1").Return(0, nil).Once()

	err := service.Remove(context.Background(), "uid-1", "order-x")

	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	notifier.AssertNotCalled(t, "PublishChange", mock.Anything)
}
