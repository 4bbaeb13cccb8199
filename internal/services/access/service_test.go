package access

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) GetAccount(ctx context.Context, uid string) (*models.Account, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}
func (m *RepoMock) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Account), args.Error(1)
}
func (m *RepoMock) UpdateAccountSubscription(ctx context.Context, uid string,
	status models.SubscriptionStatus, expiry *sql.NullTime) (int, error) {
	args := m.Called(ctx, uid, status, expiry)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) UpdateAccountProfile(ctx context.Context, uid, shopName, phone, address string) (int, error) {
	args := m.Called(ctx, uid, shopName, phone, address)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RemoveAccount(ctx context.Context, uid string) (int, error) {
	args := m.Called(ctx, uid)
	return args.Int(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestService_SetStatus_ExpiredForcesExpiryIntoPast(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger(), 7, func() time.Time { return now })

	repo.On("UpdateAccountSubscription", mock.Anything, "uid-1", models.SubscriptionExpired,
		mock.MatchedBy(func(expiry *sql.NullTime) bool {
			return expiry != nil && expiry.Valid && expiry.Time.Equal(now.Add(-24*time.Hour))
		})).Return(1, nil).Once()

	err := svc.SetStatus(context.Background(), "uid-1", models.SubscriptionExpired)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_SetStatus_OtherStatusesKeepExpiry(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger(), 7, nil)

	repo.On("UpdateAccountSubscription", mock.Anything, "uid-1", models.SubscriptionSuspended,
		(*sql.NullTime)(nil)).Return(1, nil).Once()

	err := svc.SetStatus(context.Background(), "uid-1", models.SubscriptionSuspended)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_SetStatus_AccountMissing(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger(), 7, nil)

	repo.On("UpdateAccountSubscription", mock.Anything, "ghost", models.SubscriptionActive,
		(*sql.NullTime)(nil)).Return(0, nil).Once()

	err := svc.SetStatus(context.Background(), "ghost", models.SubscriptionActive)
	assert.Error(t, err)
}

func TestService_UpdateDetails_ConvertsDaysToExpiry(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger(), 7, func() time.Time { return now })

	account := &models.Account{UID: "uid-1", ShopName: "Old Shop", Address: "Karachi"}
	repo.On("GetAccount", mock.Anything, "uid-1").Return(account, nil).Once()
	repo.On("UpdateAccountSubscription", mock.Anything, "uid-1", models.SubscriptionActive,
		mock.MatchedBy(func(expiry *sql.NullTime) bool {
			return expiry != nil && expiry.Valid && expiry.Time.Equal(now.AddDate(0, 0, 30))
		})).Return(1, nil).Once()
	repo.On("UpdateAccountProfile", mock.Anything, "uid-1", "New Shop", "0300-1234567", "Karachi").
		Return(1, nil).Once()

	err := svc.UpdateDetails(context.Background(), "uid-1", "New Shop", "0300-1234567",
		models.SubscriptionActive, 30)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_UpdateProfile_EmptyFieldsKeepExisting(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger(), 7, nil)

	account := &models.Account{UID: "uid-1", ShopName: "Shop", Phone: "0300", Address: "Lahore"}
	repo.On("GetAccount", mock.Anything, "uid-1").Return(account, nil).Twice()
	repo.On("UpdateAccountProfile", mock.Anything, "uid-1", "Renamed", "0300", "Lahore").
		Return(1, nil).Once()

	_, err := svc.UpdateProfile(context.Background(), "uid-1", models.DummyProfile{ShopName: "Renamed"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Check_FreshDecisionEachCall(t *testing.T) {
	registered := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	current := registered
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger(), 7, func() time.Time { return current })

	account := &models.Account{
		UID:                "uid-1",
		SubscriptionStatus: models.SubscriptionTrial,
		CreatedAt:          registered,
	}
	repo.On("GetAccount", mock.Anything, "uid-1").Return(account, nil)

	_, first, err := svc.Check(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, 7, first.DaysRemaining)

	current = registered.AddDate(0, 0, 8)
	_, second, err := svc.Check(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.True(t, second.AccessDenied)
	assert.Equal(t, 0, second.DaysRemaining)
}
