package middlewarectx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/salmansarfraz67/Order-Buddy/internal/http/middlewarectx"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/response"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
	"github.com/salmansarfraz67/Order-Buddy/internal/services/access"
)

// Mock for AccessService
type AccessServiceMock struct {
	mock.Mock
}

func (m *AccessServiceMock) Check(ctx context.Context, uid string) (*models.Account, access.Decision, error) {
	args := m.Called(ctx, uid)
	account, _ := args.Get(0).(*models.Account)
	decision, _ := args.Get(1).(access.Decision)
	return account, decision, args.Error(2)
}

func withAccountUID(r *http.Request, uid string) *http.Request {
	ctx := context.WithValue(r.Context(), middlewarectx.AccountUID, uid)
	return r.WithContext(ctx)
}

func TestAccessGateMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing account uid", func(t *testing.T) {
		accessMock := new(AccessServiceMock)
		mw := middlewarectx.AccessGateMiddleware(newNoopLogger(), accessMock)(next)

		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		accessMock.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
	})

	t.Run("check failure", func(t *testing.T) {
		accessMock := new(AccessServiceMock)
		accessMock.On("Check", mock.Anything, "uid-1").
			Return(nil, access.Decision{}, errors.New("store unavailable")).Once()
		mw := middlewarectx.AccessGateMiddleware(newNoopLogger(), accessMock)(next)

		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, withAccountUID(httptest.NewRequest(http.MethodGet, "/orders", nil), "uid-1"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("access denied carries decision", func(t *testing.T) {
		accessMock := new(AccessServiceMock)
		accessMock.On("Check", mock.Anything, "uid-1").
			Return(&models.Account{UID: "uid-1"}, access.Decision{AccessDenied: true, DaysRemaining: 0}, nil).Once()
		mw := middlewarectx.AccessGateMiddleware(newNoopLogger(), accessMock)(next)

		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, withAccountUID(httptest.NewRequest(http.MethodGet, "/orders", nil), "uid-1"))

		assert.Equal(t, http.StatusForbidden, rec.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, response.StatusError, resp.Status)
		assert.Equal(t, "subscription expired, access denied", resp.Error)
	})

	t.Run("access granted", func(t *testing.T) {
		accessMock := new(AccessServiceMock)
		accessMock.On("Check", mock.Anything, "uid-1").
			Return(&models.Account{UID: "uid-1"}, access.Decision{DaysRemaining: 5}, nil).Once()
		mw := middlewarectx.AccessGateMiddleware(newNoopLogger(), accessMock)(next)

		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, withAccountUID(httptest.NewRequest(http.MethodGet, "/orders", nil), "uid-1"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := middlewarectx.AdminMiddleware(newNoopLogger(), "4321")(next)

	withRole := func(r *http.Request, role string) *http.Request {
		return r.WithContext(context.WithValue(r.Context(), middlewarectx.Role, role))
	}

	t.Run("non-admin role", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodGet, "/admin/accounts", nil), "user"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("wrong pin", func(t *testing.T) {
		req := withRole(httptest.NewRequest(http.MethodGet, "/admin/accounts", nil), "admin")
		req.Header.Set("X-Admin-PIN", "0000")

		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin with pin", func(t *testing.T) {
		req := withRole(httptest.NewRequest(http.MethodGet, "/admin/accounts", nil), "admin")
		req.Header.Set("X-Admin-PIN", "4321")

		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
