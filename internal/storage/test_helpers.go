package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateAccount создает тестовый аккаунт продавца и возвращает его UID
func (f *TestDataFactory) CreateAccount(t *testing.T, email, shopName, passwordHash, role string) string {
	uid := uuid.New().String()
	_, err := f.storage.DB.Exec(`INSERT INTO accounts (uid, email, shop_name, password_hash, role, email_verified)
		VALUES ($1, $2, $3, $4, $5, TRUE)`,
		uid, email, shopName, passwordHash, role)
	require.NoError(t, err)
	return uid
}

// CreateAccountWithSubscription создает аккаунт с полными данными подписки
func (f *TestDataFactory) CreateAccountWithSubscription(t *testing.T, email, shopName, passwordHash, role string,
	subscriptionStatus string, subscriptionExpiry *time.Time) string {
	uid := uuid.New().String()
	_, err := f.storage.DB.Exec(`INSERT INTO accounts
		(uid, email, shop_name, password_hash, role, email_verified, subscription_status, subscription_expiry)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6, $7)`,
		uid, email, shopName, passwordHash, role, subscriptionStatus, subscriptionExpiry)
	require.NoError(t, err)
	return uid
}

// CreateOrder создает тестовый заказ и возвращает его ID
func (f *TestDataFactory) CreateOrder(t *testing.T, accountUID, productType, customerName, phone, product string,
	quantity int, price, total float64, status string, orderDate time.Time) string {
	var id string
	err := f.storage.DB.QueryRow(`INSERT INTO orders
		(account_uid, type, customer_name, phone, product, quantity, price, total, status, order_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`,
		accountUID, productType, customerName, phone, product, quantity, price, total, status, orderDate).Scan(&id)
	require.NoError(t, err)
	return id
}

// TestVerification содержит общие функции для проверки результатов тестов
type TestVerification struct {
	storage *Storage
}

// NewTestVerification создает новый объект для проверки результатов
func NewTestVerification(storage *Storage) *TestVerification {
	return &TestVerification{storage: storage}
}

// VerifyOrderExists проверяет существование заказа в БД
func (v *TestVerification) VerifyOrderExists(t *testing.T, orderID string) {
	var count int
	err := v.storage.DB.QueryRow("SELECT COUNT(*) FROM orders WHERE id = $1", orderID).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

// VerifyOrderDeleted проверяет удаление заказа из БД
func (v *TestVerification) VerifyOrderDeleted(t *testing.T, orderID string) {
	var count int
	err := v.storage.DB.QueryRow("SELECT COUNT(*) FROM orders WHERE id = $1", orderID).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

// VerifyOrderStatus проверяет статус заказа в БД
func (v *TestVerification) VerifyOrderStatus(t *testing.T, orderID, expectedStatus string) {
	var status string
	err := v.storage.DB.QueryRow("SELECT status FROM orders WHERE id = $1", orderID).Scan(&status)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, status)
}

// VerifyAccountSubscriptionStatus проверяет статус подписки аккаунта
func (v *TestVerification) VerifyAccountSubscriptionStatus(t *testing.T, accountUID, expectedStatus string) {
	var status string
	err := v.storage.DB.QueryRow("SELECT subscription_status FROM accounts WHERE uid = $1", accountUID).
		Scan(&status)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, status)
}
