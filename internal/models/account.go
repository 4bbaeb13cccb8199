// Package models содержит доменную модель аккаунта продавца,
// включающую данные учётной записи, хэш пароля и состояние подписки.
// Структура используется в бизнес-логике и при работе с хранилищем.
package models

import (
	"fmt"
	"time"
)

// SubscriptionStatus — закрытый набор статусов подписки аккаунта.
type SubscriptionStatus string

const (
	// SubscriptionTrial — пробный период, дни считаются от даты регистрации.
	SubscriptionTrial SubscriptionStatus = "trial"
	// SubscriptionActive — оплаченная подписка, дни считаются от SubscriptionExpiry.
	SubscriptionActive SubscriptionStatus = "active"
	// SubscriptionExpired — подписка истекла, доступ закрыт независимо от дат.
	SubscriptionExpired SubscriptionStatus = "expired"
	// SubscriptionSuspended — аккаунт заблокирован администратором.
	SubscriptionSuspended SubscriptionStatus = "suspended"
)

// ParseSubscriptionStatus преобразует строку в SubscriptionStatus.
// Возвращает ошибку для любого неизвестного значения.
func ParseSubscriptionStatus(s string) (SubscriptionStatus, error) {
	switch SubscriptionStatus(s) {
	case SubscriptionTrial, SubscriptionActive, SubscriptionExpired, SubscriptionSuspended:
		return SubscriptionStatus(s), nil
	default:
		return "", fmt.Errorf("unknown subscription status: %q", s)
	}
}

// Account представляет зарегистрированного продавца.
// SubscriptionExpiry может быть nil — тогда срок действия выводится
// из даты регистрации и длины пробного периода.
type Account struct {
	UID                string             `json:"uid"`
	Email              string             `json:"email"`
	ShopName           string             `json:"shop_name"`
	Phone              string             `json:"phone,omitempty"`
	Address            string             `json:"address,omitempty"`
	PasswordHash       string             `json:"-"`
	Role               string             `json:"role"` // admin или user
	EmailVerified      bool               `json:"email_verified"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	SubscriptionExpiry *time.Time         `json:"subscription_expiry,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}

// DummyProfile используется для приёма редактируемых полей профиля
// из JSON-запроса. Все поля опциональны, пустые значения не затирают
// существующие.
type DummyProfile struct {
	ShopName string `json:"shop_name,omitempty" validate:"omitempty,min=1"`
	Phone    string `json:"phone,omitempty" validate:"omitempty"`
	Address  string `json:"address,omitempty" validate:"omitempty"`
}
