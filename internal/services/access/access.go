// Package access содержит оценку состояния подписки аккаунта.
// Решение о доступе выводится из персистентной записи аккаунта
// и текущего времени при каждой проверке: пробный период истекает
// сам по себе, без фоновых задач и без кеширования решения.
package access

import (
	"time"

	"github.com/salmansarfraz67/Order-Buddy/internal/lib/day"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

// Decision — производное решение о доступе аккаунта к приложению.
type Decision struct {
	DaysRemaining int  `json:"days_remaining"`
	AccessDenied  bool `json:"access_denied"`
}

// Evaluate вычисляет решение о доступе из записи аккаунта и момента now.
//
// Дни считаются от явного срока подписки, а при его отсутствии —
// от даты регистрации плюс длина пробного периода. Статусы expired
// и suspended — авторитетные переопределения: они не пересчитываются
// обратно из арифметики дат. Функция чистая и вызывается заново
// на каждой проверке доступа.
func Evaluate(account *models.Account, now time.Time, trialDays int) Decision {
	var daysRemaining int
	switch {
	case account.SubscriptionExpiry != nil:
		daysRemaining = day.CeilDiff(now, *account.SubscriptionExpiry)
	case !account.CreatedAt.IsZero():
		trialEnd := account.CreatedAt.AddDate(0, 0, trialDays)
		daysRemaining = day.CeilDiff(now, trialEnd)
	default:
		daysRemaining = trialDays
	}
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	switch account.SubscriptionStatus {
	case models.SubscriptionSuspended:
		// Дни остаются как посчитаны, блокировка не обнуляет срок.
		return Decision{DaysRemaining: daysRemaining, AccessDenied: true}
	case models.SubscriptionExpired:
		return Decision{DaysRemaining: 0, AccessDenied: true}
	case models.SubscriptionTrial, models.SubscriptionActive:
		return Decision{DaysRemaining: daysRemaining, AccessDenied: daysRemaining == 0}
	default:
		// Закрытый тип; сюда попадает только повреждённое значение.
		return Decision{DaysRemaining: 0, AccessDenied: true}
	}
}
