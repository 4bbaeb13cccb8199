// Package customers реализует распознавание повторных покупателей
// по номеру телефона. Продавец вводит номер в форму заказа, а сервис
// подсказывает имя и адрес из истории заказов и количество прошлых
// покупок с этого номера.
package customers

import (
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/day"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/phone"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

// minLookupDigits — минимум набранных цифр для запуска поиска.
// Более короткие запросы дают ложные совпадения на частичном вводе.
const minLookupDigits = 6

// Match — найденный повторный покупатель.
type Match struct {
	MatchCount    int    `json:"match_count"`
	Name          string `json:"name"`
	Address       string `json:"address,omitempty"`
	LastOrderDate string `json:"last_order_date"`
}

// Lookup ищет в снапшоте заказы с тем же каноничным номером телефона,
// что и запрос. Возвращает nil, если цифр в запросе недостаточно
// или совпадений нет.
//
// Имя и адрес берутся из самого свежего по бизнес-дате совпадения;
// при равных датах побеждает более поздняя позиция в снапшоте,
// что детерминировано: порядок снапшота стабилен между чтениями.
func Lookup(orders []*models.Order, phoneInput string) *Match {
	if len(phone.Digits(phoneInput)) <= minLookupDigits {
		return nil
	}

	var latest *models.Order
	count := 0
	for _, o := range orders {
		if !phone.Match(o.Phone, phoneInput) {
			continue
		}
		count++
		if latest == nil || !day.Truncate(o.Date).Before(day.Truncate(latest.Date)) {
			latest = o
		}
	}
	if latest == nil {
		return nil
	}

	return &Match{
		MatchCount:    count,
		Name:          latest.CustomerName,
		Address:       latest.Address,
		LastOrderDate: latest.Date.Format(day.Format),
	}
}
