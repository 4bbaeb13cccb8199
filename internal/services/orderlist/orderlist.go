// Package orderlist реализует конвейер выборки заказов для списка:
// текстовый поиск, фильтры по статусу и диапазону дат, затем сортировка.
// Конвейер — чистая функция над снапшотом, исходный срез не меняется.
package orderlist

import (
	"sort"
	"strings"

	"github.com/salmansarfraz67/Order-Buddy/internal/lib/day"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/phone"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

// Apply фильтрует и сортирует снапшот заказов по параметрам фильтра.
//
// Текстовый поиск — регистронезависимое вхождение в имя покупателя,
// название товара, ID заказа или телефон; цифры запроса дополнительно
// сравниваются с цифрами телефона, так что частичный номер находится
// независимо от форматирования. Границы диапазона дат включительны
// и сравниваются с бизнес-датой. Сортировка тотальна: ничьи по первичному
// ключу всегда разрешаются по ID.
func Apply(orders []*models.Order, filter models.OrderFilter) []*models.Order {
	result := make([]*models.Order, 0, len(orders))
	for _, o := range orders {
		if matches(o, filter) {
			result = append(result, o)
		}
	}
	sortOrders(result, filter.SortKey)
	return result
}

func matches(o *models.Order, filter models.OrderFilter) bool {
	if !matchesSearch(o, filter.SearchText) {
		return false
	}
	if filter.Status != nil && o.Status != *filter.Status {
		return false
	}
	if filter.StartDate != nil && day.Truncate(o.Date).Before(day.Truncate(*filter.StartDate)) {
		return false
	}
	if filter.EndDate != nil && day.Truncate(o.Date).After(day.Truncate(*filter.EndDate)) {
		return false
	}
	return true
}

func matchesSearch(o *models.Order, searchText string) bool {
	if searchText == "" {
		return true
	}
	searchLower := strings.ToLower(searchText)
	if strings.Contains(strings.ToLower(o.CustomerName), searchLower) ||
		strings.Contains(strings.ToLower(o.Product), searchLower) ||
		strings.Contains(o.ID, searchText) ||
		strings.Contains(o.Phone, searchText) {
		return true
	}
	searchDigits := phone.Digits(searchText)
	return searchDigits != "" && strings.Contains(phone.Digits(o.Phone), searchDigits)
}

func sortOrders(orders []*models.Order, key models.SortKey) {
	switch key {
	case models.SortDateAsc:
		sort.Slice(orders, func(i, j int) bool {
			if !day.Same(orders[i].Date, orders[j].Date) {
				return orders[i].Date.Before(orders[j].Date)
			}
			return orders[i].ID < orders[j].ID
		})
	case models.SortAmountDesc:
		sort.Slice(orders, func(i, j int) bool {
			if orders[i].Total != orders[j].Total {
				return orders[i].Total > orders[j].Total
			}
			return orders[i].ID > orders[j].ID
		})
	case models.SortAmountAsc:
		sort.Slice(orders, func(i, j int) bool {
			if orders[i].Total != orders[j].Total {
				return orders[i].Total < orders[j].Total
			}
			return orders[i].ID < orders[j].ID
		})
	default: // SortDateDesc
		sort.Slice(orders, func(i, j int) bool {
			if !day.Same(orders[i].Date, orders[j].Date) {
				return orders[i].Date.After(orders[j].Date)
			}
			return orders[i].ID > orders[j].ID
		})
	}
}

// Products возвращает отсортированный список уникальных названий товаров
// из снапшота. Используется для автодополнения формы заказа.
func Products(orders []*models.Order) []string {
	seen := make(map[string]struct{})
	var result []string
	for _, o := range orders {
		if _, ok := seen[o.Product]; !ok {
			seen[o.Product] = struct{}{}
			result = append(result, o.Product)
		}
	}
	sort.Strings(result)
	return result
}
