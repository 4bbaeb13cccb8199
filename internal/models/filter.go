// Package models содержит структуры параметров фильтрации и сортировки
// списка заказов. Фильтр собирается из query-параметров запроса
// и передаётся в конвейер выборки целиком.
package models

import (
	"fmt"
	"time"
)

// SortKey — закрытый набор правил сортировки списка заказов.
type SortKey string

const (
	// SortDateDesc — по бизнес-дате, новые сверху (по умолчанию).
	SortDateDesc SortKey = "date-desc"
	// SortDateAsc — по бизнес-дате, старые сверху.
	SortDateAsc SortKey = "date-asc"
	// SortAmountDesc — по сумме заказа, большие сверху.
	SortAmountDesc SortKey = "amount-desc"
	// SortAmountAsc — по сумме заказа, меньшие сверху.
	SortAmountAsc SortKey = "amount-asc"
)

// ParseSortKey преобразует строку в SortKey. Пустая строка означает
// сортировку по умолчанию, любое другое неизвестное значение — ошибка.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortDateDesc, nil
	}
	switch SortKey(s) {
	case SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("unknown sort key: %q", s)
	}
}

// OrderFilter представляет параметры выборки заказов.
// Status == nil означает «все статусы», границы диапазона дат опциональны
// и включительны, сравнение идёт по бизнес-дате заказа.
type OrderFilter struct {
	SearchText string
	Status     *OrderStatus
	StartDate  *time.Time
	EndDate    *time.Time
	SortKey    SortKey
}
