// Package analytics содержит агрегацию выручки по заказам продавца:
// разбиение на временные окна, тренды период-к-периоду, сводные счётчики
// и рейтинг товаров. Все функции чистые: принимают снапшот заказов
// и явный момент now, между вызовами состояние не удерживается.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/salmansarfraz67/Order-Buddy/internal/lib/day"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

// Period — закрытый набор периодов разбиения выручки.
type Period string

const (
	// PeriodDaily — 7 последних календарных дней, по окну на день.
	PeriodDaily Period = "daily"
	// PeriodWeekly — 4 последних несмежных скользящих 7-дневных окна.
	PeriodWeekly Period = "weekly"
	// PeriodMonthly — 6 последних календарных месяцев.
	PeriodMonthly Period = "monthly"
)

// ParsePeriod преобразует строку в Period. Пустая строка означает
// дневное разбиение, любое другое неизвестное значение — ошибка.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return PeriodDaily, nil
	}
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return Period(s), nil
	default:
		return "", fmt.Errorf("unknown period: %q", s)
	}
}

// Bucket — одно временное окно с суммой выручки. Границы окна
// возвращаются, чтобы потребитель мог применить окно как фильтр
// по диапазону дат (клик по столбцу на графике).
type Bucket struct {
	Label       string    `json:"label"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Total       float64   `json:"total"`
}

// Buckets разбивает заказы на окна выбранного периода, заканчивающиеся
// сегодняшним днём, и считает выручку в каждом окне. Окна отдаются
// от старых к новым. Сравнение дат календарное и включительное,
// по бизнес-дате заказа; отменённые заказы не учитываются.
func Buckets(orders []*models.Order, period Period, now time.Time) []Bucket {
	today := day.Truncate(now)
	var buckets []Bucket

	switch period {
	case PeriodDaily:
		for i := 6; i >= 0; i-- {
			d := today.AddDate(0, 0, -i)
			buckets = append(buckets, Bucket{
				Label:       d.Format("Mon"),
				WindowStart: d,
				WindowEnd:   d,
				Total:       RevenueBetween(orders, d, d),
			})
		}
	case PeriodWeekly:
		for i := 3; i >= 0; i-- {
			end := today.AddDate(0, 0, -i*7)
			start := end.AddDate(0, 0, -6)
			buckets = append(buckets, Bucket{
				Label:       start.Format("2 Jan"),
				WindowStart: start,
				WindowEnd:   end,
				Total:       RevenueBetween(orders, start, end),
			})
		}
	case PeriodMonthly:
		// Шаг назад по месяцам от первого числа: AddDate от конца
		// месяца нормализует «31 февраля» в март и ломает ряд.
		anchor := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		for i := 5; i >= 0; i-- {
			first, last := day.MonthBounds(anchor.AddDate(0, -i, 0))
			buckets = append(buckets, Bucket{
				Label:       first.Format("Jan"),
				WindowStart: first,
				WindowEnd:   last,
				Total:       RevenueBetween(orders, first, last),
			})
		}
	}
	return buckets
}

// RevenueBetween суммирует выручку неотменённых заказов, чья бизнес-дата
// попадает в диапазон [start, end] включительно.
func RevenueBetween(orders []*models.Order, start, end time.Time) float64 {
	var total float64
	for _, o := range orders {
		if o.Status == models.StatusCancelled {
			continue
		}
		if day.InRange(o.Date, start, end) {
			total += o.Total
		}
	}
	return total
}

// Trend возвращает изменение текущего значения к предыдущему в процентах.
// Нулевой предыдущий период даёт 0 при нулевом текущем и 100 при любом
// положительном — рост с нуля не делится на ноль.
func Trend(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// Summary — сводные счётчики по всей истории заказов.
type Summary struct {
	TotalOrders  int `json:"total_orders"`
	ActionNeeded int `json:"action_needed"` // Заказы в нетерминальных статусах
	Cancelled    int `json:"cancelled"`
}

// Summarize считает счётчики по снапшоту заказов.
func Summarize(orders []*models.Order) Summary {
	var s Summary
	s.TotalOrders = len(orders)
	for _, o := range orders {
		switch {
		case o.Status == models.StatusCancelled:
			s.Cancelled++
		case !o.Status.IsTerminal():
			s.ActionNeeded++
		}
	}
	return s
}

// ProductStat — агрегат по одному товару.
type ProductStat struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// TopProducts группирует неотменённые заказы по названию товара,
// суммирует количество и выручку и возвращает limit лучших по выручке.
// Ничьи по выручке разрешаются по имени, чтобы результат был
// воспроизводимым между вызовами.
func TopProducts(orders []*models.Order, limit int) []ProductStat {
	byName := make(map[string]*ProductStat)
	for _, o := range orders {
		if o.Status == models.StatusCancelled {
			continue
		}
		stat, ok := byName[o.Product]
		if !ok {
			stat = &ProductStat{Name: o.Product}
			byName[o.Product] = stat
		}
		stat.Quantity += o.Quantity
		stat.Revenue += o.Total
	}

	stats := make([]ProductStat, 0, len(byName))
	for _, stat := range byName {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Revenue != stats[j].Revenue {
			return stats[i].Revenue > stats[j].Revenue
		}
		return stats[i].Name < stats[j].Name
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// HeadlineCard — выручка за период с трендом к предыдущему такому же периоду.
type HeadlineCard struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Trend    float64 `json:"trend"`
}

// Headline — карточки выручки для шапки дашборда.
type Headline struct {
	Daily   HeadlineCard `json:"daily"`   // Сегодня против вчера
	Weekly  HeadlineCard `json:"weekly"`  // Последние 7 дней против предыдущих 7
	Monthly HeadlineCard `json:"monthly"` // Последние 30 дней против предыдущих 30
}

// Headlines считает карточки выручки на момент now.
func Headlines(orders []*models.Order, now time.Time) Headline {
	today := day.Truncate(now)
	past := func(daysAgo int) time.Time { return today.AddDate(0, 0, -daysAgo) }
	card := func(current, previous float64) HeadlineCard {
		return HeadlineCard{Current: current, Previous: previous, Trend: Trend(current, previous)}
	}

	return Headline{
		Daily: card(
			RevenueBetween(orders, today, today),
			RevenueBetween(orders, past(1), past(1))),
		Weekly: card(
			RevenueBetween(orders, past(6), today),
			RevenueBetween(orders, past(13), past(7))),
		Monthly: card(
			RevenueBetween(orders, past(29), today),
			RevenueBetween(orders, past(59), past(30))),
	}
}
