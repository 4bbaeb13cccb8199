// Package day содержит вспомогательные функции для работы с календарными
// днями: бизнес-даты заказов и окна агрегации выручки сравниваются
// по дню, без учёта времени суток.
package day

import "time"

// Format — формат бизнес-даты в запросах и ответах.
const Format = "2006-01-02"

// Truncate обнуляет время суток, оставляя календарный день.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Parse разбирает бизнес-дату из строки формата 2006-01-02.
func Parse(s string) (time.Time, error) {
	return time.Parse(Format, s)
}

// Same сообщает, приходятся ли два момента на один календарный день.
func Same(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// InRange сообщает, попадает ли день d в диапазон [start, end] включительно.
func InRange(d, start, end time.Time) bool {
	d = Truncate(d)
	return !d.Before(Truncate(start)) && !d.After(Truncate(end))
}

// MonthBounds возвращает первый и последний день месяца, на который
// приходится t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// CeilDiff возвращает количество суток от from до to, округлённое вверх.
// Отрицательные значения не обрезаются, этим занимается вызывающая сторона.
func CeilDiff(from, to time.Time) int {
	diff := to.Sub(from)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}
