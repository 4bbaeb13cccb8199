// Package phone реализует канонизацию телефонных номеров для поиска
// повторных покупателей. Номера приходят в свободной форме ("0300-1234567",
// "+92 300 1234567"), сравнение идёт по каноничной форме.
//
// Правило канонизации: из номера убираются все нецифровые символы,
// затем берётся суффикс из последних 10 цифр — национальная значащая
// часть номера. Локальная запись с ведущим нулём и международная
// с кодом страны дают одинаковую каноничную форму.
package phone

import "strings"

// nationalLen — длина национальной значащей части номера.
const nationalLen = 10

// Digits возвращает только цифры из исходной строки.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Canonical приводит номер к каноничной форме: цифры без форматирования,
// обрезанные до суффикса из последних 10 цифр.
func Canonical(raw string) string {
	d := Digits(raw)
	if len(d) > nationalLen {
		return d[len(d)-nationalLen:]
	}
	return d
}

// Match сообщает, считаются ли два номера одним и тем же.
func Match(a, b string) bool {
	ca, cb := Canonical(a), Canonical(b)
	if ca == "" || cb == "" {
		return false
	}
	return ca == cb
}

// WhatsAppTarget приводит номер к международному виду для ссылки wa.me:
// только цифры, ведущий ноль локальной записи заменяется кодом страны 92.
func WhatsAppTarget(raw string) string {
	d := Digits(raw)
	if strings.HasPrefix(d, "0") {
		return "92" + d[1:]
	}
	return d
}
