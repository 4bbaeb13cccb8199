// Package errs определяет виды ошибок, которые ядро отдаёт наружу.
// Обработчики сопоставляют вид ошибки с HTTP-статусом: отказ в доступе
// показывается с инструкцией по исправлению, временная ошибка хранилища —
// как повторяемая по запросу пользователя, ошибка валидации — до любой
// попытки записи.
package errs

import (
	"errors"
	"fmt"
)

// ErrPermissionDenied — хранилище отклонило операцию из-за правил доступа
// (запись принадлежит другому аккаунту или правила ещё не настроены).
var ErrPermissionDenied = errors.New("permission denied by store access rules")

// ErrTransient — хранилище недоступно. Ядро не повторяет операцию само,
// повтор запускается пользователем. Предыдущий снапшот остаётся в силе.
var ErrTransient = errors.New("store temporarily unavailable")

// ValidationError — некорректные входные данные заказа. Запись в хранилище
// при такой ошибке не начинается, прежнее состояние не меняется.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: field %s %s", e.Field, e.Reason)
}

// Validation создает ValidationError для поля с указанием причины.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation сообщает, является ли ошибка (или её причина) ошибкой валидации.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
