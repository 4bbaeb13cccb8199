// Package storage реализует хранилище данных на основе PostgreSQL
// для аккаунтов продавцов и их заказов. Предоставляет методы создания,
// чтения, обновления и удаления записей.
package storage

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"database/sql"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/salmansarfraz67/Order-Buddy/internal/errs"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с аккаунтами и заказами.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// storeErr помечает сбои соединения с базой как временные: обработчики
// отдают такие ошибки как повторяемые по запросу пользователя. Остальные
// ошибки, включая sql.ErrNoRows, проходят без изменений.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) ||
		(errors.As(err, &pgErr) && pgerrcode.IsConnectionException(pgErr.Code)) ||
		errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", errs.ErrTransient, err)
	}
	return err
}

// CheckDatabaseReady проверяет готовность базы данных.
func (s *Storage) CheckDatabaseReady(ctx context.Context) error {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'orders'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table orders missing or query error: %w", err)
	}
	return nil
}
