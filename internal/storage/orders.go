package storage

import (
	"context"
	"fmt"

	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

const orderColumns = `id, account_uid, type, customer_name, phone, address, product,
			      quantity, price, total, status, tracking_number, order_date,
			      created_at, updated_at`

// CreateOrder вставляет новый заказ и возвращает присвоенный хранилищем ID.
func (s *Storage) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	const op = "storage.CreateOrder"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO orders (account_uid, type, customer_name, phone, address,
			      product, quantity, price, total, status, tracking_number, order_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		order.AccountUID, string(order.Type), order.CustomerName, order.Phone, order.Address,
		order.Product, order.Quantity, order.Price, order.Total, string(order.Status),
		order.TrackingNumber, order.Date).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, storeErr(err))
	}
	return newID, nil
}

// UpdateOrder обновляет заказ по ID в пределах одного аккаунта и возвращает
// количество изменённых строк. Ноль означает, что заказ не существует
// или принадлежит другому аккаунту.
func (s *Storage) UpdateOrder(ctx context.Context, order models.Order, id, accountUID string) (int, error) {
	const op = "storage.UpdateOrder"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE orders
			  SET type = $1, customer_name = $2, phone = $3, address = $4, product = $5,
			      quantity = $6, price = $7, total = $8, status = $9, tracking_number = $10,
			      order_date = $11, updated_at = NOW()
			  WHERE id = $12 AND account_uid = $13`
	result, err := s.DB.ExecContext(ctx, query,
		string(order.Type), order.CustomerName, order.Phone, order.Address, order.Product,
		order.Quantity, order.Price, order.Total, string(order.Status), order.TrackingNumber,
		order.Date, id, accountUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	return int(rowsAffected), nil
}

// RemoveOrder удаляет заказ по ID в пределах одного аккаунта и возвращает
// количество удалённых строк. Удаление жёсткое, без отметки об удалении.
func (s *Storage) RemoveOrder(ctx context.Context, id, accountUID string) (int, error) {
	const op = "storage.RemoveOrder"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM orders WHERE id = $1 AND account_uid = $2`
	result, err := s.DB.ExecContext(ctx, query, id, accountUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	return int(rowsAffected), nil
}

// ListOrders возвращает полный снапшот заказов аккаунта в стабильном
// порядке. Порядок по id фиксирует разрешение ничьих в аналитике
// между повторными чтениями одного и того же состояния.
func (s *Storage) ListOrders(ctx context.Context, accountUID string) ([]*models.Order, error) {
	const op = "storage.ListOrders"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + orderColumns + `
			  FROM orders
			  WHERE account_uid = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, accountUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, storeErr(err))
		}
		result = append(result, order)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	return result, nil
}

// ReadOrder возвращает один заказ по ID в пределах аккаунта.
func (s *Storage) ReadOrder(ctx context.Context, id, accountUID string) (*models.Order, error) {
	const op = "storage.ReadOrder"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + orderColumns + `
			  FROM orders
			  WHERE id = $1 AND account_uid = $2`
	row := s.DB.QueryRowContext(ctx, query, id, accountUID)
	order, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	return order, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrder читает строку заказа. Неизвестный статус или тип товара
// в хранилище — ошибка, а не значение по умолчанию.
func scanOrder(row rowScanner) (*models.Order, error) {
	var o models.Order
	var typeStr, statusStr string
	if err := row.Scan(&o.ID, &o.AccountUID, &typeStr, &o.CustomerName, &o.Phone,
		&o.Address, &o.Product, &o.Quantity, &o.Price, &o.Total, &statusStr,
		&o.TrackingNumber, &o.Date, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if o.Type, err = models.ParseProductType(typeStr); err != nil {
		return nil, err
	}
	if o.Status, err = models.ParseOrderStatus(statusStr); err != nil {
		return nil, err
	}
	return &o, nil
}
