package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

const accountColumns = `uid, email, shop_name, phone, address, password_hash, role,
			      email_verified, subscription_status, subscription_expiry, created_at`

// RegisterAccount сохраняет новый аккаунт продавца и возвращает его UID.
func (s *Storage) RegisterAccount(ctx context.Context, account models.Account) (string, error) {
	const op = "storage.RegisterAccount"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO accounts (email, shop_name, phone, address, password_hash, role,
			      email_verified, subscription_status, subscription_expiry)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		account.Email, account.ShopName, account.Phone, account.Address, account.PasswordHash,
		account.Role, account.EmailVerified, string(account.SubscriptionStatus),
		account.SubscriptionExpiry).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, storeErr(err))
	}
	return newUID, nil
}

// GetAccountByEmail возвращает аккаунт по адресу почты.
func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	const op = "storage.GetAccountByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + accountColumns + `
			  FROM accounts
			  WHERE email = $1`
	account, err := scanAccount(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	return account, nil
}

// GetAccount возвращает аккаунт по его UID.
func (s *Storage) GetAccount(ctx context.Context, uid string) (*models.Account, error) {
	const op = "storage.GetAccount"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + accountColumns + `
			  FROM accounts
			  WHERE uid = $1`
	account, err := scanAccount(s.DB.QueryRowContext(ctx, query, uid))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	return account, nil
}

// ListAccounts возвращает все аккаунты для административной панели.
func (s *Storage) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	const op = "storage.ListAccounts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + accountColumns + `
			  FROM accounts
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, storeErr(err))
		}
		result = append(result, account)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	return result, nil
}

// UpdateAccountProfile обновляет редактируемые поля профиля продавца.
func (s *Storage) UpdateAccountProfile(ctx context.Context, uid, shopName, phone, address string) (int, error) {
	const op = "storage.UpdateAccountProfile"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE accounts
			  SET shop_name = $1, phone = $2, address = $3
			  WHERE uid = $4`
	result, err := s.DB.ExecContext(ctx, query, shopName, phone, address, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	return int(rowsAffected), nil
}

// UpdateAccountSubscription записывает новый статус подписки и срок действия.
// Передача expiry == nil оставляет прежний срок нетронутым.
func (s *Storage) UpdateAccountSubscription(ctx context.Context, uid string,
	status models.SubscriptionStatus, expiry *sql.NullTime) (int, error) {
	const op = "storage.UpdateAccountSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var result sql.Result
	var err error
	if expiry != nil {
		query := `UPDATE accounts
			  SET subscription_status = $1, subscription_expiry = $2
			  WHERE uid = $3`
		result, err = s.DB.ExecContext(ctx, query, string(status), *expiry, uid)
	} else {
		query := `UPDATE accounts
			  SET subscription_status = $1
			  WHERE uid = $2`
		result, err = s.DB.ExecContext(ctx, query, string(status), uid)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	return int(rowsAffected), nil
}

// RemoveAccount удаляет аккаунт. Заказы аккаунта удаляются каскадом
// на уровне схемы. Операция необратима.
func (s *Storage) RemoveAccount(ctx context.Context, uid string) (int, error) {
	const op = "storage.RemoveAccount"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM accounts WHERE uid = $1`
	result, err := s.DB.ExecContext(ctx, query, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, storeErr(err))
	}
	return int(rowsAffected), nil
}

// scanAccount читает строку аккаунта. Неизвестный статус подписки
// в хранилище — ошибка, а не запасное значение.
func scanAccount(row rowScanner) (*models.Account, error) {
	var a models.Account
	var statusStr string
	var expiry sql.NullTime
	if err := row.Scan(&a.UID, &a.Email, &a.ShopName, &a.Phone, &a.Address,
		&a.PasswordHash, &a.Role, &a.EmailVerified, &statusStr, &expiry,
		&a.CreatedAt); err != nil {
		return nil, err
	}
	var err error
	if a.SubscriptionStatus, err = models.ParseSubscriptionStatus(statusStr); err != nil {
		return nil, err
	}
	if expiry.Valid {
		a.SubscriptionExpiry = &expiry.Time
	}
	return &a, nil
}
