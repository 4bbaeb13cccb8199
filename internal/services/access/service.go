package access

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

// AccountRepository определяет методы для работы с аккаунтами в хранилище.
type AccountRepository interface {
	// GetAccount возвращает аккаунт по UID.
	GetAccount(ctx context.Context, uid string) (*models.Account, error)
	// ListAccounts возвращает все аккаунты.
	ListAccounts(ctx context.Context) ([]*models.Account, error)
	// UpdateAccountSubscription записывает статус и срок подписки.
	UpdateAccountSubscription(ctx context.Context, uid string, status models.SubscriptionStatus, expiry *sql.NullTime) (int, error)
	// UpdateAccountProfile обновляет поля профиля.
	UpdateAccountProfile(ctx context.Context, uid, shopName, phone, address string) (int, error)
	// RemoveAccount удаляет аккаунт вместе с его заказами.
	RemoveAccount(ctx context.Context, uid string) (int, error)
}

// Service реализует проверку доступа и административные переходы
// статуса подписки. Часы инжектируются, чтобы каждое зависящее
// от времени вычисление было детерминированным в тестах.
type Service struct {
	repo      AccountRepository
	log       *slog.Logger
	trialDays int
	now       func() time.Time
}

// New создает новый Service. nowFn == nil означает time.Now.
func New(repo AccountRepository, log *slog.Logger, trialDays int, nowFn func() time.Time) *Service {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Service{
		repo:      repo,
		log:       log,
		trialDays: trialDays,
		now:       nowFn,
	}
}

// Check возвращает аккаунт и свежее решение о доступе.
// Решение не кешируется между запросами.
func (s *Service) Check(ctx context.Context, uid string) (*models.Account, Decision, error) {
	account, err := s.repo.GetAccount(ctx, uid)
	if err != nil {
		return nil, Decision{}, err
	}
	return account, Evaluate(account, s.now(), s.trialDays), nil
}

// AccountView — запись аккаунта для административной панели
// с динамически посчитанными днями.
type AccountView struct {
	*models.Account
	DaysRemaining int  `json:"days_remaining"`
	AccessDenied  bool `json:"access_denied"`
}

// ListAccounts возвращает все аккаунты с посчитанным на текущий момент
// решением о доступе.
func (s *Service) ListAccounts(ctx context.Context) ([]AccountView, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	result := make([]AccountView, 0, len(accounts))
	for _, account := range accounts {
		decision := Evaluate(account, now, s.trialDays)
		result = append(result, AccountView{
			Account:       account,
			DaysRemaining: decision.DaysRemaining,
			AccessDenied:  decision.AccessDenied,
		})
	}
	return result, nil
}

// SetStatus переводит подписку аккаунта в новый статус.
//
// Переход в expired дополнительно сдвигает срок подписки в прошлое
// (now - 24h), чтобы арифметика дат независимо сходилась с переопределением
// статуса. Остальные переходы срок не трогают. Подтверждение оператора —
// предусловие на границе, не часть контракта сервиса.
func (s *Service) SetStatus(ctx context.Context, uid string, status models.SubscriptionStatus) error {
	var expiry *sql.NullTime
	if status == models.SubscriptionExpired {
		past := s.now().Add(-24 * time.Hour)
		expiry = &sql.NullTime{Time: past, Valid: true}
	}

	count, err := s.repo.UpdateAccountSubscription(ctx, uid, status, expiry)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("account %s not found", uid)
	}
	s.log.Info("subscription status changed",
		slog.String("account_uid", uid),
		slog.String("status", string(status)))
	return nil
}

// UpdateDetails применяет административное редактирование аккаунта:
// поля профиля, статус подписки и введённое администратором количество
// оставшихся дней. Дни в хранилище не записываются — они конвертируются
// в абсолютный срок (now + N суток) в момент записи.
func (s *Service) UpdateDetails(ctx context.Context, uid, shopName, phone string,
	status models.SubscriptionStatus, daysRemaining int) error {
	account, err := s.repo.GetAccount(ctx, uid)
	if err != nil {
		return err
	}

	expiry := sql.NullTime{Time: s.now().AddDate(0, 0, daysRemaining), Valid: true}
	if _, err := s.repo.UpdateAccountSubscription(ctx, uid, status, &expiry); err != nil {
		return err
	}
	if _, err := s.repo.UpdateAccountProfile(ctx, uid, shopName, phone, account.Address); err != nil {
		return err
	}
	s.log.Info("account details updated",
		slog.String("account_uid", uid),
		slog.String("status", string(status)),
		slog.Int("days_remaining", daysRemaining))
	return nil
}

// UpdateProfile применяет редактирование профиля владельцем.
// Пустые поля запроса не затирают существующие значения.
func (s *Service) UpdateProfile(ctx context.Context, uid string, req models.DummyProfile) (*models.Account, error) {
	account, err := s.repo.GetAccount(ctx, uid)
	if err != nil {
		return nil, err
	}

	shopName := account.ShopName
	if req.ShopName != "" {
		shopName = req.ShopName
	}
	phone := account.Phone
	if req.Phone != "" {
		phone = req.Phone
	}
	address := account.Address
	if req.Address != "" {
		address = req.Address
	}

	if _, err := s.repo.UpdateAccountProfile(ctx, uid, shopName, phone, address); err != nil {
		return nil, err
	}
	return s.repo.GetAccount(ctx, uid)
}

// Remove безвозвратно удаляет аккаунт вместе с его заказами.
func (s *Service) Remove(ctx context.Context, uid string) error {
	count, err := s.repo.RemoveAccount(ctx, uid)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("account %s not found", uid)
	}
	s.log.Info("account removed", slog.String("account_uid", uid))
	return nil
}
