// Package orders содержит бизнес-логику управления заказами продавца:
// валидацию, запись в хранилище, публикацию событий изменения
// и выборку списка через конвейер фильтрации.
package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/salmansarfraz67/Order-Buddy/internal/errs"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/day"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
	"github.com/salmansarfraz67/Order-Buddy/internal/services/customers"
	"github.com/salmansarfraz67/Order-Buddy/internal/services/orderlist"
)

// OrderRepository определяет методы для работы с заказами в хранилище.
type OrderRepository interface {
	// CreateOrder добавляет заказ и возвращает присвоенный ID.
	CreateOrder(ctx context.Context, order models.Order) (string, error)
	// UpdateOrder обновляет заказ, возвращает количество изменённых строк.
	UpdateOrder(ctx context.Context, order models.Order, id, accountUID string) (int, error)
	// RemoveOrder удаляет заказ, возвращает количество удалённых строк.
	RemoveOrder(ctx context.Context, id, accountUID string) (int, error)
	// ReadOrder возвращает заказ по ID.
	ReadOrder(ctx context.Context, id, accountUID string) (*models.Order, error)
	// ListOrders возвращает полный снапшот заказов аккаунта.
	ListOrders(ctx context.Context, accountUID string) ([]*models.Order, error)
}

// ChangeNotifier публикует событие «коллекция заказов аккаунта изменилась».
type ChangeNotifier interface {
	PublishChange(accountUID string) error
}

// Service реализует операции над заказами. Мутации пишут в хранилище
// и публикуют событие изменения; пересчёт аналитики запускается
// push-уведомлением ленты, а не завершением мутации.
type Service struct {
	repo     OrderRepository
	notifier ChangeNotifier
	log      *slog.Logger
	now      func() time.Time
}

// New создает новый Service. nowFn == nil означает time.Now.
func New(repo OrderRepository, notifier ChangeNotifier, log *slog.Logger, nowFn func() time.Time) *Service {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log,
		now:      nowFn,
	}
}

// Create создает новый заказ для аккаунта и возвращает ID.
// Некорректный ввод отклоняется до обращения к хранилищу.
// Бизнес-дата — день создания, если не передана явно.
func (s *Service) Create(ctx context.Context, accountUID string, req models.DummyOrder) (string, error) {
	order, err := s.buildOrder(accountUID, req, day.Truncate(s.now()))
	if err != nil {
		return "", err
	}

	id, err := s.repo.CreateOrder(ctx, *order)
	if err != nil {
		return "", err
	}
	s.log.Info("created new order", slog.String("id", id), slog.String("account_uid", accountUID))

	s.notifyChange(accountUID)
	return id, nil
}

// Update обновляет заказ на месте, включая перемещение между статусами.
// Не переданная бизнес-дата остаётся прежней.
func (s *Service) Update(ctx context.Context, accountUID, id string, req models.DummyOrder) error {
	existing, err := s.repo.ReadOrder(ctx, id, accountUID)
	if err != nil {
		// Чужой заказ и несуществующий заказ с точки зрения аккаунта неразличимы.
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrPermissionDenied
		}
		return err
	}

	order, err := s.buildOrder(accountUID, req, existing.Date)
	if err != nil {
		return err
	}

	count, err := s.repo.UpdateOrder(ctx, *order, id, accountUID)
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.ErrPermissionDenied
	}
	s.log.Info("updated order", slog.String("id", id))

	s.notifyChange(accountUID)
	return nil
}

// Remove безвозвратно удаляет заказ. Подтверждение оператора —
// предусловие на границе.
func (s *Service) Remove(ctx context.Context, accountUID, id string) error {
	count, err := s.repo.RemoveOrder(ctx, id, accountUID)
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.ErrPermissionDenied
	}
	s.log.Info("removed order", slog.String("id", id))

	s.notifyChange(accountUID)
	return nil
}

// Get возвращает заказ аккаунта по ID.
func (s *Service) Get(ctx context.Context, accountUID, id string) (*models.Order, error) {
	return s.repo.ReadOrder(ctx, id, accountUID)
}

// List возвращает отфильтрованный и отсортированный список заказов.
func (s *Service) List(ctx context.Context, accountUID string, filter models.OrderFilter) ([]*models.Order, error) {
	snapshot, err := s.repo.ListOrders(ctx, accountUID)
	if err != nil {
		return nil, err
	}
	return orderlist.Apply(snapshot, filter), nil
}

// Products возвращает уникальные названия товаров для автодополнения.
func (s *Service) Products(ctx context.Context, accountUID string) ([]string, error) {
	snapshot, err := s.repo.ListOrders(ctx, accountUID)
	if err != nil {
		return nil, err
	}
	return orderlist.Products(snapshot), nil
}

// LookupCustomer ищет повторного покупателя по введённому номеру телефона.
func (s *Service) LookupCustomer(ctx context.Context, accountUID, phoneInput string) (*customers.Match, error) {
	snapshot, err := s.repo.ListOrders(ctx, accountUID)
	if err != nil {
		return nil, err
	}
	return customers.Lookup(snapshot, phoneInput), nil
}

// buildOrder валидирует запрос и собирает доменный заказ.
// Итоговая сумма всегда пересчитывается из количества и цены
// в момент записи.
func (s *Service) buildOrder(accountUID string, req models.DummyOrder, defaultDate time.Time) (*models.Order, error) {
	productType, err := models.ParseProductType(req.Type)
	if err != nil {
		return nil, errs.Validation("type", err.Error())
	}
	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		return nil, errs.Validation("status", err.Error())
	}
	if productType == models.TypeDigital && (status == models.StatusPacked || status == models.StatusShipped) {
		return nil, errs.Validation("status", "not applicable to digital orders")
	}

	customerName := strings.TrimSpace(req.CustomerName)
	phoneRaw := strings.TrimSpace(req.Phone)
	product := strings.TrimSpace(req.Product)
	if customerName == "" {
		return nil, errs.Validation("customer_name", "is required")
	}
	if phoneRaw == "" {
		return nil, errs.Validation("phone", "is required")
	}
	if product == "" {
		return nil, errs.Validation("product", "is required")
	}
	if req.Quantity < 1 {
		return nil, errs.Validation("quantity", "must be at least 1")
	}
	if req.Price < 0 || math.IsNaN(req.Price) || math.IsInf(req.Price, 0) {
		return nil, errs.Validation("price", "must be a non-negative number")
	}

	orderDate := defaultDate
	if req.Date != "" {
		orderDate, err = day.Parse(req.Date)
		if err != nil {
			return nil, errs.Validation("date", fmt.Sprintf("must be in format %s", day.Format))
		}
	}

	price := math.Round(req.Price*100) / 100
	return &models.Order{
		AccountUID:     accountUID,
		Type:           productType,
		CustomerName:   customerName,
		Phone:          phoneRaw,
		Address:        strings.TrimSpace(req.Address),
		Product:        product,
		Quantity:       req.Quantity,
		Price:          price,
		Total:          math.Round(price*float64(req.Quantity)*100) / 100,
		Status:         status,
		TrackingNumber: strings.TrimSpace(req.TrackingNumber),
		Date:           orderDate,
	}, nil
}

// notifyChange публикует событие изменения коллекции. Ошибка публикации
// не откатывает мутацию: запись уже в хранилище, следующий пересчёт
// подхватит её при очередном событии.
func (s *Service) notifyChange(accountUID string) {
	if err := s.notifier.PublishChange(accountUID); err != nil {
		s.log.Warn("failed to publish change event",
			slog.String("account_uid", accountUID), sl.Err(err))
	}
}
