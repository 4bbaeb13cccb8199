package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/salmansarfraz67/Order-Buddy/internal/lib/day"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

// OrderRepository читает снапшот заказов аккаунта.
type OrderRepository interface {
	ListOrders(ctx context.Context, accountUID string) ([]*models.Order, error)
}

// Cache описывает методы для кэширования рассчитанных серий.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// InvalidateByPrefix удаляет все значения аккаунта.
	InvalidateByPrefix(prefix string) error
}

// topProductsLimit — размер рейтинга товаров на дашборде.
const topProductsLimit = 4

// Service считает аналитику выручки по снапшоту заказов аккаунта.
// Кеш — только ускорение: все значения пересчитываемы из снапшота,
// при изменении коллекции заказов записи аккаунта инвалидируются целиком.
type Service struct {
	repo  OrderRepository
	cache Cache
	log   *slog.Logger
	now   func() time.Time
}

// New создает новый Service. nowFn == nil означает time.Now.
func New(repo OrderRepository, cache Cache, log *slog.Logger, nowFn func() time.Time) *Service {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
		now:   nowFn,
	}
}

// RevenueReport — серия окон выручки одного периода.
type RevenueReport struct {
	Period  Period   `json:"period"`
	Buckets []Bucket `json:"buckets"`
}

// DashboardReport — сводка для шапки дашборда.
type DashboardReport struct {
	Summary     Summary       `json:"summary"`
	Headline    Headline      `json:"headline"`
	TopProducts []ProductStat `json:"top_products"`
}

func cachePrefix(accountUID string) string {
	return fmt.Sprintf("analytics:%s:", accountUID)
}

// dayStamp — бизнес-день расчёта в ключе кеша. Окна зависят от текущей
// даты, поэтому запись, сделанная вечером, не должна пережить полночь.
func (s *Service) dayStamp() string {
	return day.Truncate(s.now()).Format("2006-01-02")
}

// Revenue возвращает серию окон выручки аккаунта за выбранный период.
func (s *Service) Revenue(ctx context.Context, accountUID string, period Period) (*RevenueReport, error) {
	cacheKey := cachePrefix(accountUID) + "revenue:" + string(period) + ":" + s.dayStamp()
	var cached RevenueReport
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read analytics cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	orders, err := s.repo.ListOrders(ctx, accountUID)
	if err != nil {
		return nil, err
	}
	report := &RevenueReport{
		Period:  period,
		Buckets: Buckets(orders, period, s.now()),
	}

	if err := s.cache.Set(cacheKey, report, time.Hour); err != nil {
		s.log.Warn("failed to cache revenue report", slog.String("key", cacheKey), sl.Err(err))
	}
	return report, nil
}

// Dashboard возвращает сводные счётчики, карточки выручки и рейтинг товаров.
func (s *Service) Dashboard(ctx context.Context, accountUID string) (*DashboardReport, error) {
	cacheKey := cachePrefix(accountUID) + "dashboard:" + s.dayStamp()
	var cached DashboardReport
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read analytics cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	orders, err := s.repo.ListOrders(ctx, accountUID)
	if err != nil {
		return nil, err
	}
	report := &DashboardReport{
		Summary:     Summarize(orders),
		Headline:    Headlines(orders, s.now()),
		TopProducts: TopProducts(orders, topProductsLimit),
	}

	if err := s.cache.Set(cacheKey, report, time.Hour); err != nil {
		s.log.Warn("failed to cache dashboard report", slog.String("key", cacheKey), sl.Err(err))
	}
	return report, nil
}

// OnOrdersChanged инвалидирует кеш аккаунта. Вызывается подписчиком
// живой ленты заказов на каждый новый снапшот.
func (s *Service) OnOrdersChanged(accountUID string) {
	if err := s.cache.InvalidateByPrefix(cachePrefix(accountUID)); err != nil {
		s.log.Warn("failed to invalidate analytics cache",
			slog.String("account_uid", accountUID), sl.Err(err))
	}
}
