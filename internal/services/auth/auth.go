// Package auth содержит логику регистрации, входа и проверки JWT
// для аккаунтов продавцов.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/salmansarfraz67/Order-Buddy/internal/lib/jwt"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/password"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
// Причина (нет аккаунта или не тот пароль) наружу не раскрывается.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailNotVerified возвращается при входе с неподтверждённой почтой.
var ErrEmailNotVerified = errors.New("email not verified")

// AccountRepository описывает контракт для работы с аккаунтами в базе данных.
type AccountRepository interface {
	// RegisterAccount сохраняет новый аккаунт и возвращает его UID.
	RegisterAccount(ctx context.Context, account models.Account) (string, error)

	// GetAccountByEmail возвращает аккаунт по почте или ошибку, если не найден.
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
}

// Service отвечает за регистрацию, авторизацию и валидацию JWT.
type Service struct {
	accounts AccountRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(accounts AccountRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		accounts: accounts,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового продавца с хэшированием пароля, ролью "user"
// и пробной подпиской. Почта считается подтверждённой сразу: внешний
// контур подтверждения в этой системе не используется, признак хранится
// для совместимости с клеймами токена.
func (s *Service) Register(ctx context.Context, email, rawPassword, shopName, phone, address string) (string, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	account := models.Account{
		Email:              email,
		ShopName:           shopName,
		Phone:              phone,
		Address:            address,
		PasswordHash:       hashed,
		Role:               "user", // дефолтная роль при регистрации
		EmailVerified:      true,
		SubscriptionStatus: models.SubscriptionTrial,
	}
	uid, err := s.accounts.RegisterAccount(ctx, account)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// Login проверяет пароль продавца и генерирует JWT.
// Вход с неподтверждённой почтой запрещён.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, *models.Account, error) {
	account, err := s.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := password.CompareHash(account.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !account.EmailVerified {
		return "", nil, ErrEmailNotVerified
	}
	token, err := s.jwtMaker.GenerateToken(account.UID, account.Role, account.EmailVerified)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

// ValidateToken проверяет JWT и возвращает его клеймы.
func (s *Service) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	return s.jwtMaker.ParseToken(token)
}
