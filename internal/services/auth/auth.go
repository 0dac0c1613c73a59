// Package services содержит логику бизнес-уровня для аутентификации,
// выпуска токенов и управления ролями.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmalakhov/auth-service/internal/lib/jwt"
	"github.com/kmalakhov/auth-service/internal/models"
	"github.com/kmalakhov/auth-service/internal/storage"
)

var (
	// ErrInvalidCredentials возвращается, когда пара логин/пароль не найдена
	// либо для найденной пары нет записи о роли. Какое из полей не совпало,
	// наружу не сообщается.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRecordNotFound возвращается при переназначении роли
	// для неизвестного username.
	ErrRecordNotFound = errors.New("authorization record not found")
)

// Store описывает контракт хранилища для нужд сервиса.
type Store interface {
	// FindCredential ищет точное совпадение пары username/password.
	FindCredential(ctx context.Context, username, password string) error

	// GetAuthRecord возвращает запись о роли по username.
	GetAuthRecord(ctx context.Context, username string) (*models.AuthRecord, error)

	// ListAuthRecords возвращает все записи о ролях.
	ListAuthRecords(ctx context.Context) ([]models.AuthRecord, error)

	// UpdateRole меняет роль существующей записи, записи не создаёт.
	UpdateRole(ctx context.Context, username, role string) error
}

// AuthService отвечает за проверку учётных данных, выпуск и проверку JWT
// и операции над записями о ролях.
type AuthService struct {
	store    Store
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(store Store, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		store:    store,
		jwtMaker: jwtMaker,
	}
}

// Login сверяет учётные данные со справочником и выпускает подписанный токен.
// Claims токена повторяют найденную запись о роли: sub = username, role = роль.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	const op = "services.auth.Login"

	if err := s.store.FindCredential(ctx, username, password); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	record, err := s.store.GetAuthRecord(ctx, username)
	if err != nil {
		// Учётные данные совпали, но записи о роли нет — исход тот же,
		// что и при несовпадении пары.
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(record.Username, record.Role)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ValidateToken проверяет JWT и возвращает его claims, если токен корректен.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// ListAuthRecords возвращает все записи о ролях.
func (s *AuthService) ListAuthRecords(ctx context.Context) ([]models.AuthRecord, error) {
	const op = "services.auth.ListAuthRecords"

	records, err := s.store.ListAuthRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return records, nil
}

// SetRole переназначает роль существующей записи. Для неизвестного username
// возвращается ErrRecordNotFound, новая запись не создаётся.
func (s *AuthService) SetRole(ctx context.Context, username, role string) error {
	const op = "services.auth.SetRole"

	if err := s.store.UpdateRole(ctx, username, role); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
