// Package storage определяет контракт хранилища учётных данных и записей
// о ролях. Контракт один для всех реализаций: статический in-memory
// справочник, PostgreSQL и кэширующая обёртка поверх любой из них.
package storage

import (
	"context"
	"errors"

	"github.com/kmalakhov/auth-service/internal/models"
)

// ErrNotFound возвращается, когда учётные данные или запись о роли
// не найдены. Ноль совпадений и больше одного совпадения при поиске
// записи о роли равнозначны: и то и другое — "нет такой записи".
var ErrNotFound = errors.New("not found")

// Store описывает операции над справочником учётных данных и таблицей ролей.
type Store interface {
	// FindCredential ищет точное совпадение пары username/password.
	// Оба поля сравниваются вместе, с учётом регистра, без нормализации.
	FindCredential(ctx context.Context, username, password string) error

	// GetAuthRecord возвращает запись о роли по точному совпадению username.
	GetAuthRecord(ctx context.Context, username string) (*models.AuthRecord, error)

	// ListAuthRecords возвращает все записи о ролях.
	ListAuthRecords(ctx context.Context) ([]models.AuthRecord, error)

	// UpdateRole меняет роль существующей записи. Записи не создаются:
	// для неизвестного username возвращается ErrNotFound.
	UpdateRole(ctx context.Context, username, role string) error
}
