// Package memory реализует хранилище учётных данных и ролей в памяти процесса.
// Справочник статический и задаётся при создании; мутация роли выполняется
// под мьютексом, чтение — под разделяемой блокировкой.
package memory

import (
	"context"
	"sync"

	"github.com/kmalakhov/auth-service/internal/models"
	"github.com/kmalakhov/auth-service/internal/storage"
)

// Store хранит учётные данные и записи о ролях в памяти.
// Наборы username в двух таблицах независимы: учётные данные могут
// существовать без записи о роли и наоборот.
type Store struct {
	mu          sync.RWMutex
	credentials []models.Credential
	authRecords []models.AuthRecord
}

// New создаёт хранилище со встроенным демонстрационным справочником.
// У пользователя jay есть учётные данные, но нет записи о роли;
// у jack — наоборот.
func New() *Store {
	return NewWithData(
		[]models.Credential{
			{Username: "jay", Password: "Foo-Pw"},
			{Username: "alan", Password: "Foo-Pw"},
			{Username: "albert", Password: "Foo-Pw"},
		},
		[]models.AuthRecord{
			{Username: "jack", Role: "Admin"},
			{Username: "albert", Role: "User"},
			{Username: "alan", Role: "User"},
		},
	)
}

// NewWithData создаёт хранилище с переданными таблицами.
func NewWithData(credentials []models.Credential, authRecords []models.AuthRecord) *Store {
	s := &Store{
		credentials: make([]models.Credential, len(credentials)),
		authRecords: make([]models.AuthRecord, len(authRecords)),
	}
	copy(s.credentials, credentials)
	copy(s.authRecords, authRecords)
	return s
}

// FindCredential ищет точное совпадение пары username/password.
func (s *Store) FindCredential(_ context.Context, username, password string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.credentials {
		if c.Username == username && c.Password == password {
			return nil
		}
	}
	return storage.ErrNotFound
}

// GetAuthRecord возвращает запись о роли по точному совпадению username.
// Если совпадений нет или их больше одной, возвращается storage.ErrNotFound.
func (s *Store) GetAuthRecord(_ context.Context, username string) (*models.AuthRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *models.AuthRecord
	for i := range s.authRecords {
		if s.authRecords[i].Username == username {
			if found != nil {
				return nil, storage.ErrNotFound
			}
			rec := s.authRecords[i]
			found = &rec
		}
	}
	if found == nil {
		return nil, storage.ErrNotFound
	}
	return found, nil
}

// ListAuthRecords возвращает копию всех записей о ролях.
func (s *Store) ListAuthRecords(_ context.Context) ([]models.AuthRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.AuthRecord, len(s.authRecords))
	copy(result, s.authRecords)
	return result, nil
}

// UpdateRole меняет роль существующей записи на месте.
// Запись для неизвестного username не создаётся.
func (s *Store) UpdateRole(_ context.Context, username, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.authRecords {
		if s.authRecords[i].Username == username {
			s.authRecords[i].Role = role
			return nil
		}
	}
	return storage.ErrNotFound
}
