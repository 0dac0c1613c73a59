package storage

import (
	"context"
	"time"

	"github.com/kmalakhov/auth-service/internal/cache"
	"github.com/kmalakhov/auth-service/internal/models"
)

const (
	authRecordKeyPrefix = "authrecord:"
	authRecordsListKey  = "authrecords:all"
)

// CachedStore кэширует чтение записей о ролях поверх любого Store.
// Учётные данные не кэшируются никогда. Переназначение роли
// инвалидирует затронутые ключи после успешной записи.
type CachedStore struct {
	next  Store
	cache *cache.Cache
	ttl   time.Duration
}

// NewCachedStore создаёт кэширующую обёртку над next.
func NewCachedStore(next Store, c *cache.Cache, ttl time.Duration) *CachedStore {
	return &CachedStore{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

// FindCredential всегда обращается к нижележащему хранилищу.
func (s *CachedStore) FindCredential(ctx context.Context, username, password string) error {
	return s.next.FindCredential(ctx, username, password)
}

// GetAuthRecord читает запись из кэша, при промахе — из хранилища.
// Ошибки кэша не фатальны: ответ приходит из хранилища.
func (s *CachedStore) GetAuthRecord(ctx context.Context, username string) (*models.AuthRecord, error) {
	key := authRecordKeyPrefix + username

	var cached models.AuthRecord
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	rec, err := s.next.GetAuthRecord(ctx, username)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, rec, s.ttl)
	return rec, nil
}

// ListAuthRecords читает полный список из кэша, при промахе — из хранилища.
func (s *CachedStore) ListAuthRecords(ctx context.Context) ([]models.AuthRecord, error) {
	var cached []models.AuthRecord
	if hit, err := s.cache.Get(ctx, authRecordsListKey, &cached); err == nil && hit {
		return cached, nil
	}

	records, err := s.next.ListAuthRecords(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, authRecordsListKey, records, s.ttl)
	return records, nil
}

// UpdateRole делегирует мутацию хранилищу и инвалидирует кэш записи и списка.
func (s *CachedStore) UpdateRole(ctx context.Context, username, role string) error {
	if err := s.next.UpdateRole(ctx, username, role); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, authRecordKeyPrefix+username)
	_ = s.cache.Invalidate(ctx, authRecordsListKey)
	return nil
}
