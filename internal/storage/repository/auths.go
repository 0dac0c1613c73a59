package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kmalakhov/auth-service/internal/models"
	"github.com/kmalakhov/auth-service/internal/storage"
)

// FindCredential ищет точное совпадение пары username/password.
// Оба поля сравниваются одним условием, по отдельности ничего не проверяется.
func (s *Storage) FindCredential(ctx context.Context, username, password string) error {
	const op = "storage.FindCredential"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var one int
	query := `SELECT 1 FROM users WHERE username = $1 AND password = $2`
	if err := s.DB.QueryRowContext(ctx, query, username, password).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetAuthRecord возвращает запись о роли по username.
func (s *Storage) GetAuthRecord(ctx context.Context, username string) (*models.AuthRecord, error) {
	const op = "storage.GetAuthRecord"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT username, role FROM auth_records WHERE username = $1`
	rec := &models.AuthRecord{}
	if err := s.DB.QueryRowContext(ctx, query, username).Scan(&rec.Username, &rec.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rec, nil
}

// ListAuthRecords возвращает все записи о ролях.
func (s *Storage) ListAuthRecords(ctx context.Context) ([]models.AuthRecord, error) {
	const op = "storage.ListAuthRecords"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT username, role FROM auth_records ORDER BY username`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.AuthRecord
	for rows.Next() {
		var rec models.AuthRecord
		if err = rows.Scan(&rec.Username, &rec.Role); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateRole меняет роль существующей записи. Одиночный UPDATE атомарен,
// конкурирующие переназначения одной записи не теряют обновлений.
func (s *Storage) UpdateRole(ctx context.Context, username, role string) error {
	const op = "storage.UpdateRole"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE auth_records SET role = $2 WHERE username = $1`
	res, err := s.DB.ExecContext(ctx, query, username, role)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
