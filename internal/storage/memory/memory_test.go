package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalakhov/auth-service/internal/models"
	"github.com/kmalakhov/auth-service/internal/storage"
)

func TestStore_FindCredential(t *testing.T) {
	store := New()
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "exact match",
			username: "alan",
			password: "Foo-Pw",
			wantErr:  nil,
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "Foo-Pw",
			wantErr:  storage.ErrNotFound,
		},
		{
			name:     "wrong password",
			username: "alan",
			password: "wrong",
			wantErr:  storage.ErrNotFound,
		},
		{
			name:     "password is case sensitive",
			username: "alan",
			password: "foo-pw",
			wantErr:  storage.ErrNotFound,
		},
		{
			name:     "username is case sensitive",
			username: "Alan",
			password: "Foo-Pw",
			wantErr:  storage.ErrNotFound,
		},
		{
			name:     "empty credentials",
			username: "",
			password: "",
			wantErr:  storage.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.FindCredential(ctx, tt.username, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestStore_GetAuthRecord(t *testing.T) {
	store := New()
	ctx := context.Background()

	t.Run("existing record", func(t *testing.T) {
		rec, err := store.GetAuthRecord(ctx, "jack")
		require.NoError(t, err)
		assert.Equal(t, "jack", rec.Username)
		assert.Equal(t, "Admin", rec.Role)
	})

	t.Run("credentials without role record", func(t *testing.T) {
		// У jay есть пароль, но нет записи о роли
		require.NoError(t, store.FindCredential(ctx, "jay", "Foo-Pw"))

		rec, err := store.GetAuthRecord(ctx, "jay")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, rec)
	})

	t.Run("unknown username", func(t *testing.T) {
		rec, err := store.GetAuthRecord(ctx, "nobody")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, rec)
	})

	t.Run("duplicate records treated as not found", func(t *testing.T) {
		dup := NewWithData(nil, []models.AuthRecord{
			{Username: "twin", Role: "User"},
			{Username: "twin", Role: "Admin"},
		})

		rec, err := dup.GetAuthRecord(ctx, "twin")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, rec)
	})
}

func TestStore_ListAuthRecords(t *testing.T) {
	store := New()
	ctx := context.Background()

	records, err := store.ListAuthRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	byName := make(map[string]string, len(records))
	for _, r := range records {
		byName[r.Username] = r.Role
	}
	assert.Equal(t, "Admin", byName["jack"])
	assert.Equal(t, "User", byName["albert"])
	assert.Equal(t, "User", byName["alan"])

	// Мутация копии не затрагивает хранилище
	records[0].Role = "Hacked"
	fresh, err := store.ListAuthRecords(ctx)
	require.NoError(t, err)
	for _, r := range fresh {
		assert.NotEqual(t, "Hacked", r.Role)
	}
}

func TestStore_UpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("updates existing record in place", func(t *testing.T) {
		store := New()

		err := store.UpdateRole(ctx, "alan", "Admin")
		require.NoError(t, err)

		rec, err := store.GetAuthRecord(ctx, "alan")
		require.NoError(t, err)
		assert.Equal(t, "Admin", rec.Role)

		// Количество записей не меняется
		records, err := store.ListAuthRecords(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("does not create record for unknown username", func(t *testing.T) {
		store := New()

		err := store.UpdateRole(ctx, "jay", "Admin")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		records, err := store.ListAuthRecords(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		role := fmt.Sprintf("Role-%d", i)
		go func() {
			defer wg.Done()
			_ = store.UpdateRole(ctx, "alan", role)
		}()
		go func() {
			defer wg.Done()
			_, _ = store.GetAuthRecord(ctx, "alan")
			_, _ = store.ListAuthRecords(ctx)
		}()
	}
	wg.Wait()

	rec, err := store.GetAuthRecord(ctx, "alan")
	require.NoError(t, err)
	assert.Contains(t, rec.Role, "Role-")
}

func TestNewWithData_CopiesInput(t *testing.T) {
	ctx := context.Background()
	creds := []models.Credential{{Username: "bob", Password: "pw"}}
	records := []models.AuthRecord{{Username: "bob", Role: "User"}}

	store := NewWithData(creds, records)

	// Мутация исходных срезов не должна влиять на хранилище
	creds[0].Password = "changed"
	records[0].Role = "Admin"

	assert.NoError(t, store.FindCredential(ctx, "bob", "pw"))

	rec, err := store.GetAuthRecord(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "User", rec.Role)
}
