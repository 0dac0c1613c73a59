package tokenid

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalakhov/auth-service/internal/http/middlewarectx"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTokenIDHandler_ServeHTTP(t *testing.T) {
	handler := New(newNoopLogger())

	t.Run("token id from trusted token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/jwtid", nil)
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.TokenID, "token-id-123"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got struct {
			Status string            `json:"status"`
			Data   map[string]string `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "OK", got.Status)
		assert.Equal(t, "token-id-123", got.Data["jwt_id"])
	})

	t.Run("token id missing from context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/jwtid", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
