package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer    = "JwtAuthDemo"
	testSecretKey = "test_secret_key_1234567890"
)

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	tokenTTL := 15 * time.Minute
	maker := NewJWTMaker(testIssuer, testSecretKey, tokenTTL)

	tests := []struct {
		name     string
		username string
		role     string
	}{
		{
			name:     "admin user",
			username: "jack",
			role:     "Admin",
		},
		{
			name:     "regular user",
			username: "alan",
			role:     "User",
		},
		{
			name:     "user with email username",
			username: "user@domain.com",
			role:     "User",
		},
		{
			name:     "user with numbers in username",
			username: "user123",
			role:     "Admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.username, tt.role)
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			// Стандартная трёхчастная сериализация
			assert.Len(t, strings.Split(token, "."), 3)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.username, claims.Subject)
			assert.Equal(t, tt.role, claims.Role)
			assert.Equal(t, testIssuer, claims.Issuer)
			assert.NotEmpty(t, claims.ID)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	tokenTTL := 15 * time.Minute
	maker := NewJWTMaker(testIssuer, testSecretKey, tokenTTL)

	validToken, err := maker.GenerateToken("testuser", "User")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "malformed token",
			token: "invalid.token.here",
		},
		{
			name:  "expired token",
			token: createExpiredToken(t),
		},
		{
			name:  "wrong secret key",
			token: createTokenWithWrongSecret(t),
		},
		{
			name:  "wrong issuer",
			token: createTokenWithWrongIssuer(t),
		},
		{
			name:  "appended garbage",
			token: validToken + "tampered",
		},
		{
			name:  "tampered payload byte",
			token: flipTokenSegmentByte(t, validToken, 1),
		},
		{
			name:  "tampered signature byte",
			token: flipTokenSegmentByte(t, validToken, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)

			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTMaker_DifferentSecretKeys(t *testing.T) {
	maker1 := NewJWTMaker(testIssuer, "first_secret_key", 15*time.Minute)
	maker2 := NewJWTMaker(testIssuer, "different_secret_key", 15*time.Minute)

	token, err := maker1.GenerateToken("testuser", "Admin")
	require.NoError(t, err)

	claims, err := maker2.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = maker1.ParseToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}

func TestJWTMaker_WeakSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{name: "empty secret", secret: ""},
		{name: "secret below 16 bytes", secret: "short_secret_15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maker := NewJWTMaker(testIssuer, tt.secret, 15*time.Minute)
			token, err := maker.GenerateToken("testuser", "User")
			assert.ErrorIs(t, err, ErrWeakSecret)
			assert.Empty(t, token)
		})
	}
}

func TestJWTMaker_TokenIDUniqueness(t *testing.T) {
	maker := NewJWTMaker(testIssuer, testSecretKey, 15*time.Minute)

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		token, err := maker.GenerateToken("alan", "User")
		require.NoError(t, err)

		claims, err := maker.ParseToken(token)
		require.NoError(t, err)

		_, duplicate := seen[claims.ID]
		require.False(t, duplicate, "duplicate token id: %s", claims.ID)
		seen[claims.ID] = struct{}{}
	}
}

func TestJWTMaker_TokenExpiration(t *testing.T) {
	shortTTL := 100 * time.Millisecond
	maker := NewJWTMaker(testIssuer, testSecretKey, shortTTL)

	token, err := maker.GenerateToken("testuser", "User")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.NotNil(t, claims)

	time.Sleep(150 * time.Millisecond)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestJWTMaker_ZeroTTL(t *testing.T) {
	maker := NewJWTMaker(testIssuer, testSecretKey, 0)

	token, err := maker.GenerateToken("testuser", "User")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
}

func TestCustomClaims_AsMap(t *testing.T) {
	maker := NewJWTMaker(testIssuer, testSecretKey, 15*time.Minute)

	token, err := maker.GenerateToken("alan", "User")
	require.NoError(t, err)
	claims, err := maker.ParseToken(token)
	require.NoError(t, err)

	m := claims.AsMap()
	assert.Equal(t, testIssuer, m["iss"])
	assert.Equal(t, "alan", m["sub"])
	assert.Equal(t, "User", m["role"])
	assert.Equal(t, claims.ID, m["jti"])
	assert.NotEmpty(t, m["exp"])
	assert.NotEmpty(t, m["iat"])
}

func createExpiredToken(t *testing.T) string {
	maker := NewJWTMaker(testIssuer, testSecretKey, -time.Hour)
	token, err := maker.GenerateToken("testuser", "User")
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewJWTMaker(testIssuer, "wrong_secret_key_123", 15*time.Minute)
	token, err := wrongMaker.GenerateToken("testuser", "User")
	require.NoError(t, err)
	return token
}

func createTokenWithWrongIssuer(t *testing.T) string {
	wrongMaker := NewJWTMaker("OtherIssuer", testSecretKey, 15*time.Minute)
	token, err := wrongMaker.GenerateToken("testuser", "User")
	require.NoError(t, err)
	return token
}

// flipTokenSegmentByte меняет один символ в указанном сегменте токена,
// сохраняя его длину.
func flipTokenSegmentByte(t *testing.T, token string, segment int) string {
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	p := []byte(parts[segment])
	require.NotEmpty(t, p)
	idx := len(p) / 2
	if p[idx] == 'A' {
		p[idx] = 'B'
	} else {
		p[idx] = 'A'
	}
	parts[segment] = string(p)
	return strings.Join(parts, ".")
}
