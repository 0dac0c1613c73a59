package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CustomClaims описывает полный набор claim-полей токена.
// Subject и Role всегда повторяют запись о роли, по которой токен выпущен.
type CustomClaims struct {
	Role                 string `json:"role"` // Роль пользователя
	jwt.RegisteredClaims        // Стандартные claims (Issuer, Subject, ID, ExpiresAt и пр.)
}

// AsMap возвращает claims в виде отображения claim-тип -> значение,
// как их отдаёт конечная точка интроспекции.
func (c *CustomClaims) AsMap() map[string]string {
	m := map[string]string{
		"iss":  c.Issuer,
		"sub":  c.Subject,
		"jti":  c.ID,
		"role": c.Role,
	}
	if c.ExpiresAt != nil {
		m["exp"] = strconv.FormatInt(c.ExpiresAt.Unix(), 10)
	}
	if c.IssuedAt != nil {
		m["iat"] = strconv.FormatInt(c.IssuedAt.Unix(), 10)
	}
	return m
}

// GenerateToken создает JWT токен для пары username/role, подписывая его
// секретным ключом. В jti кладётся свежий случайный UUID на каждый вызов.
//
// Время жизни токена определяется полем tokenTTL.
func (j *MakerImpl) GenerateToken(username, role string) (string, error) {
	const op = "jwt.GenerateToken"
	if len(j.secretKey) < minSecretLen {
		return "", fmt.Errorf("%s: %w", op, ErrWeakSecret)
	}
	claims := CustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.issuer,
			Subject:   username,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken парсит JWT токен и проверяет подпись, издателя и срок действия.
// Аудитория не проверяется, ключ в самом токене не допускается:
// разбор принимает только HS256 с тем же секретом, что и при выпуске.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
