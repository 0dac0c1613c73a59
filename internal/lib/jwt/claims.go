// Package jwt реализует выпуск и проверку JWT токенов с claim-полями
// iss, sub, jti и role.
//
// Maker определяет интерфейс для выпуска и проверки токенов.
// MakerImpl — конкретная реализация на симметричном ключе (HS256).
package jwt

import (
	"errors"
	"time"
)

// minSecretLen минимальная длина ключа в байтах, требование алгоритма HS256.
const minSecretLen = 16

// ErrWeakSecret возвращается при попытке подписать токен слишком коротким
// или пустым ключом. Токен со слабой подписью не выпускается никогда.
var ErrWeakSecret = errors.New("signing secret is shorter than 16 bytes")

// Maker описывает интерфейс для выпуска и проверки JWT токенов.
type Maker interface {
	// GenerateToken выпускает подписанный токен для пары username/role.
	GenerateToken(username, role string) (string, error)
	// ParseToken проверяет подпись, издателя и срок действия токена
	// и возвращает *CustomClaims, если токен корректен.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа,
// идентификатора издателя и времени жизни токена (TTL).
type MakerImpl struct {
	issuer    string        // Идентификатор издателя, попадает в iss и проверяется при разборе.
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl.
func NewJWTMaker(issuer, secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		issuer:    issuer,
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
