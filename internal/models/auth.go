// Package models содержит доменные модели сервиса аутентификации:
// учётные данные пользователя и запись о его роли.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

// Credential представляет пару логин/пароль, переданную при входе.
// Создаётся на каждый запрос аутентификации и нигде не сохраняется.
type Credential struct {
	Username string // Имя пользователя
	Password string // Пароль в открытом виде, сравнение строгое
}

// AuthRecord представляет запись о роли пользователя.
// Роль может быть переназначена административной операцией.
type AuthRecord struct {
	Username string `json:"username"` // Имя пользователя (уникальное)
	Role     string `json:"role"`     // Роль пользователя, например Admin или User
}
