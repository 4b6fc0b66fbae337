package models

import "time"

// Agent представляет агента недвижимости в системе
type Agent struct {
	ID           string     `json:"id"`            // UUID агента
	Username     string     `json:"username"`      // уникальный username
	PasswordHash string     `json:"password_hash"` // argon2id хеш пароля
	CreatedAt    time.Time  `json:"created_at"`    // время создания
	LastLogin    *time.Time `json:"last_login"`    // время последнего входа
}

// Inquiry represents a buyer inquiry accepted by the server.
// Создается напрямую или при replay отложенного действия клиента.
type Inquiry struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
