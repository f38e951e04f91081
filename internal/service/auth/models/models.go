package models

import "time"

// LoginRequest запрос на вход администратора
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse ответ на успешный вход
type LoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LogoutResponse ответ на выход
type LogoutResponse struct {
	Success bool `json:"success"`
}
