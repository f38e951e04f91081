package domain

import "time"

// AdminSession server-side record of a logged in admin
type AdminSession struct {
	ID        string    `json:"id"`
	ClientIP  string    `json:"clientIp"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired returns true if the session is past its expiry
func (s *AdminSession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
