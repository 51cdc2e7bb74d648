package models

import "time"

// Link de agendamento de uso único. Expira 24h após a criação;
// a expiração é derivada na leitura, nunca gravada como estado.
type BookingLink struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ArtistID uint `gorm:"index" json:"artist_id"`

	Token string `gorm:"size:64;uniqueIndex;not null" json:"token"`

	TattooDescription string `gorm:"size:500;not null" json:"tattoo_description"`
	DurationMinutes   int    `gorm:"not null" json:"duration_minutes"`

	IsUsed    bool      `gorm:"default:false" json:"is_used"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
