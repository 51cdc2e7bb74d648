package models

import "time"

// Horário semanal recorrente. Pode haver mais de um período
// no mesmo dia (turnos separados).
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ArtistID uint `gorm:"index" json:"artist_id"`

	Weekday int `json:"day_of_week"` // 0 = domingo ... 6 = sábado

	StartTime string `gorm:"size:5" json:"start_time"` // HH:MM
	EndTime   string `gorm:"size:5" json:"end_time"`   // HH:MM
	Active    bool   `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
