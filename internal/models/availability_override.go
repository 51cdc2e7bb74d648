package models

import "time"

const (
	OverrideUnavailable         = "unavailable"
	OverrideVacation            = "vacation"
	OverridePersonalAppointment = "personal_appointment"
)

// Exceção pontual de agenda. Sem StartTime/EndTime o dia
// inteiro fica bloqueado, independente do horário semanal.
type AvailabilityOverride struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ArtistID uint `gorm:"index" json:"artist_id"`

	Date time.Time `gorm:"type:date;index" json:"date"`

	StartTime *string `gorm:"size:5" json:"start_time"` // HH:MM, opcional
	EndTime   *string `gorm:"size:5" json:"end_time"`   // HH:MM, opcional

	Kind        string `gorm:"size:30;not null" json:"type"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
