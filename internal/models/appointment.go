package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ArtistID uint `gorm:"index" json:"artist_id"`
	Artist   User `gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BookingLinkID uint        `json:"booking_link_id"`
	BookingLink   BookingLink `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100;not null" json:"client_email"`
	ClientDni   string `gorm:"size:20;not null" json:"client_dni"`

	TattooDescription string `gorm:"size:500" json:"tattoo_description"`

	Date            time.Time `gorm:"type:date;index" json:"appointment_date"`
	StartTime       string    `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime         string    `gorm:"size:5;not null" json:"end_time"`   // HH:MM
	DurationMinutes int       `json:"duration_minutes"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`

	EmailSentAt *time.Time `json:"email_sent_at"`
	PushSentAt  *time.Time `json:"push_sent_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
