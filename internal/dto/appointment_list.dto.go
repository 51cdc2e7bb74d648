package dto

type AppointmentListDTO struct {
	ID                uint   `json:"id"`
	Date              string `json:"appointment_date"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	DurationMinutes   int    `json:"duration_minutes"`
	Status            string `json:"status"`
	ClientName        string `json:"client_name"`
	ClientEmail       string `json:"client_email"`
	TattooDescription string `json:"tattoo_description"`
}
