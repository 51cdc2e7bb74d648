package booking

import (
	"context"
	"time"

	"github.com/luciddatattoo/studio-scheduler/internal/models"
)

type Repository interface {
	// -------- Artist --------
	GetArtistByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Booking link --------
	GetBookingLinkByToken(
		ctx context.Context,
		token string,
	) (*models.BookingLink, error)

	// LockBookingLinkByToken busca o link segurando lock de
	// linha (SELECT ... FOR UPDATE). Só faz sentido dentro de
	// InTx; duas requisições com o mesmo token serializam aqui.
	LockBookingLinkByToken(
		ctx context.Context,
		token string,
	) (*models.BookingLink, error)

	CreateBookingLink(
		ctx context.Context,
		link *models.BookingLink,
	) error

	ListBookingLinks(
		ctx context.Context,
		artistID uint,
	) ([]models.BookingLink, error)

	MarkBookingLinkUsed(
		ctx context.Context,
		link *models.BookingLink,
	) error

	// -------- Agenda (leituras para o resolver) --------
	ListWorkingHours(
		ctx context.Context,
		artistID uint,
	) ([]models.WorkingHours, error)

	ListWorkingHoursForWeekday(
		ctx context.Context,
		artistID uint,
		weekday int,
	) ([]models.WorkingHours, error)

	ListOverridesForDate(
		ctx context.Context,
		artistID uint,
		date time.Time,
	) ([]models.AvailabilityOverride, error)

	ListOverridesForRange(
		ctx context.Context,
		artistID uint,
		from time.Time,
		to time.Time,
	) ([]models.AvailabilityOverride, error)

	ListConfirmedAppointmentsForDate(
		ctx context.Context,
		artistID uint,
		date time.Time,
	) ([]models.Appointment, error)

	ListConfirmedAppointmentsForRange(
		ctx context.Context,
		artistID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForArtist(
		ctx context.Context,
		appointmentID uint,
		artistID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListUpcomingAppointments(
		ctx context.Context,
		artistID uint,
		from time.Time,
	) ([]models.Appointment, error)

	// AssertNoTimeConflict falha com ErrTimeConflict se alguma
	// cita confirmada da artista sobrepõe [start, end) na data,
	// ignorando excludeID (0 = não excluir ninguém).
	AssertNoTimeConflict(
		ctx context.Context,
		artistID uint,
		date time.Time,
		start string,
		end string,
		excludeID uint,
	) error

	// -------- Transação --------
	// InTx executa fn numa transação; o Repository passado a fn
	// enxerga e muta apenas o estado da transação.
	InTx(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
