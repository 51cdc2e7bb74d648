package appointment

import (
	"context"
	"time"

	"github.com/luciddatattoo/studio-scheduler/internal/audit"
	"github.com/luciddatattoo/studio-scheduler/internal/cache"
	domain "github.com/luciddatattoo/studio-scheduler/internal/domain/booking"
	"github.com/luciddatattoo/studio-scheduler/internal/domain/schedule"
	"github.com/luciddatattoo/studio-scheduler/internal/httperr"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
	"github.com/luciddatattoo/studio-scheduler/internal/timezone"
)

// Campos opcionais via ponteiro: presença é "o campo veio no
// request", nunca "o valor é diferente de zero". Um duration de
// 0 presente é rejeitado explicitamente, não ignorado.
type UpdateAppointmentInput struct {
	Date            *string // YYYY-MM-DD
	StartTime       *string // HH:MM
	DurationMinutes *int
	Notes           *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewUpdateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availCache *cache.Availability,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: auditDispatcher,
		cache: availCache,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	artistID uint,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForArtist(ctx, appointmentID, artistID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.Status != string(domain.StatusConfirmed) {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	timeChanged := in.Date != nil || in.StartTime != nil || in.DurationMinutes != nil

	newDate := ap.Date
	newStart := ap.StartTime
	newDuration := ap.DurationMinutes

	if in.Date != nil {
		d, err := time.ParseInLocation("2006-01-02", *in.Date, timezone.Location())
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		newDate = d
	}

	if in.StartTime != nil {
		min, err := schedule.ParseHM(*in.StartTime)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_time")
		}
		newStart = schedule.FormatHM(min)
	}

	if in.DurationMinutes != nil {
		if *in.DurationMinutes < domain.MinDurationMinutes ||
			*in.DurationMinutes > domain.MaxDurationMinutes {
			return nil, httperr.ErrBusiness("invalid_duration")
		}
		newDuration = *in.DurationMinutes
	}

	startMin, err := schedule.ParseHM(newStart)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	newEnd := schedule.FormatHM(startMin + newDuration)

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if !timeChanged {
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
	} else {
		// mudança de horário passa pelo mesmo check de conflito
		// da reserva, dentro de transação, excluindo a própria cita
		err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
			if err := tx.AssertNoTimeConflict(
				ctx, artistID, newDate, newStart, newEnd, ap.ID,
			); err != nil {
				return err
			}

			ap.Date = newDate
			ap.StartTime = newStart
			ap.EndTime = newEnd
			ap.DurationMinutes = newDuration

			return tx.UpdateAppointment(ctx, ap)
		})
		if err != nil {
			return nil, err
		}

		uc.cache.Invalidate(ctx, artistID)
	}

	uc.audit.Dispatch(audit.Event{
		ArtistID: artistID,
		UserID:   &artistID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
