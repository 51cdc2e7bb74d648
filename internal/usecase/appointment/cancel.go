package appointment

import (
	"context"
	"time"

	"github.com/luciddatattoo/studio-scheduler/internal/audit"
	"github.com/luciddatattoo/studio-scheduler/internal/cache"
	domain "github.com/luciddatattoo/studio-scheduler/internal/domain/booking"
	"github.com/luciddatattoo/studio-scheduler/internal/httperr"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
	"github.com/luciddatattoo/studio-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availCache *cache.Availability,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditDispatcher,
		cache: availCache,
		now:   timezone.Now,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	artistID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForArtist(ctx, appointmentID, artistID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Cancel(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// o horário voltou a ficar livre
	uc.cache.Invalidate(ctx, artistID)

	uc.audit.Dispatch(audit.Event{
		ArtistID: artistID,
		UserID:   &artistID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
