package booking

import (
	"context"
	"time"

	"github.com/luciddatattoo/studio-scheduler/internal/cache"
	domain "github.com/luciddatattoo/studio-scheduler/internal/domain/booking"
	"github.com/luciddatattoo/studio-scheduler/internal/domain/schedule"
	"github.com/luciddatattoo/studio-scheduler/internal/timezone"
)

// Janela do calendário público: de hoje até 2 meses à frente.
const datesWindowMonths = 2

type GetAvailableDates struct {
	repo  domain.Repository
	cache *cache.Availability
	now   func() time.Time
}

func NewGetAvailableDates(
	repo domain.Repository,
	cache *cache.Availability,
) *GetAvailableDates {
	return &GetAvailableDates{
		repo:  repo,
		cache: cache,
		now:   timezone.Now,
	}
}

func (uc *GetAvailableDates) Execute(
	ctx context.Context,
	token string,
) ([]string, error) {

	link, err := uc.repo.GetBookingLinkByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateLink(link, uc.now()); err != nil {
		return nil, err
	}

	if dates, ok := uc.cache.GetDates(ctx, link.ArtistID, link.DurationMinutes); ok {
		return dates, nil
	}

	from := timezone.StartOfDay(uc.now())
	to := from.AddDate(0, datesWindowMonths, 0)

	hours, err := uc.repo.ListWorkingHours(ctx, link.ArtistID)
	if err != nil {
		return nil, err
	}

	overrides, err := uc.repo.ListOverridesForRange(ctx, link.ArtistID, from, to)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListConfirmedAppointmentsForRange(ctx, link.ArtistID, from, to)
	if err != nil {
		return nil, err
	}

	dates := schedule.AvailableDates(
		from, to,
		hours, overrides, appointments,
		link.DurationMinutes,
	)

	uc.cache.SetDates(ctx, link.ArtistID, link.DurationMinutes, dates)

	return dates, nil
}
