package booking

import (
	"context"
	"time"

	domain "github.com/luciddatattoo/studio-scheduler/internal/domain/booking"
	"github.com/luciddatattoo/studio-scheduler/internal/domain/schedule"
	"github.com/luciddatattoo/studio-scheduler/internal/httperr"
	"github.com/luciddatattoo/studio-scheduler/internal/timezone"
)

type GetAvailableTimes struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetAvailableTimes(repo domain.Repository) *GetAvailableTimes {
	return &GetAvailableTimes{
		repo: repo,
		now:  timezone.Now,
	}
}

func (uc *GetAvailableTimes) Execute(
	ctx context.Context,
	token string,
	dateStr string,
) ([]string, error) {

	link, err := uc.repo.GetBookingLinkByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateLink(link, uc.now()); err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	hours, err := uc.repo.ListWorkingHoursForWeekday(
		ctx, link.ArtistID, int(date.Weekday()),
	)
	if err != nil {
		return nil, err
	}

	overrides, err := uc.repo.ListOverridesForDate(ctx, link.ArtistID, date)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListConfirmedAppointmentsForDate(ctx, link.ArtistID, date)
	if err != nil {
		return nil, err
	}

	return schedule.SlotsForDay(
		hours, overrides, appointments,
		link.DurationMinutes,
	), nil
}
