package booking

import (
	"context"
	"time"

	"github.com/luciddatattoo/studio-scheduler/internal/audit"
	domain "github.com/luciddatattoo/studio-scheduler/internal/domain/booking"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
	"github.com/luciddatattoo/studio-scheduler/internal/timezone"
)

type CreateBookingLinkInput struct {
	ArtistID          uint
	TattooDescription string
	DurationMinutes   int
}

type CreateBookingLink struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBookingLink(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBookingLink {
	return &CreateBookingLink{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

func (uc *CreateBookingLink) Execute(
	ctx context.Context,
	in CreateBookingLinkInput,
) (*models.BookingLink, error) {

	link, err := domain.NewLink(
		in.ArtistID,
		in.TattooDescription,
		in.DurationMinutes,
		uc.now(),
	)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateBookingLink(ctx, link); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ArtistID: in.ArtistID,
		UserID:   &in.ArtistID,
		Action:   "booking_link_created",
		Entity:   "booking_link",
		EntityID: &link.ID,
	})

	return link, nil
}
