package booking

import (
	"context"
	"time"

	domain "github.com/luciddatattoo/studio-scheduler/internal/domain/booking"
	"github.com/luciddatattoo/studio-scheduler/internal/timezone"
)

// Metadados que o cliente vê ao abrir o link: o que vai tatuar e
// quanto tempo a sessão dura. Nada de dados da conta.
type LinkInfo struct {
	TattooDescription string `json:"tattoo_description"`
	DurationMinutes   int    `json:"duration_minutes"`
	ArtistName        string `json:"artist_name"`
}

type GetLinkInfo struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetLinkInfo(repo domain.Repository) *GetLinkInfo {
	return &GetLinkInfo{
		repo: repo,
		now:  timezone.Now,
	}
}

func (uc *GetLinkInfo) Execute(
	ctx context.Context,
	token string,
) (*LinkInfo, error) {

	link, err := uc.repo.GetBookingLinkByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateLink(link, uc.now()); err != nil {
		return nil, err
	}

	info := &LinkInfo{
		TattooDescription: link.TattooDescription,
		DurationMinutes:   link.DurationMinutes,
	}

	if artist, err := uc.repo.GetArtistByID(ctx, link.ArtistID); err == nil {
		info.ArtistName = artist.Name
	}

	return info, nil
}
