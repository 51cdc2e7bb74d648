package appointment

import (
	"context"
	"time"

	domain "github.com/luciddatattoo/studio-scheduler/internal/domain/booking"
	"github.com/luciddatattoo/studio-scheduler/internal/dto"
	"github.com/luciddatattoo/studio-scheduler/internal/timezone"
)

type ListUpcoming struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListUpcoming(repo domain.Repository) *ListUpcoming {
	return &ListUpcoming{
		repo: repo,
		now:  timezone.Now,
	}
}

// Execute devolve as citas de hoje em diante agrupadas por data
// ISO, na ordem que o painel da artista exibe.
func (uc *ListUpcoming) Execute(
	ctx context.Context,
	artistID uint,
) (map[string][]dto.AppointmentListDTO, error) {

	from := timezone.StartOfDay(uc.now())

	appointments, err := uc.repo.ListUpcomingAppointments(ctx, artistID, from)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]dto.AppointmentListDTO)
	for _, ap := range appointments {
		key := ap.Date.Format("2006-01-02")
		grouped[key] = append(grouped[key], dto.AppointmentListDTO{
			ID:                ap.ID,
			Date:              key,
			StartTime:         ap.StartTime,
			EndTime:           ap.EndTime,
			DurationMinutes:   ap.DurationMinutes,
			Status:            ap.Status,
			ClientName:        ap.ClientName,
			ClientEmail:       ap.ClientEmail,
			TattooDescription: ap.TattooDescription,
		})
	}

	return grouped, nil
}
