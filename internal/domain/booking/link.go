package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luciddatattoo/studio-scheduler/internal/httperr"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
)

// ===============================
// Link de agendamento
// ===============================

const (
	// Duração de sessão aceitável num link: 15min a 8h.
	MinDurationMinutes = 15
	MaxDurationMinutes = 480

	// Todo link expira 24h após a criação.
	LinkTTL = 24 * time.Hour
)

// NewLink aloca um link de uso único com token opaco. O token é
// aleatório (uuid v4); colisão é desprezível e o índice único do
// banco cobre o resto.
func NewLink(
	artistID uint,
	tattooDescription string,
	durationMinutes int,
	now time.Time,
) (*models.BookingLink, error) {

	tattooDescription = strings.TrimSpace(tattooDescription)
	if tattooDescription == "" {
		return nil, httperr.ErrBusiness("missing_description")
	}

	if durationMinutes < MinDurationMinutes || durationMinutes > MaxDurationMinutes {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	return &models.BookingLink{
		ArtistID:          artistID,
		Token:             uuid.NewString(),
		TattooDescription: tattooDescription,
		DurationMinutes:   durationMinutes,
		IsUsed:            false,
		ExpiresAt:         now.Add(LinkTTL),
	}, nil
}

// ValidateLink aplica a máquina de estados do link na leitura.
// Usado e Expirado são terminais; a expiração nunca é gravada,
// é sempre derivada de now.
func ValidateLink(link *models.BookingLink, now time.Time) error {
	if link.IsUsed {
		return ErrLinkGone
	}
	if now.After(link.ExpiresAt) {
		return ErrLinkGone
	}
	return nil
}

// LinkState deriva o estado de exibição para a listagem
// administrativa.
func LinkState(link *models.BookingLink, now time.Time) string {
	switch {
	case link.IsUsed:
		return "used"
	case now.After(link.ExpiresAt):
		return "expired"
	default:
		return "active"
	}
}
