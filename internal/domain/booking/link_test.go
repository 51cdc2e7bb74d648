package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciddatattoo/studio-scheduler/internal/httperr"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
)

func TestNewLink(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	link, err := NewLink(7, "dragón en el antebrazo", 120, now)
	require.NoError(t, err)

	assert.Equal(t, uint(7), link.ArtistID)
	assert.NotEmpty(t, link.Token)
	assert.False(t, link.IsUsed)
	assert.Equal(t, now.Add(24*time.Hour), link.ExpiresAt)

	// tokens nunca se repetem
	other, err := NewLink(7, "dragón en el antebrazo", 120, now)
	require.NoError(t, err)
	assert.NotEqual(t, link.Token, other.Token)
}

func TestNewLink_DurationBounds(t *testing.T) {
	now := time.Now()

	_, err := NewLink(1, "x", 10, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))

	_, err = NewLink(1, "x", 481, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))

	_, err = NewLink(1, "x", 15, now)
	assert.NoError(t, err)

	_, err = NewLink(1, "x", 480, now)
	assert.NoError(t, err)
}

func TestNewLink_RequiresDescription(t *testing.T) {
	_, err := NewLink(1, "   ", 60, time.Now())
	assert.True(t, httperr.IsBusiness(err, "missing_description"))
}

func TestValidateLink(t *testing.T) {
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	link := &models.BookingLink{
		Token:     "tok",
		ExpiresAt: created.Add(24 * time.Hour),
	}

	// dentro da janela
	assert.NoError(t, ValidateLink(link, created.Add(time.Hour)))

	// exatamente no limite ainda vale
	assert.NoError(t, ValidateLink(link, link.ExpiresAt))

	// um segundo depois do limite: Gone
	err := ValidateLink(link, link.ExpiresAt.Add(time.Second))
	assert.ErrorIs(t, err, ErrLinkGone)

	// usado é terminal, mesmo dentro da janela
	link.IsUsed = true
	err = ValidateLink(link, created.Add(time.Hour))
	assert.ErrorIs(t, err, ErrLinkGone)
}

func TestLinkState(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	link := &models.BookingLink{ExpiresAt: now.Add(time.Hour)}
	assert.Equal(t, "active", LinkState(link, now))

	assert.Equal(t, "expired", LinkState(link, now.Add(2*time.Hour)))

	link.IsUsed = true
	assert.Equal(t, "used", LinkState(link, now))
}

func TestCancel(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)

	// cancelar duas vezes não é permitido
	err := Cancel(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
