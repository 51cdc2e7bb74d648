package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/luciddatattoo/studio-scheduler/internal/domain/booking"
	"github.com/luciddatattoo/studio-scheduler/internal/httperr"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
	"github.com/luciddatattoo/studio-scheduler/internal/timezone"
)

// segunda-feira no fuso do estúdio
var testMonday = time.Date(2025, 6, 2, 0, 0, 0, 0, timezone.Location())

// instante fixo de "agora": domingo, véspera da data reservável
var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, timezone.Location())

func setupRepo() *fakeRepo {
	repo := newFakeRepo()

	repo.artists[1] = &models.User{
		ID:    1,
		Name:  "Lucía",
		Email: "lucia@lucidda.tattoo",
	}

	// segunda 09:00–12:00
	repo.hours = []models.WorkingHours{
		{ArtistID: 1, Weekday: 1, StartTime: "09:00", EndTime: "12:00", Active: true},
	}

	repo.links["tok-1"] = &models.BookingLink{
		ID:                10,
		ArtistID:          1,
		Token:             "tok-1",
		TattooDescription: "flor en la muñeca",
		DurationMinutes:   60,
		ExpiresAt:         testNow.Add(24 * time.Hour),
	}

	repo.nextID = 100
	return repo
}

func newBookUC(repo *fakeRepo) *BookAppointment {
	uc := NewBookAppointment(repo, nil, nil, nil)
	uc.now = func() time.Time { return testNow }
	return uc
}

func validInput() BookAppointmentInput {
	return BookAppointmentInput{
		Token:       "tok-1",
		Date:        "2025-06-02",
		StartTime:   "10:00",
		ClientName:  "Ana Pérez",
		ClientEmail: "Ana@Example.com",
		ClientDni:   "30123456",
	}
}

func TestBookAppointment_Success(t *testing.T) {
	repo := setupRepo()
	uc := newBookUC(repo)

	ap, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, uint(1), ap.ArtistID)
	assert.Equal(t, uint(10), ap.BookingLinkID)
	assert.Equal(t, "10:00", ap.StartTime)
	assert.Equal(t, "11:00", ap.EndTime) // derivado: start + duração
	assert.Equal(t, 60, ap.DurationMinutes)
	assert.Equal(t, "confirmed", ap.Status)
	assert.Equal(t, "flor en la muñeca", ap.TattooDescription)
	assert.Equal(t, "ana@example.com", ap.ClientEmail)
	assert.Equal(t, "2025-06-02", ap.Date.Format("2006-01-02"))

	// exatamente uma cita, link consumido exatamente uma vez
	assert.Len(t, repo.appointments, 1)
	assert.True(t, repo.links["tok-1"].IsUsed)
}

func TestBookAppointment_NormalizesStartTime(t *testing.T) {
	repo := setupRepo()
	uc := newBookUC(repo)

	in := validInput()
	in.StartTime = "9:15"

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "09:15", ap.StartTime)
}

func TestBookAppointment_UnknownToken(t *testing.T) {
	repo := setupRepo()
	uc := newBookUC(repo)

	in := validInput()
	in.Token = "nope"

	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
	assert.Empty(t, repo.appointments)
}

func TestBookAppointment_UsedLink(t *testing.T) {
	repo := setupRepo()
	repo.links["tok-1"].IsUsed = true
	uc := newBookUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	assert.ErrorIs(t, err, domain.ErrLinkGone)
	assert.Empty(t, repo.appointments)
}

func TestBookAppointment_ExpiredLink(t *testing.T) {
	repo := setupRepo()
	// expirou 1s antes de "agora"
	repo.links["tok-1"].ExpiresAt = testNow.Add(-time.Second)
	uc := newBookUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	assert.ErrorIs(t, err, domain.ErrLinkGone)

	// Gone, nunca Conflict: não chegou a olhar a agenda
	assert.False(t, repo.links["tok-1"].IsUsed)
	assert.Empty(t, repo.appointments)
}

func TestBookAppointment_SlotAlreadyTaken(t *testing.T) {
	repo := setupRepo()
	repo.appointments = append(repo.appointments, models.Appointment{
		ID:        50,
		ArtistID:  1,
		Date:      testMonday,
		StartTime: "09:30",
		EndTime:   "10:30",
		Status:    "confirmed",
	})
	uc := newBookUC(repo)

	// 10:00–11:00 sobrepõe 09:30–10:30
	_, err := uc.Execute(context.Background(), validInput())
	assert.ErrorIs(t, err, domain.ErrTimeConflict)

	// nada mudou: cita não criada, link segue utilizável
	assert.Len(t, repo.appointments, 1)
	assert.False(t, repo.links["tok-1"].IsUsed)
}

func TestBookAppointment_OutsideWorkingHours(t *testing.T) {
	repo := setupRepo()
	uc := newBookUC(repo)

	in := validInput()
	in.StartTime = "14:00"

	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrTimeConflict)
}

func TestBookAppointment_InputValidation(t *testing.T) {
	repo := setupRepo()
	uc := newBookUC(repo)

	in := validInput()
	in.ClientDni = "   "
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_request"))

	in = validInput()
	in.Date = "02/06/2025"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	in = validInput()
	in.StartTime = "25:99"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))

	// falhas de validação nunca mutam nada
	assert.Empty(t, repo.appointments)
	assert.False(t, repo.links["tok-1"].IsUsed)
}

func TestBookAppointment_RollbackOnStoreFailure(t *testing.T) {
	repo := setupRepo()
	repo.failCreate = true
	uc := newBookUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	require.Error(t, err)

	// tudo ou nada: sem cita e sem is_used pendurado
	assert.Empty(t, repo.appointments)
	assert.False(t, repo.links["tok-1"].IsUsed)
}

func TestBookAppointment_ConcurrentSameToken(t *testing.T) {
	repo := setupRepo()
	uc := newBookUC(repo)

	inA := validInput()
	inB := validInput()
	inB.StartTime = "11:00"
	inB.ClientName = "Bruno Díaz"

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i, in := range []BookAppointmentInput{inA, inB} {
		wg.Add(1)
		go func(i int, in BookAppointmentInput) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), in)
		}(i, in)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		// o perdedor vê Gone (link já consumido sob o lock)
		assert.ErrorIs(t, err, domain.ErrLinkGone)
	}

	assert.Equal(t, 1, successes)
	assert.Len(t, repo.appointments, 1)
	assert.True(t, repo.links["tok-1"].IsUsed)
}

func TestBookAppointment_ConcurrentSameSlotDifferentTokens(t *testing.T) {
	repo := setupRepo()
	repo.links["tok-2"] = &models.BookingLink{
		ID:                11,
		ArtistID:          1,
		Token:             "tok-2",
		TattooDescription: "línea fina",
		DurationMinutes:   60,
		ExpiresAt:         testNow.Add(24 * time.Hour),
	}
	uc := newBookUC(repo)

	inA := validInput()
	inB := validInput()
	inB.Token = "tok-2"

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i, in := range []BookAppointmentInput{inA, inB} {
		wg.Add(1)
		go func(i int, in BookAppointmentInput) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), in)
		}(i, in)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		// o perdedor refaz o resolver sob a transação e vê o
		// horário ocupado
		assert.ErrorIs(t, err, domain.ErrTimeConflict)
	}

	assert.Equal(t, 1, successes)
	assert.Len(t, repo.appointments, 1)
}
