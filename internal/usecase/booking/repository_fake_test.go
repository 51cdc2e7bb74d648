package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	domain "github.com/luciddatattoo/studio-scheduler/internal/domain/booking"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
)

var (
	errStoreDown = errors.New("store down")
	errNotFound  = errors.New("record not found")
)

// fakeRepo emula o repositório gorm em memória. InTx segura um
// mutex durante a transação inteira (equivalente ao lock de linha
// do Postgres, já que só existe um link por teste) e restaura o
// estado anterior quando fn falha, imitando o rollback.
type fakeRepo struct {
	mu sync.Mutex

	artists      map[uint]*models.User
	links        map[string]*models.BookingLink
	hours        []models.WorkingHours
	overrides    []models.AvailabilityOverride
	appointments []models.Appointment

	nextID     uint
	failCreate bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		artists: make(map[uint]*models.User),
		links:   make(map[string]*models.BookingLink),
		nextID:  1,
	}
}

func (f *fakeRepo) GetArtistByID(_ context.Context, id uint) (*models.User, error) {
	if a, ok := f.artists[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, domain.ErrLinkNotFound
}

func (f *fakeRepo) GetBookingLinkByToken(_ context.Context, token string) (*models.BookingLink, error) {
	if l, ok := f.links[token]; ok {
		copied := *l
		return &copied, nil
	}
	return nil, domain.ErrLinkNotFound
}

func (f *fakeRepo) LockBookingLinkByToken(ctx context.Context, token string) (*models.BookingLink, error) {
	return f.GetBookingLinkByToken(ctx, token)
}

func (f *fakeRepo) CreateBookingLink(_ context.Context, link *models.BookingLink) error {
	link.ID = f.nextID
	f.nextID++
	copied := *link
	f.links[link.Token] = &copied
	return nil
}

func (f *fakeRepo) ListBookingLinks(_ context.Context, artistID uint) ([]models.BookingLink, error) {
	var out []models.BookingLink
	for _, l := range f.links {
		if l.ArtistID == artistID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkBookingLinkUsed(_ context.Context, link *models.BookingLink) error {
	stored, ok := f.links[link.Token]
	if !ok {
		return domain.ErrLinkNotFound
	}
	if stored.IsUsed {
		return domain.ErrLinkGone
	}
	stored.IsUsed = true
	link.IsUsed = true
	return nil
}

func (f *fakeRepo) ListWorkingHours(_ context.Context, artistID uint) ([]models.WorkingHours, error) {
	var out []models.WorkingHours
	for _, wh := range f.hours {
		if wh.ArtistID == artistID {
			out = append(out, wh)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListWorkingHoursForWeekday(_ context.Context, artistID uint, weekday int) ([]models.WorkingHours, error) {
	var out []models.WorkingHours
	for _, wh := range f.hours {
		if wh.ArtistID == artistID && wh.Weekday == weekday && wh.Active {
			out = append(out, wh)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListOverridesForDate(_ context.Context, artistID uint, date time.Time) ([]models.AvailabilityOverride, error) {
	key := date.Format("2006-01-02")
	var out []models.AvailabilityOverride
	for _, o := range f.overrides {
		if o.ArtistID == artistID && o.Date.Format("2006-01-02") == key {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListOverridesForRange(_ context.Context, artistID uint, from, to time.Time) ([]models.AvailabilityOverride, error) {
	var out []models.AvailabilityOverride
	for _, o := range f.overrides {
		if o.ArtistID == artistID && !o.Date.Before(from) && !o.Date.After(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListConfirmedAppointmentsForDate(_ context.Context, artistID uint, date time.Time) ([]models.Appointment, error) {
	key := date.Format("2006-01-02")
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ArtistID == artistID &&
			ap.Status == string(domain.StatusConfirmed) &&
			ap.Date.Format("2006-01-02") == key {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListConfirmedAppointmentsForRange(_ context.Context, artistID uint, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ArtistID == artistID &&
			ap.Status == string(domain.StatusConfirmed) &&
			!ap.Date.Before(from) && !ap.Date.After(to) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.failCreate {
		return errStoreDown
	}
	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) GetAppointmentForArtist(_ context.Context, appointmentID, artistID uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == appointmentID && f.appointments[i].ArtistID == artistID {
			copied := f.appointments[i]
			return &copied, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRepo) ListUpcomingAppointments(_ context.Context, artistID uint, from time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ArtistID == artistID && !ap.Date.Before(from) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) AssertNoTimeConflict(_ context.Context, artistID uint, date time.Time, start, end string, excludeID uint) error {
	key := date.Format("2006-01-02")
	for _, ap := range f.appointments {
		if ap.ArtistID != artistID ||
			ap.ID == excludeID ||
			ap.Status != string(domain.StatusConfirmed) ||
			ap.Date.Format("2006-01-02") != key {
			continue
		}
		if ap.StartTime < end && ap.EndTime > start {
			return domain.ErrTimeConflict
		}
	}
	return nil
}

func (f *fakeRepo) InTx(_ context.Context, fn func(domain.Repository) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// snapshot para rollback
	linksBefore := make(map[string]*models.BookingLink, len(f.links))
	for k, v := range f.links {
		copied := *v
		linksBefore[k] = &copied
	}
	appointmentsBefore := append([]models.Appointment(nil), f.appointments...)
	idBefore := f.nextID

	if err := fn(f); err != nil {
		f.links = linksBefore
		f.appointments = appointmentsBefore
		f.nextID = idBefore
		return err
	}
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)
