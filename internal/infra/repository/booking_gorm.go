package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/luciddatattoo/studio-scheduler/internal/domain/booking"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Artist
// --------------------------------------------------

func (r *BookingGormRepository) GetArtistByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var artist models.User
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

// --------------------------------------------------
// Booking link
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingLinkByToken(
	ctx context.Context,
	token string,
) (*models.BookingLink, error) {

	var link models.BookingLink
	if err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&link).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *BookingGormRepository) LockBookingLinkByToken(
	ctx context.Context,
	token string,
) (*models.BookingLink, error) {

	var link models.BookingLink
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("token = ?", token).
		First(&link).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *BookingGormRepository) CreateBookingLink(
	ctx context.Context,
	link *models.BookingLink,
) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *BookingGormRepository) ListBookingLinks(
	ctx context.Context,
	artistID uint,
) ([]models.BookingLink, error) {

	var links []models.BookingLink
	if err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *BookingGormRepository) MarkBookingLinkUsed(
	ctx context.Context,
	link *models.BookingLink,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.BookingLink{}).
		Where("id = ? AND is_used = false", link.ID).
		Update("is_used", true)

	if res.Error != nil {
		return res.Error
	}

	// já estava consumido: alguém venceu a corrida fora do lock
	if res.RowsAffected == 0 {
		return domain.ErrLinkGone
	}

	link.IsUsed = true
	return nil
}

// --------------------------------------------------
// Agenda
// --------------------------------------------------

func (r *BookingGormRepository) ListWorkingHours(
	ctx context.Context,
	artistID uint,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("weekday ASC, start_time ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *BookingGormRepository) ListWorkingHoursForWeekday(
	ctx context.Context,
	artistID uint,
	weekday int,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("artist_id = ? AND weekday = ? AND active = true", artistID, weekday).
		Order("start_time ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *BookingGormRepository) ListOverridesForDate(
	ctx context.Context,
	artistID uint,
	date time.Time,
) ([]models.AvailabilityOverride, error) {

	var overrides []models.AvailabilityOverride
	if err := r.db.WithContext(ctx).
		Where("artist_id = ? AND date = ?", artistID, date.Format("2006-01-02")).
		Find(&overrides).Error; err != nil {
		return nil, err
	}
	return overrides, nil
}

func (r *BookingGormRepository) ListOverridesForRange(
	ctx context.Context,
	artistID uint,
	from time.Time,
	to time.Time,
) ([]models.AvailabilityOverride, error) {

	var overrides []models.AvailabilityOverride
	if err := r.db.WithContext(ctx).
		Where(
			"artist_id = ? AND date BETWEEN ? AND ?",
			artistID, from.Format("2006-01-02"), to.Format("2006-01-02"),
		).
		Order("date ASC, start_time ASC").
		Find(&overrides).Error; err != nil {
		return nil, err
	}
	return overrides, nil
}

func (r *BookingGormRepository) ListConfirmedAppointmentsForDate(
	ctx context.Context,
	artistID uint,
	date time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"artist_id = ? AND date = ? AND status = ?",
			artistID, date.Format("2006-01-02"), string(domain.StatusConfirmed),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) ListConfirmedAppointmentsForRange(
	ctx context.Context,
	artistID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"artist_id = ? AND date BETWEEN ? AND ? AND status = ?",
			artistID, from.Format("2006-01-02"), to.Format("2006-01-02"),
			string(domain.StatusConfirmed),
		).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointmentForArtist(
	ctx context.Context,
	appointmentID uint,
	artistID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND artist_id = ?", appointmentID, artistID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ListUpcomingAppointments(
	ctx context.Context,
	artistID uint,
	from time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("artist_id = ? AND date >= ?", artistID, from.Format("2006-01-02")).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	artistID uint,
	date time.Time,
	start string,
	end string,
	excludeID uint,
) error {

	// "HH:MM" compara lexicograficamente na ordem cronológica,
	// então o predicado meio-aberto funciona direto no SQL
	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"artist_id = ? AND date = ? AND status = ? AND start_time < ? AND end_time > ?",
			artistID, date.Format("2006-01-02"), string(domain.StatusConfirmed),
			end, start,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return domain.ErrTimeConflict
	}

	return nil
}

// --------------------------------------------------
// Transação
// --------------------------------------------------

func (r *BookingGormRepository) InTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewBookingGormRepository(tx))
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
