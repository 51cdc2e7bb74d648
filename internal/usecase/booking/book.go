package booking

import (
	"context"
	"strings"
	"time"

	"github.com/luciddatattoo/studio-scheduler/internal/audit"
	"github.com/luciddatattoo/studio-scheduler/internal/cache"
	domain "github.com/luciddatattoo/studio-scheduler/internal/domain/booking"
	"github.com/luciddatattoo/studio-scheduler/internal/domain/schedule"
	"github.com/luciddatattoo/studio-scheduler/internal/httperr"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
	"github.com/luciddatattoo/studio-scheduler/internal/notify"
	"github.com/luciddatattoo/studio-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	Token string

	Date      string // YYYY-MM-DD
	StartTime string // HH:MM

	ClientName  string
	ClientEmail string
	ClientDni   string
}

// ======================================================
// USE CASE
// ======================================================

// BookAppointment converte a escolha de horário numa cita
// confirmada, exatamente uma vez por link, mesmo sob requisições
// concorrentes. Toda a seção crítica roda dentro de uma transação
// com lock de linha no link.
type BookAppointment struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
	audit    *audit.Dispatcher
	cache    *cache.Availability
	now      func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditDispatcher *audit.Dispatcher,
	availCache *cache.Availability,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditDispatcher,
		cache:    availCache,
		now:      timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Validação de entrada (antes de qualquer mutação)
	// --------------------------------------------------
	if strings.TrimSpace(in.ClientName) == "" ||
		strings.TrimSpace(in.ClientEmail) == "" ||
		strings.TrimSpace(in.ClientDni) == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, timezone.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	startMin, err := schedule.ParseHM(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	startHM := schedule.FormatHM(startMin) // normaliza "9:00" → "09:00"

	var created *models.Appointment
	var link *models.BookingLink

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 2️⃣ Lock de linha no link: requisições com o mesmo
		//    token serializam aqui
		// --------------------------------------------------
		l, err := tx.LockBookingLinkByToken(ctx, in.Token)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 3️⃣ Revalidação dentro do lock: o link pode ter sido
		//    consumido ou expirado depois que o cliente abriu
		//    o calendário
		// --------------------------------------------------
		if err := domain.ValidateLink(l, uc.now()); err != nil {
			return err
		}

		// --------------------------------------------------
		// 4️⃣ Rederiva os slots com os dados atuais do banco.
		//    Dois clientes podem ter visto o mesmo horário
		//    livre; só o primeiro a chegar aqui ganha.
		// --------------------------------------------------
		hours, err := tx.ListWorkingHoursForWeekday(ctx, l.ArtistID, int(date.Weekday()))
		if err != nil {
			return err
		}
		overrides, err := tx.ListOverridesForDate(ctx, l.ArtistID, date)
		if err != nil {
			return err
		}
		appointments, err := tx.ListConfirmedAppointmentsForDate(ctx, l.ArtistID, date)
		if err != nil {
			return err
		}

		slots := schedule.SlotsForDay(hours, overrides, appointments, l.DurationMinutes)

		found := false
		for _, s := range slots {
			if s == startHM {
				found = true
				break
			}
		}
		if !found {
			return domain.ErrTimeConflict
		}

		// --------------------------------------------------
		// 5️⃣ Cria a cita e consome o link, atomicamente
		// --------------------------------------------------
		ap := &models.Appointment{
			ArtistID:          l.ArtistID,
			BookingLinkID:     l.ID,
			ClientName:        strings.TrimSpace(in.ClientName),
			ClientEmail:       strings.ToLower(strings.TrimSpace(in.ClientEmail)),
			ClientDni:         strings.TrimSpace(in.ClientDni),
			TattooDescription: l.TattooDescription,
			Date:              date,
			StartTime:         startHM,
			EndTime:           schedule.FormatHM(startMin + l.DurationMinutes),
			DurationMinutes:   l.DurationMinutes,
			Status:            string(domain.InitialStatus()),
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		if err := tx.MarkBookingLinkUsed(ctx, l); err != nil {
			return err
		}

		created = ap
		link = l
		return nil
	})

	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Pós-commit: melhor esforço, nunca desfaz a reserva
	// --------------------------------------------------
	uc.cache.Invalidate(ctx, link.ArtistID)

	artistEmail := ""
	if artist, err := uc.repo.GetArtistByID(ctx, link.ArtistID); err == nil {
		artistEmail = artist.Email
	}

	uc.notifier.Dispatch(notify.Event{
		Appointment: *created,
		ArtistEmail: artistEmail,
	})

	uc.audit.Dispatch(audit.Event{
		ArtistID: link.ArtistID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &created.ID,
		Metadata: map[string]any{
			"date":  in.Date,
			"start": startHM,
			"token": link.Token,
		},
	})

	return created, nil
}
