package notify

import (
	"log"

	"gorm.io/gorm"

	"github.com/luciddatattoo/studio-scheduler/internal/models"
	"github.com/luciddatattoo/studio-scheduler/internal/timezone"
)

// Event é disparado após o commit da reserva. O envio é melhor
// esforço: falha aqui é logada e nunca desfaz a cita.
type Event struct {
	Appointment models.Appointment
	ArtistEmail string
}

type Dispatcher struct {
	mailer *Mailer
	db     *gorm.DB
	queue  chan Event
}

func NewDispatcher(mailer *Mailer, db *gorm.DB) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		db:     db,
		queue:  make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev Event) {
	ap := ev.Appointment

	if err := d.mailer.SendBookingConfirmation(&ap); err != nil {
		log.Println("client confirmation email error:", err)
	} else {
		d.stamp(ap.ID, "email_sent_at")
	}

	if ev.ArtistEmail == "" {
		return
	}

	if err := d.mailer.SendArtistNotice(ev.ArtistEmail, &ap); err != nil {
		log.Println("artist notice email error:", err)
	} else {
		d.stamp(ap.ID, "push_sent_at")
	}
}

// marca o horário de envio na cita; também melhor esforço
func (d *Dispatcher) stamp(appointmentID uint, column string) {
	if d.db == nil {
		return
	}

	err := d.db.
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update(column, timezone.Now()).Error
	if err != nil {
		log.Println("notification stamp error:", err)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos a notificação (nunca
		// bloquear a resposta da reserva)
		log.Println("notify queue full, dropping event")
	}
}
