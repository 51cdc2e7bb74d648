package booking

import (
	"time"

	"github.com/luciddatattoo/studio-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel muda o status sem apagar o registro: cancelados saem
// dos checks de conflito mas ficam no histórico.
func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}
