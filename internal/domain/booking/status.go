package booking

import "github.com/luciddatattoo/studio-scheduler/internal/httperr"

// ===============================
// Status do agendamento
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Erros de negócio
// ===============================

var (
	ErrLinkNotFound = httperr.ErrBusiness("link_not_found")
	ErrLinkGone     = httperr.ErrBusiness("link_gone")
	ErrTimeConflict = httperr.ErrBusiness("time_conflict")
)

// ===============================
// Validações
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus é o status de toda cita recém-criada
func InitialStatus() Status {
	return StatusConfirmed
}
