package appointment

import "github.com/cortefacil/corte-facil-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ActiveStatuses are the statuses that occupy a slot. Cancelled and
// completed appointments free the slot again.
var ActiveStatuses = []string{
	string(StatusScheduled),
	string(StatusConfirmed),
}

// IsTerminal reports whether a status admits no further transition.
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	switch current {
	case StatusCancelled:
		return httperr.ErrBusiness("already_cancelled")
	case StatusCompleted:
		return httperr.ErrBusiness("already_completed")
	}
	return nil
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusScheduled
}
