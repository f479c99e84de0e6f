package request

import "errors"

var ErrInvalidStatus = errors.New("invalid request status")

// Status is the closed set of service-request states. Wire values keep the
// Spanish names the rest of the platform already stores and displays.
type Status string

const (
	StatusPending  Status = "Pendiente"
	StatusAnswered Status = "Respondida"
	StatusAccepted Status = "Aceptada"
	StatusRejected Status = "Rechazada"
	StatusCanceled Status = "Cancelada"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusAnswered, StatusAccepted, StatusRejected, StatusCanceled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// IsTerminal reports whether the state has no outgoing transitions.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusAccepted, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the one-directional lifecycle:
// Pendiente → Respondida | Rechazada | Cancelada,
// Respondida → Aceptada | Rechazada.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusAnswered || next == StatusRejected || next == StatusCanceled
	case StatusAnswered:
		return next == StatusAccepted || next == StatusRejected
	default:
		return false
	}
}
