package reservations

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidID           = errors.New("invalid identifier")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrShowtimeNotFound    = errors.New("showtime not found")
	ErrMovieMismatch       = errors.New("showtime does not belong to the requested movie")
	ErrTooManySeats        = errors.New("too many seats requested")
)

// CapacityExhaustedError reports a booking that asked for more seats than
// the showtime has left. The booking transaction rolls back completely.
type CapacityExhaustedError struct {
	ShowtimeID uuid.UUID
	Requested  int
	Available  int
}

func (e *CapacityExhaustedError) Error() string {
	if e.Available <= 0 {
		return "show is fully booked"
	}
	return fmt.Sprintf("insufficient seats: only %d available, requested %d", e.Available, e.Requested)
}
