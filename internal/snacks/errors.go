package snacks

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidID           = errors.New("invalid identifier")
	ErrSnackNotFound       = errors.New("snack item not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNoEmployees         = errors.New("no employees available to service the order")
)

// InsufficientStockError reports a line that asked for more than the shelf
// holds. The whole order batch rolls back when any line fails this way.
type InsufficientStockError struct {
	SnackID   uuid.UUID
	ItemName  string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ItemName, e.Requested, e.Available)
}
