package reservations

import (
	"time"

	"cinebook/internal/customers"
	"cinebook/internal/movies"
	"cinebook/internal/showtimes"

	"github.com/google/uuid"
)

// Reservation is the booking aggregate root. It owns its tickets and snack
// orders; cancellation deletes the row and everything hanging off it. A
// cancelled reservation therefore has no status value, absence is the state.
type Reservation struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Mode       string    `json:"mode" gorm:"not null;size:20;default:'Online'"`
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;not null"`
	MovieID    uuid.UUID `json:"movie_id" gorm:"type:uuid;not null"`
	Status     Status    `json:"status" gorm:"type:varchar(20);not null;default:'Pending'"`

	Customer customers.Customer `json:"-" gorm:"foreignKey:CustomerID"`
	Movie    movies.Movie       `json:"-" gorm:"foreignKey:MovieID"`
	Tickets  []Ticket           `json:"-" gorm:"foreignKey:ReservationID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Ticket is one allocated seat. The unique index on
// (showtime_id, row_no, seat_no) is the hard guarantee that a seat is never
// sold twice for the same showtime; it is created in the constraints
// migration.
type Ticket struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	RowNo         int       `json:"row_no" gorm:"not null;check:row_no > 0"`
	SeatNo        int       `json:"seat_no" gorm:"not null;check:seat_no > 0"`
	ScreenNo      int       `json:"screen_no" gorm:"not null"`
	ShowtimeID    uuid.UUID `json:"showtime_id" gorm:"type:uuid;not null;index"`
	ReservationID uuid.UUID `json:"reservation_id" gorm:"type:uuid;not null;index"`
	Price         float64   `json:"price" gorm:"not null;check:price >= 0"`

	Showtime showtimes.Showtime `json:"-" gorm:"foreignKey:ShowtimeID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Reservation) TableName() string {
	return "reservations"
}

// TableName specifies the table name for GORM
func (Ticket) TableName() string {
	return "tickets"
}
