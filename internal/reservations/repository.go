package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cinebook/internal/customers"
	"cinebook/internal/movies"
	"cinebook/internal/showtimes"
	"cinebook/internal/snacks"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// BookSeats runs the whole booking as one transaction: customer row,
	// reservation row, first-fit seat allocation, counter decrement.
	BookSeats(ctx context.Context, attempt BookingAttempt) (*BookingRecord, error)

	ConfirmReservation(ctx context.Context, id uuid.UUID) error
	GetSummary(ctx context.Context, id uuid.UUID) (*ReservationSummary, error)

	// CancelReservation reverses a booking atomically: snack stock restored,
	// orders and tickets deleted, seat counter restored, reservation deleted.
	CancelReservation(ctx context.Context, id uuid.UUID) (*CancelRecord, error)
}

// BookingAttempt carries everything the booking transaction needs.
type BookingAttempt struct {
	Name   string
	Age    int
	Gender string

	MovieID    uuid.UUID
	ShowtimeID uuid.UUID
	Seats      int

	TicketPrice       float64
	ScreenRows        int
	ScreenSeatsPerRow int
}

type BookingRecord struct {
	Reservation Reservation
	MovieTitle  string
	Showtime    showtimes.Showtime
	Tickets     []Ticket
}

// SnackLine is one snack order line joined with its item, for summaries.
type SnackLine struct {
	ItemName string  `gorm:"column:item_name"`
	Quantity int     `gorm:"column:quantity"`
	Price    float64 `gorm:"column:price"`
}

type ReservationSummary struct {
	Reservation  Reservation
	MovieTitle   string
	Showtime     *showtimes.Showtime
	Tickets      []Ticket
	Snacks       []SnackLine
	EmployeeName string
}

type CancelRecord struct {
	TicketsReleased int
	SnackLines      int
	MovieID         uuid.UUID
	ShowtimeID      uuid.UUID
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) BookSeats(ctx context.Context, attempt BookingAttempt) (*BookingRecord, error) {
	var record BookingRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the showtime row so concurrent bookings serialize here.
		var showtime showtimes.Showtime
		err := tx.Set("gorm:query_option", "FOR UPDATE").
			Where("id = ?", attempt.ShowtimeID).
			First(&showtime).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShowtimeNotFound
			}
			return fmt.Errorf("failed to lock showtime: %w", err)
		}

		if showtime.MovieID != attempt.MovieID {
			return ErrMovieMismatch
		}

		// 2. Capacity pre-check under the lock.
		if showtime.AvailableSeats < attempt.Seats {
			return &CapacityExhaustedError{
				ShowtimeID: showtime.ID,
				Requested:  attempt.Seats,
				Available:  showtime.AvailableSeats,
			}
		}

		// 3. Walk-in customer row; no dedup against existing accounts.
		customer := customers.Customer{
			Name:   attempt.Name,
			Age:    attempt.Age,
			Gender: attempt.Gender,
		}
		if err := tx.Create(&customer).Error; err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}

		reservation := Reservation{
			Mode:       "Online",
			CustomerID: customer.ID,
			MovieID:    attempt.MovieID,
			Status:     StatusPending,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}

		// 4. First-fit allocation over the seats already ticketed.
		taken, err := loadTakenSeats(tx, showtime.ID)
		if err != nil {
			return err
		}

		tickets := make([]Ticket, 0, attempt.Seats)
		for len(tickets) < attempt.Seats {
			key, ok := NextFreeSeat(attempt.ScreenRows, attempt.ScreenSeatsPerRow, taken)
			if !ok {
				return &CapacityExhaustedError{
					ShowtimeID: showtime.ID,
					Requested:  attempt.Seats,
					Available:  len(tickets),
				}
			}

			ticket := Ticket{
				RowNo:         key.RowNo,
				SeatNo:        key.SeatNo,
				ScreenNo:      showtime.ScreenNo,
				ShowtimeID:    showtime.ID,
				ReservationID: reservation.ID,
				Price:         attempt.TicketPrice,
			}
			// Postgres aborts the whole transaction on a failed INSERT, so
			// the insert runs inside a savepoint we can roll back to before
			// rescanning.
			if err := tx.SavePoint("seat_insert").Error; err != nil {
				return fmt.Errorf("failed to create savepoint: %w", err)
			}
			if err := tx.Create(&ticket).Error; err != nil {
				// A concurrent transaction took this seat between our scan and
				// the insert. The unique index caught it; mark the seat taken
				// and rescan.
				if isUniqueViolation(err) {
					if err := tx.RollbackTo("seat_insert").Error; err != nil {
						return fmt.Errorf("failed to roll back to savepoint: %w", err)
					}
					taken[key] = true
					continue
				}
				return fmt.Errorf("failed to create ticket: %w", err)
			}
			taken[key] = true

			// Re-read the persisted row; a store-side default or trigger may
			// have set a different price, and the stored value wins.
			if err := tx.Where("id = ?", ticket.ID).First(&ticket).Error; err != nil {
				return fmt.Errorf("failed to reload ticket: %w", err)
			}
			tickets = append(tickets, ticket)
		}

		// 5. Conditional counter decrement; zero rows means another
		// transaction drained the counter after our pre-check.
		result := tx.Model(&showtimes.Showtime{}).
			Where("id = ? AND available_seats >= ?", showtime.ID, attempt.Seats).
			Update("available_seats", gorm.Expr("available_seats - ?", attempt.Seats))
		if result.Error != nil {
			return fmt.Errorf("failed to update available seats: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return &CapacityExhaustedError{
				ShowtimeID: showtime.ID,
				Requested:  attempt.Seats,
				Available:  0,
			}
		}

		var movie movies.Movie
		if err := tx.Where("id = ?", attempt.MovieID).First(&movie).Error; err != nil {
			return fmt.Errorf("failed to load movie: %w", err)
		}

		showtime.AvailableSeats -= attempt.Seats
		record = BookingRecord{
			Reservation: reservation,
			MovieTitle:  movie.Title,
			Showtime:    showtime,
			Tickets:     tickets,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *repository) ConfirmReservation(ctx context.Context, id uuid.UUID) error {
	// Deliberately a blind UPDATE: confirming an already confirmed
	// reservation is a no-op, and a missing one surfaces from the summary
	// read that follows.
	return r.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("id = ?", id).
		Update("status", StatusConfirmed).Error
}

func (r *repository) GetSummary(ctx context.Context, id uuid.UUID) (*ReservationSummary, error) {
	db := r.db.WithContext(ctx)

	var reservation Reservation
	err := db.Preload("Movie").
		Where("id = ?", id).
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to load reservation: %w", err)
	}

	var tickets []Ticket
	err = db.Where("reservation_id = ?", id).
		Order("row_no ASC, seat_no ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}

	summary := &ReservationSummary{
		Reservation: reservation,
		MovieTitle:  reservation.Movie.Title,
		Tickets:     tickets,
	}

	if len(tickets) > 0 {
		var showtime showtimes.Showtime
		if err := db.Where("id = ?", tickets[0].ShowtimeID).First(&showtime).Error; err != nil {
			return nil, fmt.Errorf("failed to load showtime: %w", err)
		}
		summary.Showtime = &showtime
	}

	err = db.Table("snack_orders").
		Select("snack_items.item_name, snack_orders.quantity, snack_items.price").
		Joins("JOIN snack_items ON snack_items.id = snack_orders.snack_id").
		Where("snack_orders.reservation_id = ?", id).
		Order("snack_orders.created_at ASC").
		Scan(&summary.Snacks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load snack orders: %w", err)
	}

	if len(summary.Snacks) > 0 {
		var employeeName struct {
			Name string `gorm:"column:name"`
		}
		err = db.Table("snack_orders").
			Select("employees.name").
			Joins("JOIN employees ON employees.id = snack_orders.employee_id").
			Where("snack_orders.reservation_id = ?", id).
			Order("snack_orders.created_at ASC").
			Limit(1).
			Scan(&employeeName).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load servicing employee: %w", err)
		}
		summary.EmployeeName = employeeName.Name
	}

	return summary, nil
}

func (r *repository) CancelReservation(ctx context.Context, id uuid.UUID) (*CancelRecord, error) {
	var record CancelRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reservation Reservation
		err := tx.Set("gorm:query_option", "FOR UPDATE").
			Where("id = ?", id).
			First(&reservation).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("failed to lock reservation: %w", err)
		}

		var tickets []Ticket
		if err := tx.Where("reservation_id = ?", id).Find(&tickets).Error; err != nil {
			return fmt.Errorf("failed to load tickets: %w", err)
		}

		var orders []snacks.SnackOrder
		if err := tx.Where("reservation_id = ?", id).Find(&orders).Error; err != nil {
			return fmt.Errorf("failed to load snack orders: %w", err)
		}

		// 1. Put every ordered snack back on the shelf.
		for _, order := range orders {
			err := tx.Model(&snacks.SnackItem{}).
				Where("id = ?", order.SnackID).
				Update("quantity", gorm.Expr("quantity + ?", order.Quantity)).Error
			if err != nil {
				return fmt.Errorf("failed to restore snack stock: %w", err)
			}
		}

		if len(orders) > 0 {
			if err := tx.Where("reservation_id = ?", id).Delete(&snacks.SnackOrder{}).Error; err != nil {
				return fmt.Errorf("failed to delete snack orders: %w", err)
			}
		}

		// 2. Release the seats and give the counter back in one step.
		if len(tickets) > 0 {
			if err := tx.Where("reservation_id = ?", id).Delete(&Ticket{}).Error; err != nil {
				return fmt.Errorf("failed to delete tickets: %w", err)
			}

			err := tx.Model(&showtimes.Showtime{}).
				Where("id = ?", tickets[0].ShowtimeID).
				Update("available_seats", gorm.Expr("available_seats + ?", len(tickets))).Error
			if err != nil {
				return fmt.Errorf("failed to restore available seats: %w", err)
			}
			record.ShowtimeID = tickets[0].ShowtimeID
		}

		if err := tx.Where("id = ?", id).Delete(&Reservation{}).Error; err != nil {
			return fmt.Errorf("failed to delete reservation: %w", err)
		}

		record.TicketsReleased = len(tickets)
		record.SnackLines = len(orders)
		record.MovieID = reservation.MovieID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func loadTakenSeats(tx *gorm.DB, showtimeID uuid.UUID) (map[SeatKey]bool, error) {
	var booked []struct {
		RowNo  int `gorm:"column:row_no"`
		SeatNo int `gorm:"column:seat_no"`
	}
	err := tx.Table("tickets").
		Select("row_no, seat_no").
		Where("showtime_id = ?", showtimeID).
		Scan(&booked).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load booked seats: %w", err)
	}

	taken := make(map[SeatKey]bool, len(booked))
	for _, b := range booked {
		taken[SeatKey{RowNo: b.RowNo, SeatNo: b.SeatNo}] = true
	}
	return taken, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}
