package showtimes

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrShowtimeNotFound = errors.New("showtime not found")

type Repository interface {
	Create(showtime *Showtime) error
	GetByID(id uuid.UUID) (*Showtime, error)
	GetByMovieID(movieID uuid.UUID) ([]Showtime, error)
	// GetBookedSeats returns the (row, seat) pairs already ticketed for a showtime.
	GetBookedSeats(showtimeID uuid.UUID) ([]BookedSeat, error)
}

// BookedSeat mirrors the ticket columns the seat map needs. Tickets are owned
// by the reservations package, so the rows are read through Table("tickets")
// instead of importing its model.
type BookedSeat struct {
	RowNo  int
	SeatNo int
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(showtime *Showtime) error {
	return r.db.Create(showtime).Error
}

func (r *repository) GetByID(id uuid.UUID) (*Showtime, error) {
	var showtime Showtime
	err := r.db.Preload("Movie").Where("id = ?", id).First(&showtime).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return &showtime, nil
}

func (r *repository) GetByMovieID(movieID uuid.UUID) ([]Showtime, error) {
	var showtimesForMovie []Showtime
	err := r.db.Preload("Movie").
		Where("movie_id = ?", movieID).
		Order("show_date ASC, show_time ASC").
		Find(&showtimesForMovie).Error
	return showtimesForMovie, err
}

func (r *repository) GetBookedSeats(showtimeID uuid.UUID) ([]BookedSeat, error) {
	var booked []BookedSeat
	err := r.db.Table("tickets").
		Select("row_no, seat_no").
		Where("showtime_id = ?", showtimeID).
		Order("row_no ASC, seat_no ASC").
		Scan(&booked).Error
	return booked, err
}
