package showtimes

import (
	"time"

	"cinebook/internal/movies"

	"github.com/google/uuid"
)

// Showtime ties a movie to a screen and a slot. AvailableSeats is the shared
// counter the booking flow decrements; it must never go below zero and never
// exceed the screen capacity.
type Showtime struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	MovieID        uuid.UUID `json:"movie_id" gorm:"type:uuid;not null;index"`
	ScreenNo       int       `json:"screen_no" gorm:"not null;check:screen_no > 0"`
	ShowDate       time.Time `json:"show_date" gorm:"not null"`
	ShowTime       string    `json:"show_time" gorm:"not null;size:10"`
	AvailableSeats int       `json:"available_seats" gorm:"not null;check:available_seats >= 0"`

	Movie movies.Movie `json:"-" gorm:"foreignKey:MovieID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Showtime) TableName() string {
	return "showtimes"
}

type ShowtimingResponse struct {
	ShowID         string `json:"showId"`
	MovieName      string `json:"movieName"`
	ShowDate       string `json:"showDate"`
	ShowTime       string `json:"showTime"`
	ScreenNo       int    `json:"screenNo"`
	AvailableSeats int    `json:"availableSeats"`
}

// SeatStatus is one cell of the seat grid for a showtime.
type SeatStatus struct {
	RowNo  int  `json:"rowNo"`
	SeatNo int  `json:"seatNo"`
	Booked bool `json:"booked"`
}

type SeatMapResponse struct {
	ShowID      string       `json:"showId"`
	ScreenNo    int          `json:"screenNo"`
	Rows        int          `json:"rows"`
	SeatsPerRow int          `json:"seatsPerRow"`
	Seats       []SeatStatus `json:"seats"`
}

func (st *Showtime) ToShowtimingResponse(movieName string) ShowtimingResponse {
	return ShowtimingResponse{
		ShowID:         st.ID.String(),
		MovieName:      movieName,
		ShowDate:       st.ShowDate.Format("2006-01-02"),
		ShowTime:       st.ShowTime,
		ScreenNo:       st.ScreenNo,
		AvailableSeats: st.AvailableSeats,
	}
}
