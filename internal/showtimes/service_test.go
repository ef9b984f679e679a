package showtimes

import (
	"context"
	"testing"
	"time"

	"cinebook/internal/movies"
	"cinebook/internal/shared/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	CreateFunc         func(showtime *Showtime) error
	GetByIDFunc        func(id uuid.UUID) (*Showtime, error)
	GetByMovieIDFunc   func(movieID uuid.UUID) ([]Showtime, error)
	GetBookedSeatsFunc func(showtimeID uuid.UUID) ([]BookedSeat, error)
}

func (m *mockRepository) Create(showtime *Showtime) error {
	return m.CreateFunc(showtime)
}

func (m *mockRepository) GetByID(id uuid.UUID) (*Showtime, error) {
	return m.GetByIDFunc(id)
}

func (m *mockRepository) GetByMovieID(movieID uuid.UUID) ([]Showtime, error) {
	return m.GetByMovieIDFunc(movieID)
}

func (m *mockRepository) GetBookedSeats(showtimeID uuid.UUID) ([]BookedSeat, error) {
	return m.GetBookedSeatsFunc(showtimeID)
}

func testConfig() *config.Config {
	return &config.Config{
		Screen: config.ScreenConfig{Rows: 5, SeatsPerRow: 20},
	}
}

func TestGetShowtimingsMapsFields(t *testing.T) {
	movieID := uuid.New()
	showID := uuid.New()

	repo := &mockRepository{
		GetByMovieIDFunc: func(id uuid.UUID) ([]Showtime, error) {
			require.Equal(t, movieID, id)
			return []Showtime{
				{
					ID:             showID,
					MovieID:        movieID,
					ScreenNo:       4,
					ShowDate:       time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
					ShowTime:       "14:30",
					AvailableSeats: 97,
					Movie:          movies.Movie{ID: movieID, Title: "Monsoon Wedding Band"},
				},
			}, nil
		},
	}
	svc := NewService(repo, testConfig())

	showTimings, err := svc.GetShowtimings(context.Background(), movieID)
	require.NoError(t, err)
	require.Len(t, showTimings, 1)

	assert.Equal(t, ShowtimingResponse{
		ShowID:         showID.String(),
		MovieName:      "Monsoon Wedding Band",
		ShowDate:       "2026-09-02",
		ShowTime:       "14:30",
		ScreenNo:       4,
		AvailableSeats: 97,
	}, showTimings[0])
}

func TestGetSeatMapMarksBookedSeats(t *testing.T) {
	showID := uuid.New()

	repo := &mockRepository{
		GetByIDFunc: func(id uuid.UUID) (*Showtime, error) {
			return &Showtime{ID: showID, ScreenNo: 2}, nil
		},
		GetBookedSeatsFunc: func(id uuid.UUID) ([]BookedSeat, error) {
			return []BookedSeat{
				{RowNo: 1, SeatNo: 1},
				{RowNo: 3, SeatNo: 15},
			}, nil
		},
	}
	svc := NewService(repo, testConfig())

	seatMap, err := svc.GetSeatMap(context.Background(), showID)
	require.NoError(t, err)

	assert.Equal(t, 2, seatMap.ScreenNo)
	assert.Equal(t, 5, seatMap.Rows)
	assert.Equal(t, 20, seatMap.SeatsPerRow)
	require.Len(t, seatMap.Seats, 100)

	booked := 0
	for _, seat := range seatMap.Seats {
		if seat.Booked {
			booked++
		}
	}
	assert.Equal(t, 2, booked)

	// Grid is ordered row-major, seats ascending
	assert.Equal(t, SeatStatus{RowNo: 1, SeatNo: 1, Booked: true}, seatMap.Seats[0])
	assert.Equal(t, SeatStatus{RowNo: 1, SeatNo: 2, Booked: false}, seatMap.Seats[1])
	assert.Equal(t, SeatStatus{RowNo: 3, SeatNo: 15, Booked: true}, seatMap.Seats[2*20+14])
}

func TestGetSeatMapUnknownShowtime(t *testing.T) {
	repo := &mockRepository{
		GetByIDFunc: func(id uuid.UUID) (*Showtime, error) {
			return nil, ErrShowtimeNotFound
		},
	}
	svc := NewService(repo, testConfig())

	_, err := svc.GetSeatMap(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrShowtimeNotFound)
}
