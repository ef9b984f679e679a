package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinebook/internal/shared/config"
	"cinebook/internal/showtimes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository implements Repository with per-method func fields so each
// test overrides only what it needs.
type mockRepository struct {
	BookSeatsFunc          func(ctx context.Context, attempt BookingAttempt) (*BookingRecord, error)
	ConfirmReservationFunc func(ctx context.Context, id uuid.UUID) error
	GetSummaryFunc         func(ctx context.Context, id uuid.UUID) (*ReservationSummary, error)
	CancelReservationFunc  func(ctx context.Context, id uuid.UUID) (*CancelRecord, error)
}

func (m *mockRepository) BookSeats(ctx context.Context, attempt BookingAttempt) (*BookingRecord, error) {
	return m.BookSeatsFunc(ctx, attempt)
}

func (m *mockRepository) ConfirmReservation(ctx context.Context, id uuid.UUID) error {
	return m.ConfirmReservationFunc(ctx, id)
}

func (m *mockRepository) GetSummary(ctx context.Context, id uuid.UUID) (*ReservationSummary, error) {
	return m.GetSummaryFunc(ctx, id)
}

func (m *mockRepository) CancelReservation(ctx context.Context, id uuid.UUID) (*CancelRecord, error) {
	return m.CancelReservationFunc(ctx, id)
}

type recordingInvalidator struct {
	movieIDs []uuid.UUID
}

func (r *recordingInvalidator) InvalidateShowtimings(ctx context.Context, movieID uuid.UUID) {
	r.movieIDs = append(r.movieIDs, movieID)
}

type recordingPublisher struct {
	confirmed []string
	cancelled []string
	err       error
}

func (r *recordingPublisher) PublishReservationConfirmed(ctx context.Context, reservationID string, seats int) error {
	r.confirmed = append(r.confirmed, reservationID)
	return r.err
}

func (r *recordingPublisher) PublishReservationCancelled(ctx context.Context, reservationID string, seatsReleased int) error {
	r.cancelled = append(r.cancelled, reservationID)
	return r.err
}

func testConfig() *config.Config {
	return &config.Config{
		Screen: config.ScreenConfig{Rows: 5, SeatsPerRow: 20},
		Booking: config.BookingConfig{
			TicketPrice:        200.00,
			LowStockThreshold:  10,
			MaxSeatsPerBooking: 10,
		},
	}
}

func validBookRequest(movieID, showID uuid.UUID, seats int) BookRequest {
	return BookRequest{
		Name:    "Ravi Sharma",
		Age:     28,
		Gender:  "Male",
		MovieID: movieID.String(),
		ShowID:  showID.String(),
		Seats:   seats,
	}
}

func TestBookMapsRecordToResponse(t *testing.T) {
	movieID := uuid.New()
	showID := uuid.New()
	reservationID := uuid.New()

	var gotAttempt BookingAttempt
	repo := &mockRepository{
		BookSeatsFunc: func(ctx context.Context, attempt BookingAttempt) (*BookingRecord, error) {
			gotAttempt = attempt
			return &BookingRecord{
				Reservation: Reservation{ID: reservationID, Status: StatusPending},
				MovieTitle:  "Interstellar Run",
				Showtime: showtimes.Showtime{
					ID:       showID,
					ScreenNo: 3,
					ShowDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
					ShowTime: "18:00",
				},
				Tickets: []Ticket{
					{RowNo: 1, SeatNo: 1, ScreenNo: 3, Price: 200},
					{RowNo: 1, SeatNo: 2, ScreenNo: 3, Price: 200},
				},
			}, nil
		},
	}

	invalidator := &recordingInvalidator{}
	svc := NewService(repo, testConfig())
	svc.SetShowtimeInvalidator(invalidator)

	resp, err := svc.Book(context.Background(), validBookRequest(movieID, showID, 2))
	require.NoError(t, err)

	assert.Equal(t, reservationID.String(), resp.ReservationID)
	assert.Equal(t, "Interstellar Run", resp.MovieTitle)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, "2026-09-02", resp.ShowDate)
	assert.Equal(t, "18:00", resp.ShowTime)
	assert.Equal(t, 3, resp.ScreenNo)
	require.Len(t, resp.Tickets, 2)
	assert.Equal(t, TicketResponse{RowNo: 1, SeatNo: 1, ScreenNo: 3, Price: 200}, resp.Tickets[0])

	// Attempt carries the configured grid and price
	assert.Equal(t, 5, gotAttempt.ScreenRows)
	assert.Equal(t, 20, gotAttempt.ScreenSeatsPerRow)
	assert.Equal(t, 200.00, gotAttempt.TicketPrice)

	// Availability changed, cache for the movie must be dropped
	assert.Equal(t, []uuid.UUID{movieID}, invalidator.movieIDs)
}

func TestBookRejectsTooManySeats(t *testing.T) {
	repo := &mockRepository{
		BookSeatsFunc: func(ctx context.Context, attempt BookingAttempt) (*BookingRecord, error) {
			t.Fatal("repository should not be called")
			return nil, nil
		},
	}
	svc := NewService(repo, testConfig())

	_, err := svc.Book(context.Background(), validBookRequest(uuid.New(), uuid.New(), 11))
	assert.ErrorIs(t, err, ErrTooManySeats)
}

func TestBookSurfacesCapacityError(t *testing.T) {
	showID := uuid.New()
	repo := &mockRepository{
		BookSeatsFunc: func(ctx context.Context, attempt BookingAttempt) (*BookingRecord, error) {
			return nil, &CapacityExhaustedError{ShowtimeID: showID, Requested: 3, Available: 1}
		},
	}

	invalidator := &recordingInvalidator{}
	svc := NewService(repo, testConfig())
	svc.SetShowtimeInvalidator(invalidator)

	_, err := svc.Book(context.Background(), validBookRequest(uuid.New(), showID, 3))

	var capErr *CapacityExhaustedError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 3, capErr.Requested)
	assert.Equal(t, 1, capErr.Available)

	// Nothing changed, so nothing to invalidate
	assert.Empty(t, invalidator.movieIDs)
}

func TestConfirmBuildsFullSummary(t *testing.T) {
	reservationID := uuid.New()
	showID := uuid.New()
	confirmCalls := 0

	repo := &mockRepository{
		ConfirmReservationFunc: func(ctx context.Context, id uuid.UUID) error {
			confirmCalls++
			return nil
		},
		GetSummaryFunc: func(ctx context.Context, id uuid.UUID) (*ReservationSummary, error) {
			return &ReservationSummary{
				Reservation: Reservation{ID: reservationID, Status: StatusConfirmed},
				MovieTitle:  "The Last Heist",
				Showtime: &showtimes.Showtime{
					ID:       showID,
					ScreenNo: 2,
					ShowDate: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
					ShowTime: "21:30",
				},
				Tickets: []Ticket{
					{RowNo: 2, SeatNo: 5, ScreenNo: 2, Price: 200},
				},
				Snacks: []SnackLine{
					{ItemName: "Salted Popcorn (Large)", Quantity: 2, Price: 250},
				},
				EmployeeName: "Asha Nair",
			}, nil
		},
	}

	publisher := &recordingPublisher{}
	svc := NewService(repo, testConfig())
	svc.SetEventPublisher(publisher)

	resp, err := svc.Confirm(context.Background(), reservationID.String())
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, resp.Status)
	assert.Equal(t, "The Last Heist", resp.MovieTitle)
	assert.Equal(t, "Asha Nair", resp.EmployeeName)
	require.Len(t, resp.Snacks, 1)
	assert.Equal(t, 500.00, resp.Snacks[0].Total)
	assert.Equal(t, 1, confirmCalls)
	assert.Equal(t, []string{reservationID.String()}, publisher.confirmed)
}

func TestConfirmIsRepeatable(t *testing.T) {
	reservationID := uuid.New()
	repo := &mockRepository{
		ConfirmReservationFunc: func(ctx context.Context, id uuid.UUID) error { return nil },
		GetSummaryFunc: func(ctx context.Context, id uuid.UUID) (*ReservationSummary, error) {
			return &ReservationSummary{
				Reservation: Reservation{ID: reservationID, Status: StatusConfirmed},
				MovieTitle:  "Paper Lanterns",
				Tickets:     []Ticket{{RowNo: 1, SeatNo: 1, ScreenNo: 1, Price: 200}},
			}, nil
		},
	}
	svc := NewService(repo, testConfig())

	first, err := svc.Confirm(context.Background(), reservationID.String())
	require.NoError(t, err)
	second, err := svc.Confirm(context.Background(), reservationID.String())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConfirmMissingReservation(t *testing.T) {
	repo := &mockRepository{
		ConfirmReservationFunc: func(ctx context.Context, id uuid.UUID) error { return nil },
		GetSummaryFunc: func(ctx context.Context, id uuid.UUID) (*ReservationSummary, error) {
			return nil, ErrReservationNotFound
		},
	}
	svc := NewService(repo, testConfig())

	_, err := svc.Confirm(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestConfirmPublishFailureDoesNotFailRequest(t *testing.T) {
	reservationID := uuid.New()
	repo := &mockRepository{
		ConfirmReservationFunc: func(ctx context.Context, id uuid.UUID) error { return nil },
		GetSummaryFunc: func(ctx context.Context, id uuid.UUID) (*ReservationSummary, error) {
			return &ReservationSummary{
				Reservation: Reservation{ID: reservationID, Status: StatusConfirmed},
				MovieTitle:  "Depth Charge",
			}, nil
		},
	}

	publisher := &recordingPublisher{err: errors.New("kafka unreachable")}
	svc := NewService(repo, testConfig())
	svc.SetEventPublisher(publisher)

	resp, err := svc.Confirm(context.Background(), reservationID.String())
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, resp.Status)
}

func TestCancelInvalidatesAndPublishes(t *testing.T) {
	reservationID := uuid.New()
	movieID := uuid.New()

	repo := &mockRepository{
		CancelReservationFunc: func(ctx context.Context, id uuid.UUID) (*CancelRecord, error) {
			return &CancelRecord{TicketsReleased: 2, MovieID: movieID, ShowtimeID: uuid.New()}, nil
		},
	}

	invalidator := &recordingInvalidator{}
	publisher := &recordingPublisher{}
	svc := NewService(repo, testConfig())
	svc.SetShowtimeInvalidator(invalidator)
	svc.SetEventPublisher(publisher)

	err := svc.Cancel(context.Background(), reservationID.String())
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{movieID}, invalidator.movieIDs)
	assert.Equal(t, []string{reservationID.String()}, publisher.cancelled)
}

func TestCancelWithNoTicketsSkipsInvalidation(t *testing.T) {
	repo := &mockRepository{
		CancelReservationFunc: func(ctx context.Context, id uuid.UUID) (*CancelRecord, error) {
			return &CancelRecord{TicketsReleased: 0}, nil
		},
	}

	invalidator := &recordingInvalidator{}
	svc := NewService(repo, testConfig())
	svc.SetShowtimeInvalidator(invalidator)

	err := svc.Cancel(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, invalidator.movieIDs)
}

func TestCancelMissingReservation(t *testing.T) {
	repo := &mockRepository{
		CancelReservationFunc: func(ctx context.Context, id uuid.UUID) (*CancelRecord, error) {
			return nil, ErrReservationNotFound
		},
	}
	svc := NewService(repo, testConfig())

	err := svc.Cancel(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
