package reservations

import (
	"context"
	"fmt"

	"cinebook/internal/shared/config"
	"cinebook/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	SetShowtimeInvalidator(invalidator ShowtimeInvalidator)
	SetEventPublisher(publisher EventPublisher)

	Book(ctx context.Context, req BookRequest) (*BookingResponse, error)
	Confirm(ctx context.Context, reservationID string) (*BookingResponse, error)
	Cancel(ctx context.Context, reservationID string) error
}

// ShowtimeInvalidator drops cached availability after bookings and
// cancellations change it. Interface to avoid a hard dependency on the
// showtimes service.
type ShowtimeInvalidator interface {
	InvalidateShowtimings(ctx context.Context, movieID uuid.UUID)
}

// EventPublisher emits reservation lifecycle events. Implementations must be
// safe to skip: a nil publisher disables publishing.
type EventPublisher interface {
	PublishReservationConfirmed(ctx context.Context, reservationID string, seats int) error
	PublishReservationCancelled(ctx context.Context, reservationID string, seatsReleased int) error
}

type service struct {
	repo        Repository
	cfg         *config.Config
	log         *logger.Logger
	invalidator ShowtimeInvalidator
	publisher   EventPublisher
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo: repo,
		cfg:  cfg,
		log:  logger.GetDefault(),
	}
}

func (s *service) SetShowtimeInvalidator(invalidator ShowtimeInvalidator) {
	s.invalidator = invalidator
}

func (s *service) SetEventPublisher(publisher EventPublisher) {
	s.publisher = publisher
}

func (s *service) Book(ctx context.Context, req BookRequest) (*BookingResponse, error) {
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("%w: movie id %q", ErrInvalidID, req.MovieID)
	}
	showtimeID, err := uuid.Parse(req.ShowID)
	if err != nil {
		return nil, fmt.Errorf("%w: show id %q", ErrInvalidID, req.ShowID)
	}

	if req.Seats > s.cfg.Booking.MaxSeatsPerBooking {
		return nil, fmt.Errorf("%w: limit is %d per booking", ErrTooManySeats, s.cfg.Booking.MaxSeatsPerBooking)
	}

	record, err := s.repo.BookSeats(ctx, BookingAttempt{
		Name:              req.Name,
		Age:               req.Age,
		Gender:            req.Gender,
		MovieID:           movieID,
		ShowtimeID:        showtimeID,
		Seats:             req.Seats,
		TicketPrice:       s.cfg.Booking.TicketPrice,
		ScreenRows:        s.cfg.Screen.Rows,
		ScreenSeatsPerRow: s.cfg.Screen.SeatsPerRow,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateShowtimings(ctx, movieID)
	s.log.LogReservationBooked(ctx, record.Reservation.ID.String(),
		record.Showtime.ID.String(), len(record.Tickets))

	return &BookingResponse{
		ReservationID: record.Reservation.ID.String(),
		MovieTitle:    record.MovieTitle,
		Status:        record.Reservation.Status,
		ShowDate:      record.Showtime.ShowDate.Format("2006-01-02"),
		ShowTime:      record.Showtime.ShowTime,
		ScreenNo:      record.Showtime.ScreenNo,
		Tickets:       ticketResponses(record.Tickets),
	}, nil
}

// Confirm flips the status and rebuilds the full summary, snacks included.
// Confirming twice returns the same summary; the status update is a no-op
// the second time.
func (s *service) Confirm(ctx context.Context, reservationID string) (*BookingResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation id %q", ErrInvalidID, reservationID)
	}

	if err := s.repo.ConfirmReservation(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to confirm reservation: %w", err)
	}

	summary, err := s.repo.GetSummary(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &BookingResponse{
		ReservationID: summary.Reservation.ID.String(),
		MovieTitle:    summary.MovieTitle,
		Status:        summary.Reservation.Status,
		Tickets:       ticketResponses(summary.Tickets),
		EmployeeName:  summary.EmployeeName,
	}
	if summary.Showtime != nil {
		resp.ShowDate = summary.Showtime.ShowDate.Format("2006-01-02")
		resp.ShowTime = summary.Showtime.ShowTime
		resp.ScreenNo = summary.Showtime.ScreenNo
	}
	for _, line := range summary.Snacks {
		resp.Snacks = append(resp.Snacks, SnackLineResponse{
			ItemName: line.ItemName,
			Quantity: line.Quantity,
			Price:    line.Price,
			Total:    line.Price * float64(line.Quantity),
		})
	}

	if s.publisher != nil {
		if err := s.publisher.PublishReservationConfirmed(ctx, resp.ReservationID, len(resp.Tickets)); err != nil {
			s.log.ErrorWithContext(ctx, "failed to publish confirmation event", err,
				map[string]interface{}{"reservation_id": resp.ReservationID})
		}
	}
	s.log.LogReservationConfirmed(ctx, resp.ReservationID)

	return resp, nil
}

func (s *service) Cancel(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("%w: reservation id %q", ErrInvalidID, reservationID)
	}

	record, err := s.repo.CancelReservation(ctx, id)
	if err != nil {
		return err
	}

	if record.TicketsReleased == 0 {
		s.log.WarnWithContext(ctx, "cancelled reservation had no tickets",
			map[string]interface{}{"reservation_id": id.String()})
	} else {
		s.invalidateShowtimings(ctx, record.MovieID)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishReservationCancelled(ctx, id.String(), record.TicketsReleased); err != nil {
			s.log.ErrorWithContext(ctx, "failed to publish cancellation event", err,
				map[string]interface{}{"reservation_id": id.String()})
		}
	}
	s.log.LogReservationCancelled(ctx, id.String(), record.TicketsReleased)

	return nil
}

func (s *service) invalidateShowtimings(ctx context.Context, movieID uuid.UUID) {
	if s.invalidator == nil {
		return
	}
	s.invalidator.InvalidateShowtimings(ctx, movieID)
}

func ticketResponses(tickets []Ticket) []TicketResponse {
	responses := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, TicketResponse{
			RowNo:    t.RowNo,
			SeatNo:   t.SeatNo,
			ScreenNo: t.ScreenNo,
			Price:    t.Price,
		})
	}
	return responses
}
