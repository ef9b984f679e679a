package snacks

import (
	"context"
	"fmt"

	"cinebook/internal/shared/config"
	"cinebook/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	GetMenu(ctx context.Context) ([]MenuItem, error)
	Order(ctx context.Context, req OrderSnacksRequest) ([]OrderLineResponse, error)
}

type service struct {
	repo Repository
	cfg  *config.Config
	log  *logger.Logger
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo: repo,
		cfg:  cfg,
		log:  logger.GetDefault(),
	}
}

func (s *service) GetMenu(ctx context.Context) ([]MenuItem, error) {
	items, err := s.repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snack menu: %w", err)
	}

	menu := make([]MenuItem, 0, len(items))
	for i := range items {
		item := &items[i]
		menu = append(menu, MenuItem{
			ID:       item.ID.String(),
			ItemName: item.ItemName,
			Price:    item.Price,
			Quantity: item.Quantity,
			LowStock: item.Quantity < s.cfg.Booking.LowStockThreshold,
			Trending: item.Trending,
		})
	}
	return menu, nil
}

// Order fulfils a batch of order lines for a reservation. The batch is
// all-or-nothing: one uncoverable line rolls back the entire order.
func (s *service) Order(ctx context.Context, req OrderSnacksRequest) ([]OrderLineResponse, error) {
	reservationID, err := uuid.Parse(req.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation id %q", ErrInvalidID, req.ReservationID)
	}

	// Fast path only; PlaceOrder re-verifies under a row lock so a cancel
	// committing after this check still fails the order.
	exists, err := s.repo.ReservationExists(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check reservation: %w", err)
	}
	if !exists {
		return nil, ErrReservationNotFound
	}

	lines := make([]OrderLine, 0, len(req.Orders))
	for _, o := range req.Orders {
		snackID, err := uuid.Parse(o.SnackID)
		if err != nil {
			return nil, fmt.Errorf("%w: snack id %q", ErrInvalidID, o.SnackID)
		}
		lines = append(lines, OrderLine{SnackID: snackID, Quantity: o.Quantity})
	}

	placed, err := s.repo.PlaceOrder(ctx, reservationID, lines)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderLineResponse, 0, len(placed))
	for _, p := range placed {
		responses = append(responses, OrderLineResponse{
			SnackID:   p.Item.ID.String(),
			ItemName:  p.Item.ItemName,
			Quantity:  p.Quantity,
			Price:     p.Item.Price,
			Total:     p.Item.Price * float64(p.Quantity),
			Remaining: p.Remaining,
			LowStock:  p.Remaining < s.cfg.Booking.LowStockThreshold,
		})
	}

	s.log.LogSnackOrderPlaced(ctx, reservationID.String(), len(responses))
	return responses, nil
}
