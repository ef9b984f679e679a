package snacks

import (
	"context"
	"testing"

	"cinebook/internal/shared/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	CreateItemFunc        func(ctx context.Context, item *SnackItem) error
	CreateEmployeeFunc    func(ctx context.Context, employee *Employee) error
	GetAllItemsFunc       func(ctx context.Context) ([]SnackItem, error)
	GetItemByIDFunc       func(ctx context.Context, id uuid.UUID) (*SnackItem, error)
	GetRandomEmployeeFunc func(ctx context.Context) (*Employee, error)
	ReservationExistsFunc func(ctx context.Context, reservationID uuid.UUID) (bool, error)
	PlaceOrderFunc        func(ctx context.Context, reservationID uuid.UUID, lines []OrderLine) ([]PlacedLine, error)
}

func (m *mockRepository) CreateItem(ctx context.Context, item *SnackItem) error {
	return m.CreateItemFunc(ctx, item)
}

func (m *mockRepository) CreateEmployee(ctx context.Context, employee *Employee) error {
	return m.CreateEmployeeFunc(ctx, employee)
}

func (m *mockRepository) GetAllItems(ctx context.Context) ([]SnackItem, error) {
	return m.GetAllItemsFunc(ctx)
}

func (m *mockRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*SnackItem, error) {
	return m.GetItemByIDFunc(ctx, id)
}

func (m *mockRepository) GetRandomEmployee(ctx context.Context) (*Employee, error) {
	return m.GetRandomEmployeeFunc(ctx)
}

func (m *mockRepository) ReservationExists(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	return m.ReservationExistsFunc(ctx, reservationID)
}

func (m *mockRepository) PlaceOrder(ctx context.Context, reservationID uuid.UUID, lines []OrderLine) ([]PlacedLine, error) {
	return m.PlaceOrderFunc(ctx, reservationID, lines)
}

func testConfig() *config.Config {
	return &config.Config{
		Booking: config.BookingConfig{LowStockThreshold: 10},
	}
}

func TestGetMenuFlagsLowStock(t *testing.T) {
	popcornID := uuid.New()
	brownieID := uuid.New()

	repo := &mockRepository{
		GetAllItemsFunc: func(ctx context.Context) ([]SnackItem, error) {
			return []SnackItem{
				{ID: popcornID, ItemName: "Salted Popcorn (Large)", Price: 250, Quantity: 120, Trending: true},
				{ID: brownieID, ItemName: "Chocolate Brownie", Price: 120, Quantity: 8},
			}, nil
		},
	}
	svc := NewService(repo, testConfig())

	menu, err := svc.GetMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, menu, 2)

	assert.False(t, menu[0].LowStock)
	assert.True(t, menu[0].Trending)
	assert.True(t, menu[1].LowStock)
	assert.Equal(t, 8, menu[1].Quantity)
}

func TestGetMenuBoundaryIsExclusive(t *testing.T) {
	repo := &mockRepository{
		GetAllItemsFunc: func(ctx context.Context) ([]SnackItem, error) {
			return []SnackItem{
				{ID: uuid.New(), ItemName: "Cola (500ml)", Price: 150, Quantity: 10},
			}, nil
		},
	}
	svc := NewService(repo, testConfig())

	menu, err := svc.GetMenu(context.Background())
	require.NoError(t, err)

	// Exactly at the threshold is not low stock; only below it is.
	assert.False(t, menu[0].LowStock)
}

func TestOrderComputesTotalsAndFlags(t *testing.T) {
	reservationID := uuid.New()
	popcornID := uuid.New()
	colaID := uuid.New()

	repo := &mockRepository{
		ReservationExistsFunc: func(ctx context.Context, id uuid.UUID) (bool, error) {
			return true, nil
		},
		PlaceOrderFunc: func(ctx context.Context, id uuid.UUID, lines []OrderLine) ([]PlacedLine, error) {
			require.Equal(t, reservationID, id)
			require.Len(t, lines, 2)
			return []PlacedLine{
				{
					Item:      SnackItem{ID: popcornID, ItemName: "Caramel Popcorn (Large)", Price: 300},
					Quantity:  2,
					Remaining: 5,
					Employee:  Employee{ID: uuid.New(), Name: "Rohit Kulkarni"},
				},
				{
					Item:      SnackItem{ID: colaID, ItemName: "Cola (500ml)", Price: 150},
					Quantity:  1,
					Remaining: 199,
					Employee:  Employee{ID: uuid.New(), Name: "Meera Iyer"},
				},
			}, nil
		},
	}
	svc := NewService(repo, testConfig())

	orders, err := svc.Order(context.Background(), OrderSnacksRequest{
		ReservationID: reservationID.String(),
		Orders: []OrderLineRequest{
			{SnackID: popcornID.String(), Quantity: 2},
			{SnackID: colaID.String(), Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, 600.00, orders[0].Total)
	assert.Equal(t, 5, orders[0].Remaining)
	assert.True(t, orders[0].LowStock)

	assert.Equal(t, 150.00, orders[1].Total)
	assert.False(t, orders[1].LowStock)
}

func TestOrderRejectsUnknownReservation(t *testing.T) {
	repo := &mockRepository{
		ReservationExistsFunc: func(ctx context.Context, id uuid.UUID) (bool, error) {
			return false, nil
		},
		PlaceOrderFunc: func(ctx context.Context, id uuid.UUID, lines []OrderLine) ([]PlacedLine, error) {
			t.Fatal("order must not be placed for a missing reservation")
			return nil, nil
		},
	}
	svc := NewService(repo, testConfig())

	_, err := svc.Order(context.Background(), OrderSnacksRequest{
		ReservationID: uuid.New().String(),
		Orders:        []OrderLineRequest{{SnackID: uuid.New().String(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestOrderReservationCancelledBeforeCommit(t *testing.T) {
	// The existence pre-check passes, but the reservation is deleted before
	// the order transaction takes its row lock. The repository reports the
	// row gone and no stock moves.
	repo := &mockRepository{
		ReservationExistsFunc: func(ctx context.Context, id uuid.UUID) (bool, error) {
			return true, nil
		},
		PlaceOrderFunc: func(ctx context.Context, id uuid.UUID, lines []OrderLine) ([]PlacedLine, error) {
			return nil, ErrReservationNotFound
		},
	}
	svc := NewService(repo, testConfig())

	_, err := svc.Order(context.Background(), OrderSnacksRequest{
		ReservationID: uuid.New().String(),
		Orders:        []OrderLineRequest{{SnackID: uuid.New().String(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestOrderSurfacesInsufficientStock(t *testing.T) {
	snackID := uuid.New()
	repo := &mockRepository{
		ReservationExistsFunc: func(ctx context.Context, id uuid.UUID) (bool, error) {
			return true, nil
		},
		PlaceOrderFunc: func(ctx context.Context, id uuid.UUID, lines []OrderLine) ([]PlacedLine, error) {
			return nil, &InsufficientStockError{
				SnackID:   snackID,
				ItemName:  "Veg Burger",
				Requested: 3,
				Available: 2,
			}
		},
	}
	svc := NewService(repo, testConfig())

	_, err := svc.Order(context.Background(), OrderSnacksRequest{
		ReservationID: uuid.New().String(),
		Orders:        []OrderLineRequest{{SnackID: snackID.String(), Quantity: 3}},
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)
	assert.Contains(t, stockErr.Error(), "Veg Burger")
}
