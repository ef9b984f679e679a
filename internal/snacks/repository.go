package snacks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateItem(ctx context.Context, item *SnackItem) error
	CreateEmployee(ctx context.Context, employee *Employee) error
	GetAllItems(ctx context.Context) ([]SnackItem, error)
	GetItemByID(ctx context.Context, id uuid.UUID) (*SnackItem, error)
	GetRandomEmployee(ctx context.Context) (*Employee, error)
	ReservationExists(ctx context.Context, reservationID uuid.UUID) (bool, error)

	// PlaceOrder fulfils the whole batch in one transaction. The reservation
	// row is locked for the duration so a concurrent cancel cannot strand
	// order rows; any line that cannot be covered rolls back every line
	// before it. Returns ErrReservationNotFound when the reservation is gone.
	PlaceOrder(ctx context.Context, reservationID uuid.UUID, lines []OrderLine) ([]PlacedLine, error)
}

// OrderLine is one validated line of an order batch.
type OrderLine struct {
	SnackID  uuid.UUID
	Quantity int
}

// PlacedLine is one fulfilled line plus the stock left after the decrement.
type PlacedLine struct {
	Item      SnackItem
	Quantity  int
	Remaining int
	Employee  Employee
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateItem(ctx context.Context, item *SnackItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) CreateEmployee(ctx context.Context, employee *Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *repository) GetAllItems(ctx context.Context) ([]SnackItem, error) {
	var items []SnackItem
	err := r.db.WithContext(ctx).
		Order("trending DESC, item_name ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) GetItemByID(ctx context.Context, id uuid.UUID) (*SnackItem, error) {
	var item SnackItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnackNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *repository) GetRandomEmployee(ctx context.Context) (*Employee, error) {
	var employee Employee
	err := r.db.WithContext(ctx).Order("RANDOM()").First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEmployees
		}
		return nil, err
	}
	return &employee, nil
}

func (r *repository) ReservationExists(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	// Reservations belong to another package; a cross-table count avoids the
	// import without loading the row.
	var count int64
	err := r.db.WithContext(ctx).
		Table("reservations").
		Where("id = ?", reservationID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) PlaceOrder(ctx context.Context, reservationID uuid.UUID, lines []OrderLine) ([]PlacedLine, error) {
	var placed []PlacedLine

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		placed = placed[:0]

		// Lock the reservation row so a concurrent cancel serializes with
		// this order. Cancel deletes the row, so zero rows means it is gone
		// and the order must not decrement any stock.
		var reservation struct {
			ID uuid.UUID `gorm:"column:id"`
		}
		err := tx.Set("gorm:query_option", "FOR UPDATE").
			Table("reservations").
			Select("id").
			Where("id = ?", reservationID).
			Take(&reservation).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("failed to lock reservation: %w", err)
		}

		for _, line := range lines {
			// 1. Conditional decrement; zero rows means the shelf cannot cover it.
			result := tx.Model(&SnackItem{}).
				Where("id = ? AND quantity >= ?", line.SnackID, line.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", line.Quantity))
			if result.Error != nil {
				return fmt.Errorf("failed to decrement stock: %w", result.Error)
			}

			if result.RowsAffected == 0 {
				var item SnackItem
				if err := tx.Where("id = ?", line.SnackID).First(&item).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrSnackNotFound
					}
					return fmt.Errorf("failed to load snack item: %w", err)
				}
				return &InsufficientStockError{
					SnackID:   item.ID,
					ItemName:  item.ItemName,
					Requested: line.Quantity,
					Available: item.Quantity,
				}
			}

			// 2. Re-read the item for the post-decrement quantity and price.
			var item SnackItem
			if err := tx.Where("id = ?", line.SnackID).First(&item).Error; err != nil {
				return fmt.Errorf("failed to reload snack item: %w", err)
			}

			// 3. Pick the employee who services this line.
			var employee Employee
			if err := tx.Order("RANDOM()").First(&employee).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNoEmployees
				}
				return fmt.Errorf("failed to pick employee: %w", err)
			}

			order := SnackOrder{
				ReservationID: reservationID,
				SnackID:       item.ID,
				Quantity:      line.Quantity,
				EmployeeID:    employee.ID,
			}
			if err := tx.Create(&order).Error; err != nil {
				return fmt.Errorf("failed to create snack order: %w", err)
			}

			placed = append(placed, PlacedLine{
				Item:      item,
				Quantity:  line.Quantity,
				Remaining: item.Quantity,
				Employee:  employee,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return placed, nil
}
