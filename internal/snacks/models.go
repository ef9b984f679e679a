package snacks

import (
	"time"

	"github.com/google/uuid"
)

// SnackItem is a counter item with a shared stock counter. Quantity is only
// mutated through conditional UPDATEs so it can never go negative.
type SnackItem struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ItemName string    `json:"item_name" gorm:"not null;size:255"`
	Price    float64   `json:"price" gorm:"not null;check:price >= 0"`
	Quantity int       `json:"quantity" gorm:"not null;check:quantity >= 0"`
	Trending bool      `json:"trending" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// SnackOrder is one fulfilled order line, attributed to the employee who
// services it. Lines are deleted with their reservation on cancel.
type SnackOrder struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ReservationID uuid.UUID `json:"reservation_id" gorm:"type:uuid;not null;index"`
	SnackID       uuid.UUID `json:"snack_id" gorm:"type:uuid;not null"`
	Quantity      int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	EmployeeID    uuid.UUID `json:"employee_id" gorm:"type:uuid;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Employee is reference data; one is picked at random per order line.
type Employee struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name string    `json:"name" gorm:"not null;size:255"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (SnackItem) TableName() string {
	return "snack_items"
}

// TableName specifies the table name for GORM
func (SnackOrder) TableName() string {
	return "snack_orders"
}

// TableName specifies the table name for GORM
func (Employee) TableName() string {
	return "employees"
}
