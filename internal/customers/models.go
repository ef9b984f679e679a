package customers

import (
	"time"

	"github.com/google/uuid"
)

// Customer rows come from two flows: signup (with credentials) and booking
// (walk-in details only, no email). Email is therefore optional and not
// unique at the schema level; signup enforces uniqueness itself.
type Customer struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name     string    `json:"name" gorm:"not null;size:255"`
	Age      int       `json:"age" gorm:"not null;check:age > 0"`
	Gender   string    `json:"gender" gorm:"not null;size:20"`
	Email    string    `json:"email" gorm:"size:255;index"`
	Password string    `json:"-" gorm:"size:255"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Customer) TableName() string {
	return "customers"
}
