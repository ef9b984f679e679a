package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"
)

// MigrateConstraints applies constraints AutoMigrate cannot express.
// The unique index on tickets is the backstop that makes double-selling
// a seat impossible even if two transactions race past the row locks.
func MigrateConstraints(db *gorm.DB) error {
	log.Println("Applying database constraints...")

	constraints := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_tickets_showtime_seat
			ON tickets (showtime_id, row_no, seat_no)`,
		`ALTER TABLE showtimes
			ADD CONSTRAINT chk_showtimes_available_seats_non_negative
			CHECK (available_seats >= 0)`,
		`ALTER TABLE snack_items
			ADD CONSTRAINT chk_snack_items_quantity_non_negative
			CHECK (quantity >= 0)`,
	}

	for _, stmt := range constraints {
		if err := db.Exec(stmt).Error; err != nil {
			// CHECK constraints have no IF NOT EXISTS; ignore duplicates on restart.
			if isDuplicateConstraintError(err) {
				continue
			}
			return fmt.Errorf("failed to apply constraint: %w", err)
		}
	}

	log.Println("Database constraints applied successfully")
	return nil
}

func isDuplicateConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate")
}
