package database

import (
	"fmt"
	"log"

	"cinebook/internal/customers"
	"cinebook/internal/movies"
	"cinebook/internal/reservations"
	"cinebook/internal/showtimes"
	"cinebook/internal/snacks"

	"gorm.io/gorm"
)

// Migrate runs auto-migration for all models
func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&movies.Movie{},
		&showtimes.Showtime{},
		&customers.Customer{},
		&reservations.Reservation{},
		&reservations.Ticket{},
		&snacks.SnackItem{},
		&snacks.SnackOrder{},
		&snacks.Employee{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
