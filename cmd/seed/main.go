package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinebook/internal/movies"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/database"
	"cinebook/internal/showtimes"
	"cinebook/internal/snacks"
)

type Seeder struct {
	db  *database.DB
	cfg *config.Config
}

func main() {
	fmt.Println("Starting CineBook database seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db, cfg: cfg}

	fmt.Println("\nCleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned successfully")

	fmt.Println("\nSeeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("Database seeded successfully")

	fmt.Println("\nSeeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"snack_orders",
		"tickets",
		"reservations",
		"customers",
		"employees",
		"snack_items",
		"showtimes",
		"movies",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

func (s *Seeder) SeedAll() error {
	seededMovies, err := s.seedMovies()
	if err != nil {
		return fmt.Errorf("failed to seed movies: %w", err)
	}
	fmt.Printf("  Seeded %d movies\n", len(seededMovies))

	showtimeCount, err := s.seedShowtimes(seededMovies)
	if err != nil {
		return fmt.Errorf("failed to seed showtimes: %w", err)
	}
	fmt.Printf("  Seeded %d showtimes\n", showtimeCount)

	snackCount, err := s.seedSnacks()
	if err != nil {
		return fmt.Errorf("failed to seed snacks: %w", err)
	}
	fmt.Printf("  Seeded %d snack items\n", snackCount)

	employeeCount, err := s.seedEmployees()
	if err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}
	fmt.Printf("  Seeded %d employees\n", employeeCount)

	return nil
}

func (s *Seeder) seedMovies() ([]movies.Movie, error) {
	repo := movies.NewRepository(s.db.PostgreSQL)

	catalog := []movies.Movie{
		{Title: "Interstellar Run", Genre: "Sci-Fi", DurationMinutes: 169, ReleaseDate: date(2025, 11, 7), Trending: true},
		{Title: "The Last Heist", Genre: "Thriller", DurationMinutes: 128, ReleaseDate: date(2025, 12, 19), Trending: true},
		{Title: "Monsoon Wedding Band", Genre: "Comedy", DurationMinutes: 112, ReleaseDate: date(2026, 1, 16)},
		{Title: "Paper Lanterns", Genre: "Drama", DurationMinutes: 141, ReleaseDate: date(2026, 2, 13)},
		{Title: "Depth Charge", Genre: "Action", DurationMinutes: 134, ReleaseDate: date(2026, 3, 6)},
		{Title: "The Quiet Orchard", Genre: "Drama", DurationMinutes: 118, ReleaseDate: date(2026, 4, 10)},
	}

	for i := range catalog {
		if err := repo.Create(&catalog[i]); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

func (s *Seeder) seedShowtimes(seededMovies []movies.Movie) (int, error) {
	repo := showtimes.NewRepository(s.db.PostgreSQL)
	capacity := s.cfg.Screen.Capacity()

	slots := []string{"11:00", "14:30", "18:00", "21:30"}
	count := 0

	// Each movie gets the full slot grid for tomorrow and the day after,
	// cycling through screens so each slot lands on a different screen.
	for dayOffset := 1; dayOffset <= 2; dayOffset++ {
		showDate := time.Now().UTC().AddDate(0, 0, dayOffset).Truncate(24 * time.Hour)
		for movieIdx := range seededMovies {
			for slotIdx, slot := range slots {
				showtime := showtimes.Showtime{
					MovieID:        seededMovies[movieIdx].ID,
					ScreenNo:       (movieIdx+slotIdx)%5 + 1,
					ShowDate:       showDate,
					ShowTime:       slot,
					AvailableSeats: capacity,
				}
				if err := repo.Create(&showtime); err != nil {
					return count, err
				}
				count++
			}
		}
	}
	return count, nil
}

func (s *Seeder) seedSnacks() (int, error) {
	repo := snacks.NewRepository(s.db.PostgreSQL)
	ctx := context.Background()

	items := []snacks.SnackItem{
		{ItemName: "Salted Popcorn (Large)", Price: 250.00, Quantity: 120, Trending: true},
		{ItemName: "Caramel Popcorn (Large)", Price: 300.00, Quantity: 90, Trending: true},
		{ItemName: "Nachos with Cheese", Price: 220.00, Quantity: 60},
		{ItemName: "Cola (500ml)", Price: 150.00, Quantity: 200},
		{ItemName: "Lemon Iced Tea", Price: 160.00, Quantity: 80},
		{ItemName: "Veg Burger", Price: 180.00, Quantity: 40},
		{ItemName: "Chocolate Brownie", Price: 120.00, Quantity: 8}, // seeds a low-stock item
	}

	for i := range items {
		if err := repo.CreateItem(ctx, &items[i]); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

func (s *Seeder) seedEmployees() (int, error) {
	repo := snacks.NewRepository(s.db.PostgreSQL)
	ctx := context.Background()

	names := []string{"Asha Nair", "Rohit Kulkarni", "Meera Iyer", "Vikram Shetty", "Divya Menon"}
	for i, name := range names {
		if err := repo.CreateEmployee(ctx, &snacks.Employee{Name: name}); err != nil {
			return i, err
		}
	}
	return len(names), nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
