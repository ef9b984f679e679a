package showtimes

import (
	"context"
	"fmt"

	"cinebook/internal/shared/config"
	"cinebook/pkg/cache"

	"github.com/google/uuid"
)

// ShowtimingsCacheKey builds the cache key for a movie's showtimings list.
// Exported because the booking flow invalidates it when availability changes.
func ShowtimingsCacheKey(movieID uuid.UUID) string {
	return "cinebook:showtimings:" + movieID.String()
}

type Service interface {
	SetCacheService(cacheService cache.Service)
	GetShowtimings(ctx context.Context, movieID uuid.UUID) ([]ShowtimingResponse, error)
	GetSeatMap(ctx context.Context, showtimeID uuid.UUID) (*SeatMapResponse, error)
	// InvalidateShowtimings drops the cached availability list for a movie.
	// Failures are swallowed; the short TTL bounds staleness anyway.
	InvalidateShowtimings(ctx context.Context, movieID uuid.UUID)
}

type service struct {
	repo         Repository
	cfg          *config.Config
	cacheService cache.Service
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{repo: repo, cfg: cfg}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GetShowtimings(ctx context.Context, movieID uuid.UUID) ([]ShowtimingResponse, error) {
	fetch := func() ([]ShowtimingResponse, error) {
		forMovie, err := s.repo.GetByMovieID(movieID)
		if err != nil {
			return nil, fmt.Errorf("failed to load showtimings: %w", err)
		}
		responses := make([]ShowtimingResponse, 0, len(forMovie))
		for i := range forMovie {
			responses = append(responses, forMovie[i].ToShowtimingResponse(forMovie[i].Movie.Title))
		}
		return responses, nil
	}

	if s.cacheService == nil {
		return fetch()
	}

	var cached []ShowtimingResponse
	err := s.cacheService.GetOrSet(ctx, ShowtimingsCacheKey(movieID), s.cfg.Redis.ShowtimeCacheTTL,
		func() (interface{}, error) { return fetch() }, &cached)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

// GetSeatMap renders the full seat grid for a showtime with booked flags.
// Always read fresh; a stale map sends users to seats that are already gone.
func (s *service) GetSeatMap(ctx context.Context, showtimeID uuid.UUID) (*SeatMapResponse, error) {
	showtime, err := s.repo.GetByID(showtimeID)
	if err != nil {
		return nil, err
	}

	booked, err := s.repo.GetBookedSeats(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked seats: %w", err)
	}

	taken := make(map[[2]int]bool, len(booked))
	for _, seat := range booked {
		taken[[2]int{seat.RowNo, seat.SeatNo}] = true
	}

	grid := make([]SeatStatus, 0, s.cfg.Screen.Capacity())
	for row := 1; row <= s.cfg.Screen.Rows; row++ {
		for seat := 1; seat <= s.cfg.Screen.SeatsPerRow; seat++ {
			grid = append(grid, SeatStatus{
				RowNo:  row,
				SeatNo: seat,
				Booked: taken[[2]int{row, seat}],
			})
		}
	}

	return &SeatMapResponse{
		ShowID:      showtime.ID.String(),
		ScreenNo:    showtime.ScreenNo,
		Rows:        s.cfg.Screen.Rows,
		SeatsPerRow: s.cfg.Screen.SeatsPerRow,
		Seats:       grid,
	}, nil
}

func (s *service) InvalidateShowtimings(ctx context.Context, movieID uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.Delete(ctx, ShowtimingsCacheKey(movieID))
}
