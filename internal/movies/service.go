package movies

import (
	"context"
	"fmt"

	"cinebook/internal/shared/config"
	"cinebook/pkg/cache"

	"github.com/google/uuid"
)

const catalogCacheKey = "cinebook:movies:catalog"

type Service interface {
	SetCacheService(cacheService cache.Service)
	ListMovies(ctx context.Context) ([]MovieResponse, error)
	GetMovie(ctx context.Context, id uuid.UUID) (*MovieResponse, error)
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

// ListMovies returns the full catalog. The catalog is reference data, so it
// is cached with a long TTL and never invalidated by request traffic.
func (s *service) ListMovies(ctx context.Context) ([]MovieResponse, error) {
	fetch := func() ([]MovieResponse, error) {
		all, err := s.repo.GetAll()
		if err != nil {
			return nil, fmt.Errorf("failed to load movie catalog: %w", err)
		}
		responses := make([]MovieResponse, 0, len(all))
		for i := range all {
			responses = append(responses, all[i].ToResponse())
		}
		return responses, nil
	}

	if s.cacheService == nil {
		return fetch()
	}

	var cached []MovieResponse
	err := s.cacheService.GetOrSet(ctx, catalogCacheKey, s.cfg.Redis.MovieCacheTTL,
		func() (interface{}, error) { return fetch() }, &cached)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

func (s *service) GetMovie(ctx context.Context, id uuid.UUID) (*MovieResponse, error) {
	movie, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := movie.ToResponse()
	return &resp, nil
}
