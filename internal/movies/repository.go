package movies

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMovieNotFound = errors.New("movie not found")

type Repository interface {
	Create(movie *Movie) error
	GetByID(id uuid.UUID) (*Movie, error)
	GetAll() ([]Movie, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(movie *Movie) error {
	return r.db.Create(movie).Error
}

func (r *repository) GetByID(id uuid.UUID) (*Movie, error) {
	var movie Movie
	err := r.db.Where("id = ?", id).First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *repository) GetAll() ([]Movie, error) {
	var all []Movie
	// Trending first so clients can render them at the top without sorting.
	err := r.db.Order("trending DESC, release_date DESC, title ASC").Find(&all).Error
	return all, err
}
