package movies

import (
	"time"

	"github.com/google/uuid"
)

// Movie is immutable reference data: rows are seeded, never mutated by the API.
type Movie struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title           string    `json:"title" gorm:"not null;size:255"`
	Genre           string    `json:"genre" gorm:"size:100"`
	DurationMinutes int       `json:"duration" gorm:"not null;check:duration_minutes > 0"`
	ReleaseDate     time.Time `json:"release_date"`
	Trending        bool      `json:"trending" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type MovieResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	Duration    int    `json:"duration"`
	ReleaseDate string `json:"releaseDate"`
	Trending    bool   `json:"trending"`
}

func (m *Movie) ToResponse() MovieResponse {
	return MovieResponse{
		ID:          m.ID.String(),
		Title:       m.Title,
		Genre:       m.Genre,
		Duration:    m.DurationMinutes,
		ReleaseDate: m.ReleaseDate.Format("2006-01-02"),
		Trending:    m.Trending,
	}
}

// TableName specifies the table name for GORM
func (Movie) TableName() string {
	return "movies"
}
