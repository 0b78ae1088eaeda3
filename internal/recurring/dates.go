package recurring

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=dates.go -destination=../mocks/recurring/mock_dates.go -package=mock_recurring

// DateService computes the generation date following from for a
// pattern.
type DateService interface {
	NextGenerationDate(ctx context.Context, patternID string, from time.Time) (time.Time, error)
}

// DBDateService resolves dates through the store's
// compute_next_generation_date procedure. Callers fall back to the
// local frequency rules when it fails.
type DBDateService struct {
	db *sqlx.DB
}

// NewDBDateService creates a new DBDateService.
func NewDBDateService(db *sqlx.DB) *DBDateService {
	return &DBDateService{db: db}
}

// NextGenerationDate delegates to the stored function.
func (s *DBDateService) NextGenerationDate(ctx context.Context, patternID string, from time.Time) (time.Time, error) {
	var ts time.Time
	err := s.db.GetContext(ctx, &ts,
		"SELECT compute_next_generation_date(?, ?)", patternID, from)
	if err != nil {
		return time.Time{}, err
	}
	return ts, nil
}
