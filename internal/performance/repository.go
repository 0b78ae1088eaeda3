package performance

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/studyflow-app/studyflow/internal/apperror"
)

//go:generate mockgen -source=repository.go -destination=../mocks/performance/mock_repository.go -package=mock_performance

// RecordRepository defines operations for the append-only review log.
type RecordRepository interface {
	Insert(ctx context.Context, r *Record) error
	FindAllByUser(ctx context.Context, userID string) ([]Record, error)
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]Record, error)
}

// DBRecordRepository implements RecordRepository using MySQL.
type DBRecordRepository struct {
	db *sqlx.DB
}

// NewDBRecordRepository creates a new DBRecordRepository.
func NewDBRecordRepository(db *sqlx.DB) *DBRecordRepository {
	return &DBRecordRepository{db: db}
}

// Insert appends one review record.
func (r *DBRecordRepository) Insert(ctx context.Context, rec *Record) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO performance_records (user_id, session_id, topic, quality_rating, ease_factor, response_time_seconds) VALUES (?, ?, ?, ?, ?, ?)",
		rec.UserID, rec.SessionID, rec.Topic, rec.Quality, rec.EaseFactor, rec.ResponseTimeSeconds,
	)
	if err != nil {
		return apperror.Persistence("insert performance record", err)
	}
	return nil
}

// FindAllByUser returns the user's full review history in
// chronological order.
func (r *DBRecordRepository) FindAllByUser(ctx context.Context, userID string) ([]Record, error) {
	var records []Record
	err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM performance_records WHERE user_id = ? ORDER BY created_at, id", userID)
	if err != nil {
		return nil, apperror.Persistence("load performance records", err)
	}
	return records, nil
}

// FindRecentByUser returns the user's most recent records, newest
// first.
func (r *DBRecordRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]Record, error) {
	var records []Record
	err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM performance_records WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?",
		userID, limit)
	if err != nil {
		return nil, apperror.Persistence("load recent performance records", err)
	}
	return records, nil
}
