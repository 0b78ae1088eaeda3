package performance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordColumns() []string {
	return []string{"id", "user_id", "session_id", "topic", "quality_rating", "ease_factor", "response_time_seconds", "created_at"}
}

func TestDBRecordRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO performance_records \\(user_id, session_id, topic, quality_rating, ease_factor, response_time_seconds\\) VALUES \\(\\?, \\?, \\?, \\?, \\?, \\?\\)").
		WithArgs("u1", "s1", "calculus", 4, 2.5, sql.NullFloat64{Valid: true, Float64: 12.5}).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewDBRecordRepository(sqlx.NewDb(db, "mysql"))
	err = repo.Insert(context.Background(), &Record{
		UserID:              "u1",
		SessionID:           "s1",
		Topic:               "calculus",
		Quality:             4,
		EaseFactor:          2.5,
		ResponseTimeSeconds: sql.NullFloat64{Valid: true, Float64: 12.5},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRecordRepository_FindAllByUser(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(recordColumns()).
		AddRow(1, "u1", "s1", "calculus", 4, 2.5, nil, now).
		AddRow(2, "u1", "s1", "calculus", 2, 2.3, 30.0, now.Add(time.Hour))
	mock.ExpectQuery("SELECT \\* FROM performance_records WHERE user_id = \\? ORDER BY created_at, id").
		WithArgs("u1").
		WillReturnRows(rows)

	repo := NewDBRecordRepository(sqlx.NewDb(db, "mysql"))
	got, err := repo.FindAllByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].Quality)
	assert.False(t, got[0].ResponseTimeSeconds.Valid)
	assert.True(t, got[1].ResponseTimeSeconds.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRecordRepository_FindRecentByUser(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(recordColumns()).
		AddRow(9, "u1", "s3", "physics", 5, 2.9, nil, now)
	mock.ExpectQuery("SELECT \\* FROM performance_records WHERE user_id = \\? ORDER BY created_at DESC, id DESC LIMIT \\?").
		WithArgs("u1", 50).
		WillReturnRows(rows)

	repo := NewDBRecordRepository(sqlx.NewDb(db, "mysql"))
	got, err := repo.FindRecentByUser(context.Background(), "u1", 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "physics", got[0].Topic)
	assert.NoError(t, mock.ExpectationsWereMet())
}
