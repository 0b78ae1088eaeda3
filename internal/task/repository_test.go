package task

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyflow-app/studyflow/internal/apperror"
)

func taskColumns() []string {
	return []string{"id", "user_id", "task_type", "title", "due_at", "status", "completed_at", "created_at", "updated_at"}
}

func TestDBRepository_Find(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		setupMock   func(mock sqlmock.Sqlmock)
		wantStatus  Status
		wantErr     bool
		wantMissing bool
	}{
		{
			name: "returns task",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(taskColumns()).
					AddRow("t1", "u1", "assignment", "Essay draft", now, "available", nil, now, now)
				mock.ExpectQuery("SELECT \\* FROM tasks WHERE id = \\?").
					WithArgs("t1").
					WillReturnRows(rows)
			},
			wantStatus: StatusAvailable,
		},
		{
			name: "missing task returns NotFoundError",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM tasks WHERE id = \\?").
					WithArgs("t1").
					WillReturnRows(sqlmock.NewRows(taskColumns()))
			},
			wantErr:     true,
			wantMissing: true,
		},
		{
			name: "db error returns PersistenceError",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM tasks WHERE id = \\?").
					WithArgs("t1").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			got, err := repo.Find(context.Background(), "t1")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantMissing, apperror.IsNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "t1", got.ID)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_FindByIDs(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty input short-circuits", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
		got, err := repo.FindByIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns matching tasks", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(taskColumns()).
			AddRow("t1", "u1", "lecture", "Calculus II", now, "blocked", nil, now, now).
			AddRow("t2", "u1", "assignment", "Problem set", now, "available", nil, now, now)
		mock.ExpectQuery("SELECT \\* FROM tasks WHERE id IN \\(\\?, \\?\\)").
			WithArgs("t1", "t2").
			WillReturnRows(rows)

		repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
		got, err := repo.FindByIDs(context.Background(), []string{"t1", "t2"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, StatusBlocked, got[0].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDBRepository_MarkCompleted(t *testing.T) {
	completedAt := time.Date(2025, 3, 2, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "marks task completed",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE tasks SET status = \\?, completed_at = \\? WHERE id = \\?").
					WithArgs(string(StatusCompleted), completedAt, "t1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing task returns NotFoundError",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE tasks SET status = \\?, completed_at = \\? WHERE id = \\?").
					WithArgs(string(StatusCompleted), completedAt, "t1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			err = repo.MarkCompleted(context.Background(), "t1", completedAt)
			if tt.wantErr {
				assert.True(t, apperror.IsNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE tasks SET status = \\? WHERE id = \\?").
		WithArgs(string(StatusAvailable), "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
	require.NoError(t, repo.UpdateStatus(context.Background(), "t1", StatusAvailable))
	assert.NoError(t, mock.ExpectationsWereMet())
}
